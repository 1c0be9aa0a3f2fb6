package scatfun

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Encode writes a Table to writer in the SCATFUN file layout.
//
// Reserved header words are written as zero and in-memory float64
// values are narrowed to the float32 wire precision. Sentinel and
// structurally inconsistent tables are refused.
func Encode(w io.Writer, t *Table) error {
	if err := encodeCheck(t); err != nil {
		return err
	}

	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}

	h := header{
		Flags:     flagBSDF,
		NMu:       int32(t.ElevationCount),
		NCoeffs:   int32(len(t.CoefficientPool)),
		MMax:      int32(t.MaxOrder),
		NChannels: int32(t.Channels),
		NBases:    1,
		Eta:       float32(t.RelativeIOR),
	}
	if err := binary.Write(bw, binary.LittleEndian, h); err != nil {
		return err
	}

	if err := writeFloats(bw, t.Elevations); err != nil {
		return err
	}
	if err := writeFloats(bw, t.MarginalCDF); err != nil {
		return err
	}

	// Re-interleave the split offset and length arrays into the on-disk
	// pair layout.
	pairs := t.PairCount()
	offsetAndLength := make([]int32, 2*pairs)
	for k := 0; k < pairs; k++ {
		offsetAndLength[2*k] = t.SliceOffset[k]
		offsetAndLength[2*k+1] = t.SliceLength[k]
	}
	if err := binary.Write(bw, binary.LittleEndian, offsetAndLength); err != nil {
		return err
	}

	if err := writeFloats(bw, t.CoefficientPool); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Table to a file.
func EncodeFile(path string, t *Table) error {
	b, err := Marshal(t)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Marshal renders a Table to bytes.
func Marshal(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// encodeCheck verifies a table is encodable: active, with every
// sequence sized by its elevation count and every slice inside the
// pool. A table produced by Decode always passes.
func encodeCheck(t *Table) error {
	if t.IsSentinel() {
		return fmt.Errorf("%w: sentinel table", ErrUnsupported)
	}
	if t.Channels != 1 && t.Channels != 3 {
		return fmt.Errorf("%w: %d channels", ErrUnsupported, t.Channels)
	}
	if t.ElevationCount < 1 || t.MaxOrder < 1 {
		return fmt.Errorf("%w: nMu=%d mMax=%d", ErrUnsupported, t.ElevationCount, t.MaxOrder)
	}

	pairs := t.PairCount()
	if len(t.Elevations) != t.ElevationCount || len(t.MarginalCDF) != pairs ||
		len(t.SliceOffset) != pairs || len(t.SliceLength) != pairs {
		return fmt.Errorf("%w: table sequences do not match elevation count", ErrUnsupported)
	}

	for k := 0; k < pairs; k++ {
		off, length := int(t.SliceOffset[k]), int(t.SliceLength[k])
		if off < 0 || length < 0 || off+length > len(t.CoefficientPool) {
			return fmt.Errorf("%w: coefficient slice %d out of range", ErrUnsupported, k)
		}
	}

	return nil
}

// writeFloats narrows a float64 block to float32 and writes it
// little-endian.
func writeFloats(w io.Writer, vals []float64) error {
	buf := make([]float32, len(vals))
	for i, v := range vals {
		buf[i] = float32(v)
	}

	return binary.Write(w, binary.LittleEndian, buf)
}

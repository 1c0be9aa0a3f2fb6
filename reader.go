package scatfun

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Parse parses a scattering table from bytes.
func Parse(data []byte, opt *DecodeOptions) (*Table, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses a scattering table from reader.
//
// The stream must hold a plain single-basis SCATFUN file; textured and
// harmonically extrapolated variants fail with ErrUnsupported. On any
// error the returned table is nil, never partially populated. Bytes
// past the coefficient pool (trailing metadata) are not consumed.
func Decode(r io.Reader, opt *DecodeOptions) (*Table, error) {
	dopt := opt.normalize()

	var sig [8]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, fmt.Errorf("%w: missing signature", ErrTruncated)
	}
	if sig != magic {
		return nil, fmt.Errorf("%w: got % x", ErrBadMagic, sig)
	}

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrTruncated)
	}
	if err := checkHeader(h, dopt); err != nil {
		return nil, err
	}

	n := int(h.NMu)
	pairs := n * n
	t := &Table{
		Elevations:      make([]float64, n),
		MarginalCDF:     make([]float64, pairs),
		CoefficientPool: make([]float64, h.NCoeffs),
		SliceOffset:     make([]int32, pairs),
		SliceLength:     make([]int32, pairs),
		ZerothCoeff:     make([]float64, pairs),
		ElevationCount:  n,
		MaxOrder:        int(h.MMax),
		Channels:        int(h.NChannels),
		RelativeIOR:     float64(h.Eta),
	}

	// Payload blocks in file order.
	if err := readFloats(r, t.Elevations, "elevation"); err != nil {
		return nil, err
	}
	if err := readFloats(r, t.MarginalCDF, "cdf"); err != nil {
		return nil, err
	}
	offsetAndLength := make([]int32, 2*pairs)
	if err := binary.Read(r, binary.LittleEndian, offsetAndLength); err != nil {
		return nil, fmt.Errorf("%w: short offset block", ErrTruncated)
	}
	if err := readFloats(r, t.CoefficientPool, "coefficient"); err != nil {
		return nil, err
	}

	// Split the interleaved on-disk pairs into the offset and length
	// arrays and cache each slice's order-0 coefficient. Bounds are
	// checked here once so later lookups never have to.
	for k := 0; k < pairs; k++ {
		off, length := offsetAndLength[2*k], offsetAndLength[2*k+1]
		if off < 0 || length < 0 || int(off)+int(length) > len(t.CoefficientPool) {
			return nil, fmt.Errorf("%w: coefficient slice %d out of range", ErrTruncated, k)
		}
		if length > h.MMax {
			return nil, fmt.Errorf("%w: coefficient slice %d longer than max order", ErrTruncated, k)
		}

		t.SliceOffset[k] = off
		t.SliceLength[k] = length
		if length > 0 {
			t.ZerothCoeff[k] = t.CoefficientPool[off]
		}
	}

	// Divisor table for the series recurrence. Index 0 has no defined
	// reciprocal and stores an explicit 0; consumers start at order 1.
	t.Reciprocals = make([]float64, t.MaxOrder)
	for j := 1; j < t.MaxOrder; j++ {
		t.Reciprocals[j] = 1 / float64(j)
	}

	logrus.WithFields(logrus.Fields{
		"nMu":      n,
		"mMax":     t.MaxOrder,
		"channels": t.Channels,
		"coeffs":   len(t.CoefficientPool),
	}).Debug("decoded scattering table")

	return t, nil
}

// DecodeFile parses a scattering table from a file.
func DecodeFile(path string, opt *DecodeOptions) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b, opt)
}

// checkHeader rejects headers for file variants the decoder does not
// support, before anything is allocated for the payload.
func checkHeader(h header, opt DecodeOptions) error {
	if h.Flags != flagBSDF {
		return fmt.Errorf("%w: flags %#x", ErrUnsupported, h.Flags)
	}
	if h.NBases != 1 {
		return fmt.Errorf("%w: %d basis functions", ErrUnsupported, h.NBases)
	}
	if h.NChannels != 1 && h.NChannels != 3 {
		return fmt.Errorf("%w: %d channels", ErrUnsupported, h.NChannels)
	}
	if h.NMu <= 0 || h.MMax <= 0 || h.NCoeffs < 0 {
		return fmt.Errorf("%w: nMu=%d mMax=%d nCoeffs=%d", ErrUnsupported, h.NMu, h.MMax, h.NCoeffs)
	}

	if opt.DisableSizeGuard {
		return nil
	}
	if int(h.NMu) > opt.MaxElevationCount {
		return fmt.Errorf("%w: %d elevation samples exceeds limit %d", ErrUnsupported, h.NMu, opt.MaxElevationCount)
	}
	if int(h.NCoeffs) > opt.MaxCoeffCount {
		return fmt.Errorf("%w: %d coefficients exceeds limit %d", ErrUnsupported, h.NCoeffs, opt.MaxCoeffCount)
	}

	return nil
}

// readFloats reads a counted block of little-endian float32 values and
// widens them into dst.
func readFloats(r io.Reader, dst []float64, what string) error {
	buf := make([]float32, len(dst))
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return fmt.Errorf("%w: short %s block", ErrTruncated, what)
	}

	for i, v := range buf {
		dst[i] = float64(v)
	}

	return nil
}

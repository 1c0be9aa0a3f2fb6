package scatfun

// magic is the 8-byte file signature: "SCATFUN" followed by version 1.
var magic = [8]byte{'S', 'C', 'A', 'T', 'F', 'U', 'N', 1}

// flagBSDF marks a plain BSDF file. Other bits (harmonic extrapolation
// in particular) are not supported.
const flagBSDF = 1

// header is the fixed 56-byte little-endian payload that follows the
// magic bytes on disk. Reserved words carry metadata sizes and textured
// parameter counts in full files; this decoder ignores them.
type header struct {
	Flags     int32      // Must be flagBSDF
	NMu       int32      // Elevation sample count, > 0
	NCoeffs   int32      // Total coefficient count, >= 0
	MMax      int32      // Longest Fourier series length, > 0
	NChannels int32      // Color channel count, 1 or 3
	NBases    int32      // Basis function count, must be 1
	Reserved  [3]int32   // Metadata byte count and textured parameter counts, ignored
	Eta       float32    // Relative index of refraction
	ReservedF [4]float32 // Roughness and padding, ignored
}

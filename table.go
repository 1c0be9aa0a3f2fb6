package scatfun

// Table represents a decoded SCATFUN scattering table.
//
// A Table is built once by the decoder and never mutated afterwards, so
// it may be shared freely across rendering workers. The zero value is
// the sentinel "no scattering function" table: zero channels, all
// slices empty, never evaluated.
type Table struct {
	Elevations      []float64 // Cosines of the discretized elevation angles, ascending by producer convention
	MarginalCDF     []float64 // Row-major ElevationCount x ElevationCount CDF over outgoing elevation index
	CoefficientPool []float64 // Every Fourier coefficient for every elevation pair, concatenated
	SliceOffset     []int32   // Start of each pair's coefficient run inside CoefficientPool
	SliceLength     []int32   // Number of coefficients belonging to each pair
	ZerothCoeff     []float64 // Cached order-0 coefficient per pair, 0 for empty slices
	Reciprocals     []float64 // Reciprocals[j] = 1/j for the series recurrence; index 0 holds an explicit 0
	ElevationCount  int       // Number of elevation samples (nMu)
	MaxOrder        int       // Longest Fourier series length in the table (mMax)
	Channels        int       // Color channel count, 1 or 3; 0 marks the sentinel table
	RelativeIOR     float64   // Relative index of refraction across the interface (eta)
}

// IsSentinel reports whether the table is the "no scattering function"
// sentinel.
func (t *Table) IsSentinel() bool {
	return t == nil || t.Channels == 0
}

// PairCount returns the number of (incoming, outgoing) elevation-index
// pairs, ElevationCount squared.
func (t *Table) PairCount() int {
	return t.ElevationCount * t.ElevationCount
}

// Slice returns the Fourier coefficient run for the elevation-index
// pair (in, out). The returned slice aliases the coefficient pool and
// must not be modified. It is empty when the pair stores no
// coefficients or the indices are out of range.
func (t *Table) Slice(in, out int) []float64 {
	if in < 0 || out < 0 || in >= t.ElevationCount || out >= t.ElevationCount {
		return nil
	}

	k := out*t.ElevationCount + in
	off, n := int(t.SliceOffset[k]), int(t.SliceLength[k])
	if n == 0 {
		return nil
	}

	return t.CoefficientPool[off : off+n]
}

// Zeroth returns the cached order-0 coefficient for the elevation-index
// pair (in, out), or 0 when the indices are out of range.
func (t *Table) Zeroth(in, out int) float64 {
	if in < 0 || out < 0 || in >= t.ElevationCount || out >= t.ElevationCount {
		return 0
	}

	return t.ZerothCoeff[out*t.ElevationCount+in]
}

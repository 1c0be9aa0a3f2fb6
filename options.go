package scatfun

import "github.com/sirupsen/logrus"

// Default allocation guards applied by DecodeOptions.normalize.
const (
	defaultMaxElevationCount = 2048
	defaultMaxCoeffCount     = 1 << 24
)

// DecodeOptions controls decoding behavior.
type DecodeOptions struct {
	// MaxElevationCount caps the elevation sample count accepted from a
	// header (default 2048). Every per-pair table is quadratic in this
	// value, so a hostile header could otherwise demand huge allocations
	// before the first payload read.
	MaxElevationCount int
	// MaxCoeffCount caps the coefficient pool size accepted from a
	// header (default 1<<24).
	MaxCoeffCount int
	// DisableSizeGuard disables both allocation caps.
	DisableSizeGuard bool
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableMonotonicityCheck disables the ascending-elevations and
	// per-row CDF monotonicity warnings. Producers guarantee both; the
	// decoder deliberately does not enforce them.
	DisableMonotonicityCheck bool
	// DisableFiniteCheck disables the non-finite coefficient warnings.
	DisableFiniteCheck bool
	// DisableReciprocalCheck disables verification of the precomputed
	// reciprocal table.
	DisableReciprocalCheck bool
}

// MaterialOptions controls material construction.
type MaterialOptions struct {
	// Decode overrides the decoding options used for the table file.
	Decode *DecodeOptions
	// Logger receives the single diagnostic emitted when the table file
	// cannot be read (default logrus standard logger).
	Logger *logrus.Logger
	// Bump, when set, is invoked before the table is attached to a sink,
	// mirroring the bump-then-attach order of the surrounding renderer.
	// The perturbation itself is the caller's business.
	Bump func()
}

// normalize normalizes the DecodeOptions.
func (o *DecodeOptions) normalize() DecodeOptions {
	if o == nil {
		return DecodeOptions{
			MaxElevationCount: defaultMaxElevationCount,
			MaxCoeffCount:     defaultMaxCoeffCount,
		}
	}

	out := *o
	if out.MaxElevationCount <= 0 {
		out.MaxElevationCount = defaultMaxElevationCount
	}
	if out.MaxCoeffCount <= 0 {
		out.MaxCoeffCount = defaultMaxCoeffCount
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}

// normalize normalizes the MaterialOptions.
func (o *MaterialOptions) normalize() MaterialOptions {
	if o == nil {
		return MaterialOptions{Logger: logrus.StandardLogger()}
	}

	out := *o
	if out.Logger == nil {
		out.Logger = logrus.StandardLogger()
	}

	return out
}

package scatfun

import (
	"fmt"
	"math"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected field or index
}

// Validate validates a table and returns issues.
//
// Errors mean the table breaks a structural invariant the evaluator
// relies on; warnings flag producer-convention breaches the decoder
// deliberately does not enforce.
func Validate(t *Table, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	if t.IsSentinel() {
		return []Issue{{Level: IssueWarning, Code: "sentinel", Message: "sentinel table, nothing to validate"}}
	}

	if t.Channels != 1 && t.Channels != 3 {
		out = append(out, Issue{Level: IssueError, Code: "bad_channels", Message: fmt.Sprintf("channel count must be 1 or 3, got %d", t.Channels)})
	}
	if t.ElevationCount < 1 {
		out = append(out, Issue{Level: IssueError, Code: "bad_shape", Message: "elevation count must be positive"})
		return out
	}
	if t.MaxOrder < 1 {
		out = append(out, Issue{Level: IssueError, Code: "bad_shape", Message: "max order must be positive"})
	}

	pairs := t.PairCount()
	out = append(out, checkLen("elevations", len(t.Elevations), t.ElevationCount)...)
	out = append(out, checkLen("marginalCDF", len(t.MarginalCDF), pairs)...)
	out = append(out, checkLen("sliceOffset", len(t.SliceOffset), pairs)...)
	out = append(out, checkLen("sliceLength", len(t.SliceLength), pairs)...)
	out = append(out, checkLen("zerothCoeff", len(t.ZerothCoeff), pairs)...)
	if len(out) != 0 {
		// Shape errors make the per-pair checks below meaningless.
		return out
	}

	for k := 0; k < pairs; k++ {
		off, length := int(t.SliceOffset[k]), int(t.SliceLength[k])
		switch {
		case off < 0 || length < 0 || off+length > len(t.CoefficientPool):
			out = append(out, Issue{Level: IssueError, Code: "slice_bounds", Message: "coefficient slice out of range", Path: pairPath(k)})
		case length > t.MaxOrder:
			out = append(out, Issue{Level: IssueError, Code: "slice_order", Message: "coefficient slice longer than max order", Path: pairPath(k)})
		case length > 0 && t.ZerothCoeff[k] != t.CoefficientPool[off]:
			out = append(out, Issue{Level: IssueError, Code: "zeroth_mismatch", Message: "cached zeroth coefficient differs from pool", Path: pairPath(k)})
		case length == 0 && t.ZerothCoeff[k] != 0:
			out = append(out, Issue{Level: IssueError, Code: "zeroth_mismatch", Message: "zeroth coefficient of empty slice must be 0", Path: pairPath(k)})
		}
	}

	if !vopt.DisableReciprocalCheck {
		out = append(out, validateReciprocals(t)...)
	}

	if !vopt.DisableMonotonicityCheck {
		for i := 1; i < t.ElevationCount; i++ {
			if t.Elevations[i] < t.Elevations[i-1] {
				out = append(out, Issue{Level: IssueWarning, Code: "unsorted_elevations", Message: "elevation cosines not ascending", Path: fmt.Sprintf("elevations[%d]", i)})
				break
			}
		}
		for i := 0; i < t.ElevationCount; i++ {
			row := t.MarginalCDF[i*t.ElevationCount : (i+1)*t.ElevationCount]
			for j := 1; j < len(row); j++ {
				if row[j] < row[j-1] {
					out = append(out, Issue{Level: IssueWarning, Code: "unsorted_cdf", Message: "marginal CDF row not monotone", Path: fmt.Sprintf("marginalCDF[%d]", i)})
					break
				}
			}
		}
	}

	if t.RelativeIOR <= 0 {
		out = append(out, Issue{Level: IssueWarning, Code: "bad_eta", Message: fmt.Sprintf("relative IOR %g is not positive", t.RelativeIOR)})
	}

	if !vopt.DisableFiniteCheck {
		out = append(out, checkFinite("elevations", t.Elevations)...)
		out = append(out, checkFinite("marginalCDF", t.MarginalCDF)...)
		out = append(out, checkFinite("coefficientPool", t.CoefficientPool)...)
	}

	return out
}

// validateReciprocals checks the precomputed divisor table.
func validateReciprocals(t *Table) []Issue {
	if len(t.Reciprocals) != t.MaxOrder {
		return []Issue{{Level: IssueError, Code: "bad_shape", Message: fmt.Sprintf("reciprocals must have max order length %d, got %d", t.MaxOrder, len(t.Reciprocals))}}
	}

	var out []Issue
	if t.Reciprocals[0] != 0 {
		out = append(out, Issue{Level: IssueWarning, Code: "reciprocal_zero", Message: "reciprocal of order 0 should be the explicit 0 sentinel", Path: "reciprocals[0]"})
	}

	const tol = 1e-9
	for j := 1; j < t.MaxOrder; j++ {
		if math.Abs(t.Reciprocals[j]*float64(j)-1) > tol {
			out = append(out, Issue{Level: IssueError, Code: "reciprocal_mismatch", Message: "reciprocal table entry is not 1/j", Path: fmt.Sprintf("reciprocals[%d]", j)})
		}
	}

	return out
}

// checkLen reports a shape error when got differs from want.
func checkLen(name string, got, want int) []Issue {
	if got == want {
		return nil
	}

	return []Issue{{
		Level:   IssueError,
		Code:    "bad_shape",
		Message: fmt.Sprintf("%s must have length %d, got %d", name, want, got),
		Path:    name,
	}}
}

// checkFinite warns once per sequence containing NaN or infinities.
func checkFinite(name string, vals []float64) []Issue {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []Issue{{
				Level:   IssueWarning,
				Code:    "non_finite",
				Message: "sequence contains non-finite values",
				Path:    fmt.Sprintf("%s[%d]", name, i),
			}}
		}
	}

	return nil
}

// pairPath formats a pair index for issue paths.
func pairPath(k int) string {
	return fmt.Sprintf("pair[%d]", k)
}

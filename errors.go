package scatfun

import "errors"

var (
	// ErrBadMagic indicates the file does not start with the SCATFUN
	// signature and version byte.
	ErrBadMagic = errors.New("bad magic")

	// ErrUnsupported indicates a recognized but unsupported file variant
	// (textured, harmonically extrapolated, or an invalid channel count).
	ErrUnsupported = errors.New("unsupported file")

	// ErrTruncated indicates the stream ended before the data promised by
	// the header, or the offset tables point outside the coefficient pool.
	ErrTruncated = errors.New("truncated file")
)

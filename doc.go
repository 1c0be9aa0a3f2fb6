/*
Package scatfun provides reading, writing, and validation for SCATFUN
scattering-function files.

A SCATFUN file stores a tabulated isotropic scattering function in a
spline-in-elevation, Fourier-in-azimuth basis. The decoder turns such a
file into a Table holding the discretized elevation cosines, the
marginal CDF used for importance sampling, and the flat coefficient
pool together with the per-pair offset and length tables a renderer
needs for constant-time lookups. Only plain, single-basis files are
supported; textured and harmonically extrapolated variants are
rejected.

Reader example:

	t, err := scatfun.DecodeFile("plastic.bsdf", nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := scatfun.Marshal(t)
	if err != nil {
		// handle error
	}

Validator example:

	issues := scatfun.Validate(t, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Material example:

	m := scatfun.NewMaterial("plastic.bsdf", nil)
	if m.Active() {
		m.Attach(sink)
	}
*/
package scatfun

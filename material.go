package scatfun

// ScatteringSink receives a decoded table during surface shading. The
// rendering integrator implements it; AddScattering is only called
// with active tables.
type ScatteringSink interface {
	AddScattering(*Table)
}

// Material owns one scattering table loaded from a SCATFUN file.
//
// Construction never fails: a missing or malformed file is reported
// with a single log diagnostic and leaves the material holding the
// sentinel table, so a bad asset degrades the scene instead of
// aborting the render.
type Material struct {
	table *Table // Owned table, sentinel when the load failed
	path  string // Source file, kept for diagnostics
	bump  func() // Optional pre-attachment hook
}

// NewMaterial loads the scattering table at path and wraps it in a
// Material.
func NewMaterial(path string, opt *MaterialOptions) *Material {
	mopt := opt.normalize()
	m := &Material{path: path, bump: mopt.Bump}

	t, err := DecodeFile(path, mopt.Decode)
	if err != nil {
		mopt.Logger.WithField("file", path).WithError(err).Error("unusable scattering table")
		m.table = &Table{}
		return m
	}

	m.table = t
	return m
}

// Active reports whether the material holds a usable table.
func (m *Material) Active() bool {
	return !m.table.IsSentinel()
}

// Table returns the owned table. It is the sentinel when the load
// failed.
func (m *Material) Table() *Table {
	return m.table
}

// Path returns the file the table was loaded from.
func (m *Material) Path() string {
	return m.path
}

// Attach runs the bump hook, then hands the table to sink. A sentinel
// table contributes nothing.
func (m *Material) Attach(sink ScatteringSink) {
	if m.bump != nil {
		m.bump()
	}
	if m.Active() {
		sink.AddScattering(m.table)
	}
}

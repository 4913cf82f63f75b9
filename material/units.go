package material

// Physical constants (CODATA 2018).
const (
	// BohrAngstrom is the Bohr radius in Ångström.
	BohrAngstrom = 0.529177210903

	// RydbergEV is one Rydberg in electron-volts.
	RydbergEV = 13.605693122994
)

// Package kisao provides the Kinetic Simulation Algorithm Ontology
// identifiers used by the simulation experiments in this repository and
// helpers for reporting them.
package kisao

// CVODE and its sub-parameters, the identifiers emitted by OpenCOR for stiff
// BDF time course simulations.
const (
	CVODE = "KISAO:0000019"

	RelativeTolerance    = "KISAO:0000209"
	AbsoluteTolerance    = "KISAO:0000211"
	MaximumNumberOfSteps = "KISAO:0000415"
	MaximumStep          = "KISAO:0000467"
	IntegrationMethod    = "KISAO:0000475"
	IterationType        = "KISAO:0000476"
	LinearSolver         = "KISAO:0000477"
	Preconditioner       = "KISAO:0000478"
	UpperHalfBandwidth   = "KISAO:0000479"
	LowerHalfBandwidth   = "KISAO:0000480"
	InterpolateSolution  = "KISAO:0000481"
)

// Other algorithms a CellML-aware executor commonly supports.
const (
	ForwardEuler       = "KISAO:0000030"
	RungeKutta4        = "KISAO:0000032"
	RungeKuttaFehlberg = "KISAO:0000086"
	Heun               = "KISAO:0000301"
)

var names = map[string]string{
	CVODE:                "CVODE",
	RelativeTolerance:    "relative tolerance",
	AbsoluteTolerance:    "absolute tolerance",
	MaximumNumberOfSteps: "maximum number of steps",
	MaximumStep:          "maximum step",
	IntegrationMethod:    "integration method",
	IterationType:        "iteration type",
	LinearSolver:         "linear solver",
	Preconditioner:       "preconditioner",
	UpperHalfBandwidth:   "upper half-bandwidth",
	LowerHalfBandwidth:   "lower half-bandwidth",
	InterpolateSolution:  "interpolate solution",
	ForwardEuler:         "forward Euler method",
	RungeKutta4:          "fourth-order Runge-Kutta method",
	RungeKuttaFehlberg:   "Fehlberg method",
	Heun:                 "Heun method",
}

var algorithms = map[string]bool{
	CVODE:              true,
	ForwardEuler:       true,
	RungeKutta4:        true,
	RungeKuttaFehlberg: true,
	Heun:               true,
}

// IsValid reports whether id has the KISAO:NNNNNNN form.
func IsValid(id string) bool {
	const prefix = "KISAO:"
	if len(id) != len(prefix)+7 || id[:len(prefix)] != prefix {
		return false
	}
	for _, r := range id[len(prefix):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsAlgorithm reports whether id names an integration algorithm this
// repository's documents may reference.
func IsAlgorithm(id string) bool {
	return algorithms[id]
}

// Name returns the human-readable term name, or an empty string for unknown
// identifiers.
func Name(id string) string {
	return names[id]
}

// Describe returns "name (id)" for known terms and the bare id otherwise.
func Describe(id string) string {
	if name, ok := names[id]; ok {
		return name + " (" + id + ")"
	}
	return id
}

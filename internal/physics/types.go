package physics

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an ODE dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Integrator advances a system by one timestep.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

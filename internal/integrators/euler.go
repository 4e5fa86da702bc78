package integrators

import "github.com/san-kum/sketchdeck/internal/physics"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys physics.System, x physics.State, t, dt float64) physics.State {
	dx := sys.Derive(x, t)
	result := make(physics.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

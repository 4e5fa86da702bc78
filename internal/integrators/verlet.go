package integrators

import "github.com/san-kum/sketchdeck/internal/physics"

// Verlet is velocity Verlet for states laid out as [positions..., velocities...].
type Verlet struct {
	scratch physics.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(sys physics.System, x physics.State, t, dt float64) physics.State {
	n := len(x)
	half := n / 2
	if len(v.scratch) != n {
		v.scratch = make(physics.State, n)
	}

	result := make(physics.State, n)
	dx := sys.Derive(x, t)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	for i := 0; i < half; i++ {
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}

	dxNew := sys.Derive(v.scratch, t+dt)

	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}

	return result
}

package physics

// Ball is a point mass in canvas space: x, y, vx, vy with y growing down.
type Ball struct {
	Gravity float64
	Drag    float64
}

func NewBall() *Ball {
	return &Ball{Gravity: 980, Drag: 0.05}
}

func (b *Ball) Dim() int { return 4 }

func (b *Ball) Derive(x State, t float64) State {
	vx, vy := x[2], x[3]
	return State{
		vx,
		vy,
		-b.Drag * vx,
		b.Gravity - b.Drag*vy,
	}
}

// Bounce reflects the ball off the walls of a w x h box, losing energy by
// restitution. It reports whether any wall was hit.
func Bounce(x State, radius, w, h, restitution float64) bool {
	hit := false
	if x[0] < radius {
		x[0] = radius
		x[2] = -x[2] * restitution
		hit = true
	} else if x[0] > w-radius {
		x[0] = w - radius
		x[2] = -x[2] * restitution
		hit = true
	}
	if x[1] < radius {
		x[1] = radius
		x[3] = -x[3] * restitution
		hit = true
	} else if x[1] > h-radius {
		x[1] = h - radius
		x[3] = -x[3] * restitution
		hit = true
	}
	return hit
}

package physics

import "math"

// Swarm drifts N particles at constant velocity. While Active, each particle
// is also pulled toward (TargetX, TargetY).
type Swarm struct {
	N       int
	TargetX float64
	TargetY float64
	Pull    float64
	Active  bool
}

func NewSwarm(n int) *Swarm {
	return &Swarm{N: n, Pull: 400}
}

func (s *Swarm) Dim() int { return s.N * 4 }

func (s *Swarm) Derive(x State, t float64) State {
	half := s.N * 2
	dx := make(State, len(x))
	copy(dx[:half], x[half:])
	if !s.Active {
		return dx
	}
	for i := 0; i < s.N; i++ {
		px, py := x[2*i], x[2*i+1]
		ox, oy := s.TargetX-px, s.TargetY-py
		d := math.Hypot(ox, oy)
		if d < 1 {
			continue
		}
		dx[half+2*i] = s.Pull * ox / d
		dx[half+2*i+1] = s.Pull * oy / d
	}
	return dx
}

// Position returns particle i's position.
func (s *Swarm) Position(x State, i int) (float64, float64) {
	return x[2*i], x[2*i+1]
}

// Velocity returns particle i's velocity.
func (s *Swarm) Velocity(x State, i int) (float64, float64) {
	half := s.N * 2
	return x[half+2*i], x[half+2*i+1]
}

// Limit clamps every particle's speed to max.
func (s *Swarm) Limit(x State, max float64) {
	half := s.N * 2
	for i := 0; i < s.N; i++ {
		vx, vy := x[half+2*i], x[half+2*i+1]
		sp := math.Hypot(vx, vy)
		if sp > max {
			x[half+2*i] = vx / sp * max
			x[half+2*i+1] = vy / sp * max
		}
	}
}

// Wrap moves particles leaving a w x h box to the opposite edge.
func (s *Swarm) Wrap(x State, w, h float64) {
	for i := 0; i < s.N; i++ {
		x[2*i] = wrap(x[2*i], w)
		x[2*i+1] = wrap(x[2*i+1], h)
	}
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

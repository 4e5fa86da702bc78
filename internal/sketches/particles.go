package sketches

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/sketchdeck/internal/integrators"
	"github.com/san-kum/sketchdeck/internal/physics"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

// MaxParticles caps the particle count; links are checked pairwise.
const MaxParticles = 50

// Particles drifts a small swarm across the canvas and links every pair
// closer than LinkDistance. Pressing the pointer attracts the swarm.
type Particles struct {
	Count        int
	LinkDistance float64
	MaxSpeed     float64
	Seed         uint64
}

func NewParticles() *Particles {
	return &Particles{Count: MaxParticles, LinkDistance: 110, MaxSpeed: 220, Seed: 7}
}

type particleState struct {
	sys    *physics.Swarm
	integ  *integrators.Euler
	x      physics.State
	hues   []float64
	rng    *rand.Rand
	t      float64
	placed bool
	// area reports whether the swarm was spread over a non-empty canvas.
	area bool
}

func (p *Particles) count() int {
	return min(max(p.Count, 0), MaxParticles)
}

func (p *Particles) Init() sketch.State {
	n := p.count()
	return &particleState{
		sys:   physics.NewSwarm(n),
		integ: integrators.NewEuler(),
		hues:  make([]float64, n),
		rng:   rand.New(rand.NewPCG(p.Seed, p.Seed+1)),
	}
}

func (p *Particles) place(ps *particleState, w, h float64) {
	n := ps.sys.N
	ps.x = make(physics.State, ps.sys.Dim())
	half := n * 2
	for i := 0; i < n; i++ {
		ps.x[2*i] = ps.rng.Float64() * w
		ps.x[2*i+1] = ps.rng.Float64() * h
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 20 + ps.rng.Float64()*50
		ps.x[half+2*i] = math.Cos(angle) * speed
		ps.x[half+2*i+1] = math.Sin(angle) * speed
		ps.hues[i] = 180 + ps.rng.Float64()*120
	}
	ps.placed = true
	ps.area = w > 0 && h > 0
}

func (p *Particles) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	ps := st.(*particleState)
	if !ps.placed || (!ps.area && f.Width > 0 && f.Height > 0) {
		p.place(ps, f.Width, f.Height)
	}

	if dt := math.Min(f.Seconds(), maxStep); dt > 0 {
		ps.sys.Active = f.Pointer.Pressed && f.Pointer.Inside
		ps.sys.TargetX, ps.sys.TargetY = f.Pointer.X, f.Pointer.Y
		ps.x = ps.integ.Step(ps.sys, ps.x, ps.t, dt)
		ps.t += dt
		ps.sys.Limit(ps.x, p.MaxSpeed)
		ps.sys.Wrap(ps.x, f.Width, f.Height)
	}

	s.Background(baseColor(f.Dark))
	s.StrokeWeight(1)
	n := ps.sys.N
	for i := 0; i < n; i++ {
		xi, yi := ps.sys.Position(ps.x, i)
		for j := i + 1; j < n; j++ {
			xj, yj := ps.sys.Position(ps.x, j)
			d := math.Hypot(xi-xj, yi-yj)
			if d >= p.LinkDistance {
				continue
			}
			a := (1 - d/p.LinkDistance) * 0.6
			s.Stroke(sketch.HSB((ps.hues[i]+ps.hues[j])/2, 60, 100, a))
			s.Line(xi, yi, xj, yj)
		}
	}

	s.NoStroke()
	for i := 0; i < n; i++ {
		x, y := ps.sys.Position(ps.x, i)
		s.Fill(sketch.HSB(ps.hues[i], 70, 100, 0.9))
		s.Ellipse(x, y, 6, 6)
	}

	if f.Pointer.Pressed && f.Pointer.Inside {
		s.NoFill()
		s.Stroke(sketch.HSB(50, 100, 90, 0.5))
		s.Ellipse(f.Pointer.X, f.Pointer.Y, 24, 24)
	}
}

// Links counts the pairs currently closer than the link distance.
func (p *Particles) Links(st sketch.State) int {
	ps := st.(*particleState)
	if !ps.placed {
		return 0
	}
	links := 0
	for i := 0; i < ps.sys.N; i++ {
		xi, yi := ps.sys.Position(ps.x, i)
		for j := i + 1; j < ps.sys.N; j++ {
			xj, yj := ps.sys.Position(ps.x, j)
			if math.Hypot(xi-xj, yi-yj) < p.LinkDistance {
				links++
			}
		}
	}
	return links
}

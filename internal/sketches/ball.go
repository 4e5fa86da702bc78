package sketches

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/sketchdeck/internal/integrators"
	"github.com/san-kum/sketchdeck/internal/physics"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

const (
	maxStep   = 1.0 / 30
	subStep   = 1.0 / 240
	trailSize = 24
)

// Ball bounces a ball around the canvas. Holding the pointer down drags the
// ball toward it on a spring; releasing throws it.
type Ball struct {
	Radius      float64
	Restitution float64
	Seed        uint64
}

func NewBall() *Ball {
	return &Ball{Radius: 24, Restitution: 0.85, Seed: 1}
}

type ballState struct {
	x      physics.State
	sys    *physics.Ball
	integ  *integrators.Verlet
	rng    *rand.Rand
	t      float64
	placed bool
	trail  []point
}

type point struct{ x, y float64 }

func (b *Ball) Init() sketch.State {
	return &ballState{
		sys:   physics.NewBall(),
		integ: integrators.NewVerlet(),
		rng:   rand.New(rand.NewPCG(b.Seed, b.Seed^0x9e3779b97f4a7c15)),
		trail: make([]point, 0, trailSize),
	}
}

func (b *Ball) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	bs := st.(*ballState)
	if !bs.placed {
		bs.x = physics.State{f.Width / 2, f.Height / 4, 240, 0}
		bs.placed = true
	}
	b.step(bs, f)

	s.Background(baseColor(f.Dark))

	s.NoStroke()
	for i, p := range bs.trail {
		a := float64(i+1) / float64(len(bs.trail)) * 0.35
		s.Fill(sketch.HSB(330, 70, 100, a))
		r := b.Radius * (0.4 + 0.6*float64(i+1)/float64(len(bs.trail)))
		s.Ellipse(p.x, p.y, r, r)
	}

	// Shadow grows as the ball nears the floor.
	near := 1 - math.Min(1, (f.Height-bs.x[1])/math.Max(f.Height, 1))
	s.Fill(sketch.Gray(0, 0.15+0.25*near))
	s.Ellipse(bs.x[0], f.Height-4, b.Radius*2*(0.5+near), 6)

	s.Fill(sketch.VibrantMagenta)
	if f.Dark {
		s.Stroke(sketch.White)
	} else {
		s.Stroke(sketch.Gray(30, 1))
	}
	s.StrokeWeight(1.5)
	s.Ellipse(bs.x[0], bs.x[1], b.Radius*2, b.Radius*2)
}

func (b *Ball) step(bs *ballState, f sketch.Frame) {
	dt := math.Min(f.Seconds(), maxStep)
	if dt <= 0 {
		return
	}

	if f.Pointer.Pressed && f.Pointer.Inside {
		spring := harmonica.NewSpring(dt, 8, 0.7)
		bs.x[0], bs.x[2] = spring.Update(bs.x[0], bs.x[2], f.Pointer.X)
		bs.x[1], bs.x[3] = spring.Update(bs.x[1], bs.x[3], f.Pointer.Y)
	} else {
		for remaining := dt; remaining > 0; remaining -= subStep {
			h := math.Min(subStep, remaining)
			bs.x = bs.integ.Step(bs.sys, bs.x, bs.t, h)
			bs.t += h
			physics.Bounce(bs.x, b.Radius, f.Width, f.Height, b.Restitution)
		}
		b.relaunch(bs, f)
	}

	if !bs.x.IsValid() {
		bs.placed = false
		bs.trail = bs.trail[:0]
		return
	}

	bs.trail = append(bs.trail, point{bs.x[0], bs.x[1]})
	if len(bs.trail) > trailSize {
		bs.trail = bs.trail[1:]
	}
}

// relaunch kicks the ball back up once it has settled on the floor.
func (b *Ball) relaunch(bs *ballState, f sketch.Frame) {
	onFloor := bs.x[1] >= f.Height-b.Radius-0.5
	if onFloor && math.Abs(bs.x[3]) < 40 {
		bs.x[2] = (bs.rng.Float64()*2 - 1) * 320
		bs.x[3] = -(600 + bs.rng.Float64()*400)
	}
}

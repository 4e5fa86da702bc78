package sketches

import (
	"fmt"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// Descriptors of the built-in sketches, in selector order.
var (
	GridInfo = sketch.Descriptor{
		ID:          "grid",
		Title:       "Grid",
		Description: "Static reference grid",
	}
	BallInfo = sketch.Descriptor{
		ID:           "ball",
		Title:        "Bouncing Ball",
		Description:  "Gravity, drag and bouncy walls",
		RequiresLoop: true,
	}
	ParticlesInfo = sketch.Descriptor{
		ID:           "particles",
		Title:        "Particles",
		Description:  "Drifting particles linked by proximity",
		RequiresLoop: true,
	}
	WaveInfo = sketch.Descriptor{
		ID:           "wave",
		Title:        "Sine Wave",
		Description:  "Layered travelling sine waves",
		RequiresLoop: true,
	}
	CNNInfo = sketch.Descriptor{
		ID:           "cnn",
		Title:        "CNN",
		Description:  "Convolutional Neural Network",
		RequiresLoop: true,
	}
)

// Default builds a registry with every built-in sketch.
func Default() (*sketch.Registry, error) {
	reg := sketch.NewRegistry()
	builtins := []struct {
		desc     sketch.Descriptor
		renderer sketch.Renderer
	}{
		{GridInfo, NewGrid()},
		{BallInfo, NewBall()},
		{ParticlesInfo, NewParticles()},
		{WaveInfo, NewWave()},
		{CNNInfo, NewCNN()},
	}
	for _, b := range builtins {
		if err := reg.Register(b.desc, b.renderer); err != nil {
			return nil, fmt.Errorf("registering built-in sketches: %w", err)
		}
	}
	return reg, nil
}

// MustDefault is Default for start-up code; a registration error is a
// programming error.
func MustDefault() *sketch.Registry {
	reg, err := Default()
	if err != nil {
		panic(err)
	}
	return reg
}

// Package sketches holds the built-in animations.
//
//   - [Grid]: static reference grid (the only sketch that does not loop)
//   - [Ball]: a ball under gravity bouncing off the canvas walls
//   - [Particles]: up to [MaxParticles] drifting particles linked by proximity
//   - [Wave]: layered travelling sine waves
//   - [CNN]: schematic of a convolutional neural network
//
// [Default] registers all of them in selector order. [WithReadout] wraps any
// renderer with the FPS and pointer readout.
package sketches

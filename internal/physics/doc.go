// Package physics provides the small dynamical systems behind the moving
// sketches.
//
// State vectors keep positions in the first half and velocities in the
// second half, so position-velocity integrators such as Verlet can split
// them without knowing the system:
//
//   - [Ball]: a point mass under gravity and linear drag
//   - [Swarm]: free-drifting particles with optional attraction to a target
package physics

package sim

import "github.com/go-gl/mathgl/mgl64"

// Particle is one body of the simulation. The visualization layer reads the
// particle slice but never mutates it; stepping and rendering run from the
// same tick, in that order.
type Particle struct {
	Pos    mgl64.Vec3
	Vel    mgl64.Vec3
	Mass   float64
	Radius float64
	Charge float64
}

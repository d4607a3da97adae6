// Package sim holds the particle state consumed by the visualization engine
// and a direct-sum gravity stepper sufficient to drive it.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sankalp-v/gravview/internal/boundary"
)

// AllActive is the sentinel for NActive meaning every particle is a massive,
// force-contributing body.
const AllActive = -1

// Simulation is the live state shared with the renderer. Index 0 is the
// primary body used as the reference for orbital elements.
type Simulation struct {
	Particles []Particle
	NActive   int
	Bounds    boundary.Conditions
	Ghost     [3]int
	Textures  []string
	G         float64
	Softening float64
	Dt        float64
	T         float64

	acc []mgl64.Vec3
}

// Active returns the effective number of active particles, resolving the
// AllActive sentinel.
func (s *Simulation) Active() int {
	if s.NActive == AllActive {
		return len(s.Particles)
	}
	return s.NActive
}

func (s *Simulation) accelerations() []mgl64.Vec3 {
	n := len(s.Particles)
	if len(s.acc) != n {
		s.acc = make([]mgl64.Vec3, n)
	}
	for i := range s.acc {
		s.acc[i] = mgl64.Vec3{}
	}
	if n >= parallelThreshold {
		s.accelerateParallel()
	} else {
		s.accelerateRange(0, n)
	}
	return s.acc
}

// accelerateRange computes direct-sum gravity for particles [lo, hi).
func (s *Simulation) accelerateRange(lo, hi int) {
	eps2 := s.Softening * s.Softening
	na := s.Active()
	for i := lo; i < hi; i++ {
		pi := &s.Particles[i]
		for j := 0; j < na; j++ {
			if i == j {
				continue
			}
			pj := &s.Particles[j]
			d := pj.Pos.Sub(pi.Pos)
			r2 := d.Dot(d) + eps2
			inv := 1.0 / math.Sqrt(r2)
			s.acc[i] = s.acc[i].Add(d.Mul(s.G * pj.Mass * inv * inv * inv))
		}
	}
}

// Step advances the simulation by one kick-drift-kick leapfrog step and
// applies periodic wrapping when the boundary condition calls for it.
func (s *Simulation) Step() {
	half := 0.5 * s.Dt
	acc := s.accelerations()
	for i := range s.Particles {
		s.Particles[i].Vel = s.Particles[i].Vel.Add(acc[i].Mul(half))
		s.Particles[i].Pos = s.Particles[i].Pos.Add(s.Particles[i].Vel.Mul(s.Dt))
	}
	s.wrap()
	acc = s.accelerations()
	for i := range s.Particles {
		s.Particles[i].Vel = s.Particles[i].Vel.Add(acc[i].Mul(half))
	}
	s.T += s.Dt
}

func (s *Simulation) wrap() {
	if s.Bounds.Type == boundary.Open {
		return
	}
	box := [3]float64{s.Bounds.Box.X, s.Bounds.Box.Y, s.Bounds.Box.Z}
	for i := range s.Particles {
		for ax := 0; ax < 3; ax++ {
			if box[ax] <= 0 {
				continue
			}
			for s.Particles[i].Pos[ax] > box[ax]/2 {
				s.Particles[i].Pos[ax] -= box[ax]
			}
			for s.Particles[i].Pos[ax] < -box[ax]/2 {
				s.Particles[i].Pos[ax] += box[ax]
			}
		}
	}
}

// Energy returns the total mechanical energy of the active bodies.
func (s *Simulation) Energy() float64 {
	ke, pe := 0.0, 0.0
	na := s.Active()
	for i := 0; i < na; i++ {
		pi := s.Particles[i]
		ke += 0.5 * pi.Mass * pi.Vel.Dot(pi.Vel)
		for j := i + 1; j < na; j++ {
			d := s.Particles[j].Pos.Sub(pi.Pos)
			r := math.Sqrt(d.Dot(d) + s.Softening*s.Softening)
			pe -= s.G * pi.Mass * s.Particles[j].Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum of the active bodies.
func (s *Simulation) Momentum() mgl64.Vec3 {
	var p mgl64.Vec3
	for i := 0; i < s.Active(); i++ {
		p = p.Add(s.Particles[i].Vel.Mul(s.Particles[i].Mass))
	}
	return p
}

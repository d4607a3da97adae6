package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sankalp-v/gravview/internal/boundary"
)

// PresetNames lists the built-in initial conditions.
func PresetNames() []string {
	return []string{"disc", "cloud", "binary"}
}

// NewPreset builds a simulation from a named initial condition. n is the
// total particle count (presets clamp it to a sane minimum).
func NewPreset(name string, n int, seed int64) (*Simulation, error) {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case "disc", "":
		return newDisc(n, rng), nil
	case "cloud":
		return newCloud(n, rng), nil
	case "binary":
		return newBinary(n, rng), nil
	}
	return nil, ErrUnknownPreset
}

// newDisc places a solar-mass primary at the origin with n-1 test particles
// on near-circular orbits. Orbit wires are most readable here.
func newDisc(n int, rng *rand.Rand) *Simulation {
	if n < 2 {
		n = 2
	}
	s := &Simulation{
		NActive:   1,
		G:         1,
		Softening: 1e-4,
		Dt:        1e-3,
		Bounds:    boundary.Conditions{Type: boundary.Open, Box: boundary.Box{X: 4, Y: 4, Z: 4}},
	}
	s.Particles = make([]Particle, n)
	s.Particles[0] = Particle{Mass: 1, Radius: 0.02}
	s.Textures = make([]string, n)
	s.Textures[0] = "star1"
	for i := 1; i < n; i++ {
		a := 0.4 + 1.2*rng.Float64()
		phi := 2 * math.Pi * rng.Float64()
		v := math.Sqrt(s.G / a)
		s.Particles[i] = Particle{
			Pos:    mgl64.Vec3{a * math.Cos(phi), a * math.Sin(phi), 0.02 * (rng.Float64() - 0.5)},
			Vel:    mgl64.Vec3{-v * math.Sin(phi), v * math.Cos(phi), 0},
			Mass:   0,
			Radius: 0.008,
		}
		s.Textures[i] = "planet1"
	}
	return s
}

// newCloud fills a periodic box with equal-mass bodies. The natural preset
// for ghost-box and tree display.
func newCloud(n int, rng *rand.Rand) *Simulation {
	if n < 8 {
		n = 8
	}
	const box = 2.0
	s := &Simulation{
		NActive:   AllActive,
		G:         1,
		Softening: 0.01,
		Dt:        2e-3,
		Ghost:     [3]int{1, 1, 1},
		Bounds:    boundary.Conditions{Type: boundary.Periodic, Box: boundary.Box{X: box, Y: box, Z: box}},
	}
	s.Particles = make([]Particle, n)
	s.Textures = make([]string, n)
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Pos: mgl64.Vec3{
				box * (rng.Float64() - 0.5),
				box * (rng.Float64() - 0.5),
				box * (rng.Float64() - 0.5),
			},
			Mass:   1.0 / float64(n),
			Radius: box / 120,
		}
		s.Textures[i] = "star1"
	}
	return s
}

// newBinary puts two massive bodies on a mutual orbit with a swarm of test
// particles around them.
func newBinary(n int, rng *rand.Rand) *Simulation {
	if n < 2 {
		n = 2
	}
	s := &Simulation{
		NActive:   2,
		G:         1,
		Softening: 1e-4,
		Dt:        1e-3,
		Bounds:    boundary.Conditions{Type: boundary.Open, Box: boundary.Box{X: 6, Y: 6, Z: 6}},
	}
	s.Particles = make([]Particle, n)
	s.Textures = make([]string, n)
	sep, m := 0.5, 0.5
	vorb := 0.5 * math.Sqrt(s.G*2*m/sep)
	s.Particles[0] = Particle{Pos: mgl64.Vec3{-sep / 2, 0, 0}, Vel: mgl64.Vec3{0, -vorb, 0}, Mass: m, Radius: 0.02}
	s.Particles[1] = Particle{Pos: mgl64.Vec3{sep / 2, 0, 0}, Vel: mgl64.Vec3{0, vorb, 0}, Mass: m, Radius: 0.02}
	s.Textures[0], s.Textures[1] = "star1", "star1"
	for i := 2; i < n; i++ {
		a := 1.0 + 1.5*rng.Float64()
		phi := 2 * math.Pi * rng.Float64()
		v := math.Sqrt(s.G * 2 * m / a)
		s.Particles[i] = Particle{
			Pos:    mgl64.Vec3{a * math.Cos(phi), a * math.Sin(phi), 0.05 * (rng.Float64() - 0.5)},
			Vel:    mgl64.Vec3{-v * math.Sin(phi), v * math.Cos(phi), 0},
			Radius: 0.006,
		}
		s.Textures[i] = "planet1"
	}
	return s
}

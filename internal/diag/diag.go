// Package diag writes run diagnostics: console timing lines, particle and
// orbit dumps, and simple velocity statistics for headless runs.
package diag

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sankalp-v/gravview/internal/orbit"
	"github.com/sankalp-v/gravview/internal/sim"
)

// ShouldOutput reports whether an output interval boundary was crossed by
// the step ending at time t, and always fires at the start and end of a run.
func ShouldOutput(t, dt, interval, tmax float64) bool {
	if interval <= 0 {
		return false
	}
	if t == 0 || (tmax > 0 && t >= tmax) {
		return true
	}
	return int(t/interval) != int((t-dt)/interval)
}

// Timer prints the in-place console status line for long runs.
type Timer struct {
	started bool
	lastCPU time.Time
}

// Line writes one status line, rewinding over the previous one.
func (tm *Timer) Line(w io.Writer, n int, t, tmax float64) {
	now := time.Now()
	if !tm.started {
		tm.started = true
		tm.lastCPU = now
	} else {
		fmt.Fprint(w, "\r")
	}
	cpu := now.Sub(tm.lastCPU).Seconds()
	if tmax > 0 {
		fmt.Fprintf(w, "N= %-9d t= %-9f cpu= %-9f s t/tmax= %5.2f%%", n, t, cpu, t/tmax*100)
	} else {
		fmt.Fprintf(w, "N= %-9d t= %-9f cpu= %-9f s", n, t, cpu)
	}
	tm.lastCPU = now
}

func open(path string, appendTo bool) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0644)
}

// WriteParticles dumps positions and velocities as tab-separated text.
func WriteParticles(path string, particles []sim.Particle, appendTo bool) error {
	f, err := open(path, appendTo)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, p := range particles {
		_, err := fmt.Fprintf(f, "%e\t%e\t%e\t%e\t%e\t%e\n",
			p.Pos.X(), p.Pos.Y(), p.Pos.Z(), p.Vel.X(), p.Vel.Y(), p.Vel.Z())
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteOrbits dumps osculating elements of every non-primary particle
// relative to particle 0.
func WriteOrbits(path string, s *sim.Simulation, appendTo bool) error {
	if len(s.Particles) == 0 {
		return ErrNoPrimary
	}
	f, err := open(path, appendTo)
	if err != nil {
		return err
	}
	defer f.Close()
	primary := s.Particles[0]
	mu := s.G * primary.Mass
	for i := 1; i < len(s.Particles); i++ {
		p := s.Particles[i]
		el := orbit.FromState(p.Pos.Sub(primary.Pos), p.Vel.Sub(primary.Vel), mu)
		_, err := fmt.Fprintf(f, "%e\t%e\t%e\t%e\t%e\t%e\t%e\t%e\t%e\n",
			s.T, el.A, el.Ecc, el.Inc, el.Node, el.Peri, el.MeanL, el.Period, el.TrueAnom)
		if err != nil {
			return err
		}
	}
	return nil
}

package diag

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sankalp-v/gravview/internal/sim"
)

// VelocityDispersion returns the per-axis mean velocity and the standard
// deviation about it, computed with Welford's online update.
func VelocityDispersion(particles []sim.Particle) (mean, sigma mgl64.Vec3) {
	var m2 mgl64.Vec3
	for i, p := range particles {
		n := float64(i + 1)
		for a := 0; a < 3; a++ {
			delta := p.Vel[a] - mean[a]
			mean[a] += delta / n
			m2[a] += delta * (p.Vel[a] - mean[a])
		}
	}
	if len(particles) > 1 {
		n := float64(len(particles))
		for a := 0; a < 3; a++ {
			sigma[a] = math.Sqrt(m2[a] / n)
		}
	}
	return mean, sigma
}

// Histogram bins radial distances from the origin. Both domain edges are
// inclusive: a sample exactly at the top edge lands in the last bin.
type Histogram struct {
	Min, Max float64
	Counts   []int
	skipped  int
}

// NewHistogram allocates a histogram over [min, max] with bins buckets.
// A degenerate domain (max <= min) is widened to one unit so binning
// arithmetic stays finite.
func NewHistogram(min, max float64, bins int) *Histogram {
	if bins < 1 {
		bins = 1
	}
	if max <= min {
		max = min + 1
	}
	return &Histogram{Min: min, Max: max, Counts: make([]int, bins)}
}

// Add records one sample. Out-of-range samples are counted as skipped.
func (h *Histogram) Add(r float64) bool {
	if r < h.Min || r > h.Max {
		h.skipped++
		return false
	}
	// Clamp on both ends: the top edge belongs to the last bin, and a
	// non-finite sample that slips past the range check must not index
	// out of bounds.
	i := int((r - h.Min) / (h.Max - h.Min) * float64(len(h.Counts)))
	if i < 0 {
		i = 0
	} else if i >= len(h.Counts) {
		i = len(h.Counts) - 1
	}
	h.Counts[i]++
	return true
}

// AddRadii bins the radial distance of every particle position.
func (h *Histogram) AddRadii(particles []sim.Particle) {
	for _, p := range particles {
		h.Add(p.Pos.Len())
	}
}

// Write prints one line per bin: lower edge, upper edge, count.
func (h *Histogram) Write(w io.Writer) error {
	width := (h.Max - h.Min) / float64(len(h.Counts))
	for i, c := range h.Counts {
		lo := h.Min + float64(i)*width
		if _, err := fmt.Fprintf(w, "%e\t%e\t%d\n", lo, lo+width, c); err != nil {
			return err
		}
	}
	return nil
}

// Skipped returns how many samples fell outside the domain.
func (h *Histogram) Skipped() int { return h.skipped }

// Total returns the number of binned samples.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Package orbit converts Cartesian particle state into osculating two-body
// orbital elements and samples the matching Keplerian ellipse for drawing.
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultStep is the true-anomaly sampling step used for orbit wires.
const DefaultStep = math.Pi / 100

// tiny is the threshold below which eccentricity and inclination vectors are
// treated as degenerate.
const tiny = 1e-10

// Elements are instantaneous two-body ellipse parameters. Angles are radians.
type Elements struct {
	A        float64 // semi-major axis
	Ecc      float64 // eccentricity
	Inc      float64 // inclination
	Node     float64 // longitude of ascending node
	Peri     float64 // argument of periapsis
	MeanL    float64 // mean longitude
	Period   float64
	TrueAnom float64
}

// FromState computes osculating elements from position and velocity relative
// to the primary, with mu the primary's gravitational parameter (G·M).
func FromState(rel, vel mgl64.Vec3, mu float64) Elements {
	r := rel.Len()
	v2 := vel.Dot(vel)
	h := rel.Cross(vel)
	hm := h.Len()

	var el Elements
	el.A = 1.0 / (2.0/r - v2/mu)
	el.Inc = math.Acos(clamp(h.Z() / hm))

	// Eccentricity vector points at periapsis.
	evec := vel.Cross(h).Mul(1 / mu).Sub(rel.Mul(1 / r))
	el.Ecc = evec.Len()

	// Node vector lies along the ascending node.
	n := mgl64.Vec3{0, 0, 1}.Cross(h)
	nm := n.Len()

	switch {
	case nm < tiny && el.Ecc < tiny:
		// Circular equatorial: measure the true anomaly from the x axis.
		el.TrueAnom = math.Atan2(rel.Y(), rel.X())
	case nm < tiny:
		// Equatorial: periapsis measured from the x axis.
		el.Peri = math.Atan2(evec.Y(), evec.X())
		el.TrueAnom = angleBetween(evec, rel, el.Ecc*r)
		if rel.Dot(vel) < 0 {
			el.TrueAnom = 2*math.Pi - el.TrueAnom
		}
	case el.Ecc < tiny:
		// Circular inclined: anomaly measured from the node.
		el.Node = math.Atan2(n.Y(), n.X())
		el.TrueAnom = angleBetween(n, rel, nm*r)
		if rel.Z() < 0 {
			el.TrueAnom = 2*math.Pi - el.TrueAnom
		}
	default:
		el.Node = math.Atan2(n.Y(), n.X())
		el.Peri = angleBetween(n, evec, nm*el.Ecc)
		if evec.Z() < 0 {
			el.Peri = 2*math.Pi - el.Peri
		}
		el.TrueAnom = angleBetween(evec, rel, el.Ecc*r)
		if rel.Dot(vel) < 0 {
			el.TrueAnom = 2*math.Pi - el.TrueAnom
		}
	}

	if el.A > 0 {
		el.Period = 2 * math.Pi * math.Sqrt(el.A*el.A*el.A/mu)
	}
	el.MeanL = mod2pi(el.Node + el.Peri + meanAnomaly(el.Ecc, el.TrueAnom))
	return el
}

// Radius evaluates the polar form r(f) = a(1−e²)/(1+e·cos f).
func (el Elements) Radius(f float64) float64 {
	return el.A * (1 - el.Ecc*el.Ecc) / (1 + el.Ecc*math.Cos(f))
}

// Path samples one full revolution of the ellipse at the given true-anomaly
// step and places it in 3D by rotating through Node, Inc and Peri. The loop
// is closed by the caller connecting the last point back to the first.
func (el Elements) Path(step float64) []mgl64.Vec3 {
	if step <= 0 {
		step = DefaultStep
	}
	rot := mgl64.Rotate3DZ(el.Node).
		Mul3(mgl64.Rotate3DX(el.Inc)).
		Mul3(mgl64.Rotate3DZ(el.Peri))
	n := int(math.Round(2 * math.Pi / step))
	pts := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		f := float64(i) * step
		r := el.Radius(f)
		pts = append(pts, rot.Mul3x1(mgl64.Vec3{r * math.Cos(f), r * math.Sin(f), 0}))
	}
	return pts
}

func meanAnomaly(e, f float64) float64 {
	if e >= 1 {
		return f
	}
	ea := 2 * math.Atan2(math.Sqrt(1-e)*math.Sin(f/2), math.Sqrt(1+e)*math.Cos(f/2))
	return ea - e*math.Sin(ea)
}

func angleBetween(a, b mgl64.Vec3, norm float64) float64 {
	if norm < tiny {
		return 0
	}
	return math.Acos(clamp(a.Dot(b) / norm))
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func mod2pi(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

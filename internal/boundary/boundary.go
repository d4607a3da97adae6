// Package boundary describes the simulation domain box and the ghost-image
// translations implied by its boundary condition.
//
// A ghost image (i,j,k) is a translated copy of the whole domain used to
// visualize (and resolve forces across) wrap-around neighbors. The lookup
// Conditions.Ghost is a pure function of the index triple.
package boundary

import "github.com/go-gl/mathgl/mgl64"

// Condition selects how the domain edges behave.
type Condition int

const (
	Open Condition = iota
	Periodic
	Shear
)

func (c Condition) String() string {
	switch c {
	case Open:
		return "open"
	case Periodic:
		return "periodic"
	case Shear:
		return "shear"
	}
	return "unknown"
}

// ParseCondition maps a config string to a Condition.
func ParseCondition(s string) (Condition, error) {
	switch s {
	case "open", "":
		return Open, nil
	case "periodic":
		return Periodic, nil
	case "shear":
		return Shear, nil
	}
	return Open, ErrUnknownCondition
}

// Box is the rectangular simulation domain, centered on the origin.
type Box struct {
	X, Y, Z float64
}

// Max returns the largest edge length, used for camera framing.
func (b Box) Max() float64 {
	m := b.X
	if b.Y > m {
		m = b.Y
	}
	if b.Z > m {
		m = b.Z
	}
	return m
}

// Shift is one ghost image's translation. Position and velocity offsets are
// kept together because shearing boundaries translate both.
type Shift struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3
}

// Conditions bundles a domain box with its boundary condition. OmegaZ is the
// epicyclic frequency used by shearing boundaries; it is ignored otherwise.
type Conditions struct {
	Type   Condition
	Box    Box
	OmegaZ float64
}

// Ghost returns the translation for ghost image (i,j,k) at simulation time t.
// Image (0,0,0) is always the identity shift.
func (c Conditions) Ghost(i, j, k int, t float64) Shift {
	switch c.Type {
	case Periodic:
		return Shift{Pos: mgl64.Vec3{
			float64(i) * c.Box.X,
			float64(j) * c.Box.Y,
			float64(k) * c.Box.Z,
		}}
	case Shear:
		// Neighboring radial images slide azimuthally at the local
		// shear rate; their contents keep the matching velocity offset.
		shearSpeed := 1.5 * c.OmegaZ * c.Box.X
		offset := shearSpeed * t
		offset = offset - c.Box.Y*float64(int(offset/c.Box.Y+0.5))
		return Shift{
			Pos: mgl64.Vec3{
				float64(i) * c.Box.X,
				float64(j)*c.Box.Y - float64(i)*offset,
				float64(k) * c.Box.Z,
			},
			Vel: mgl64.Vec3{0, -float64(i) * shearSpeed, 0},
		}
	}
	return Shift{}
}

package boundary

import (
	"math"
	"testing"
)

func TestGhostIdentity(t *testing.T) {
	for _, cond := range []Condition{Open, Periodic, Shear} {
		c := Conditions{Type: cond, Box: Box{X: 10, Y: 10, Z: 10}, OmegaZ: 1}
		s := c.Ghost(0, 0, 0, 3.7)
		if s.Pos.Len() != 0 || s.Vel.Len() != 0 {
			t.Errorf("%v: image (0,0,0) should be the identity shift, got %v", cond, s)
		}
	}
}

func TestGhostOpen(t *testing.T) {
	c := Conditions{Type: Open, Box: Box{X: 10, Y: 20, Z: 30}}
	s := c.Ghost(1, -1, 2, 0)
	if s.Pos.Len() != 0 {
		t.Errorf("open boundaries should never shift, got %v", s.Pos)
	}
}

func TestGhostPeriodic(t *testing.T) {
	c := Conditions{Type: Periodic, Box: Box{X: 10, Y: 20, Z: 30}}
	s := c.Ghost(1, -1, 2, 0)
	want := [3]float64{10, -20, 60}
	for i := 0; i < 3; i++ {
		if s.Pos[i] != want[i] {
			t.Errorf("axis %d: got %f want %f", i, s.Pos[i], want[i])
		}
	}
	if s.Vel.Len() != 0 {
		t.Errorf("periodic images carry no velocity shift, got %v", s.Vel)
	}
}

func TestGhostShearVelocity(t *testing.T) {
	c := Conditions{Type: Shear, Box: Box{X: 10, Y: 10, Z: 10}, OmegaZ: 1}
	s := c.Ghost(1, 0, 0, 0)
	if got, want := s.Vel.Y(), -15.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("shear vy: got %f want %f", got, want)
	}
	if c.Ghost(-1, 0, 0, 0).Vel.Y() != -s.Vel.Y() {
		t.Error("shear velocity shift should be antisymmetric in i")
	}
}

func TestBoxMax(t *testing.T) {
	b := Box{X: 1, Y: 5, Z: 3}
	if b.Max() != 5 {
		t.Errorf("got %f want 5", b.Max())
	}
}

func TestParseCondition(t *testing.T) {
	cases := []struct {
		in   string
		want Condition
		err  bool
	}{
		{"open", Open, false},
		{"", Open, false},
		{"periodic", Periodic, false},
		{"shear", Shear, false},
		{"toroidal", Open, true},
	}
	for _, tc := range cases {
		got, err := ParseCondition(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("%q: unexpected error state %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
}

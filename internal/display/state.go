package display

// Mode selects how particles are drawn. Exactly one mode is active at any
// time; flags are orthogonal to it.
type Mode int

const (
	ModePoints Mode = iota
	ModeSpheres
	ModeTextured

	numModes
)

func (m Mode) String() string {
	switch m {
	case ModePoints:
		return "points"
	case ModeSpheres:
		return "spheres"
	case ModeTextured:
		return "textured"
	}
	return "invalid"
}

// scaleFactor is the per-keypress sphere scale multiplier.
const scaleFactor = 1.125

// State is the mutable render state. It is initialized at startup, mutated
// only by the interaction controller and read every frame by the renderer.
type State struct {
	Mode        Mode
	Clear       bool
	Wire        bool
	Tree        bool
	Mass        bool
	GhostBoxes  bool
	PauseSim    bool
	PauseRender bool
	SphereScale float64
}

// NewState returns the startup state: points mode, clear-on-redraw on,
// everything else off, sphere scale 1.
func NewState() *State {
	return &State{Clear: true, SphereScale: 1}
}

// AdvanceMode cycles points → spheres → textured → points.
func (s *State) AdvanceMode() {
	s.Mode = (s.Mode + 1) % numModes
}

// ScaleUp multiplies the sphere scale by the step factor.
func (s *State) ScaleUp() { s.SphereScale *= scaleFactor }

// ScaleDown divides the sphere scale by the step factor, the exact
// multiplicative inverse of ScaleUp.
func (s *State) ScaleDown() { s.SphereScale /= scaleFactor }

// ResetScale restores the default sphere scale of exactly 1.
func (s *State) ResetScale() { s.SphereScale = 1 }

// ToggleTree flips tree display. Turning the tree off also clears the
// mass-center display, which is meaningless without it.
func (s *State) ToggleTree() {
	s.Tree = !s.Tree
	if !s.Tree {
		s.Mass = false
	}
}

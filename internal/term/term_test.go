package term

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("top-left dot: got %#x, want %#x", c.Grid[0][0], 0x2801)
	}
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("bottom-right dot of first cell: got %#x", c.Grid[0][0])
	}

	// Out of range is a no-op.
	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(2, 2)
	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("cell not blank after Clear: %#x", r)
			}
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 0)
	for x := 0; x < 20; x++ {
		if c.Grid[0][x/2]&rune(dotMask[0][x%2]) == 0 {
			t.Fatalf("dot (%d,0) not set on horizontal line", x)
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	s := c.String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rows: got %d, want 3", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 5 {
			t.Fatalf("row width: got %d, want 5", len([]rune(l)))
		}
	}
}

func TestProjectCenter(t *testing.T) {
	cam := NewCamera(2)
	x, y, _, ok := cam.Project(mgl64.Vec3{}, 160, 96)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin: got (%d,%d), want (80,48)", x, y)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(1)
	cam.WorldScale = 1
	if _, _, _, ok := cam.Project(mgl64.Vec3{0, 0, 100}, 160, 96); ok {
		t.Error("point behind the near plane should be culled")
	}
}

func TestProjectAxes(t *testing.T) {
	cam := NewCamera(2)
	x, _, _, ok := cam.Project(mgl64.Vec3{0.5, 0, 0}, 160, 96)
	if !ok || x <= 80 {
		t.Errorf("+x should project right of center, got x=%d ok=%v", x, ok)
	}
	_, y, _, ok := cam.Project(mgl64.Vec3{0, 0.5, 0}, 160, 96)
	if !ok || y >= 48 {
		t.Errorf("+y should project above center, got y=%d ok=%v", y, ok)
	}
}

func TestZoomBounds(t *testing.T) {
	cam := NewCamera(1)
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom exceeded cap: %f", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom under floor: %f", cam.Zoom)
	}
}

func TestCubeEdges(t *testing.T) {
	edges := cubeEdges(2, 2, 2)
	if len(edges) != 12 {
		t.Fatalf("edges: got %d, want 12", len(edges))
	}
	for _, e := range edges {
		if e[0].Sub(e[1]).Len() != 2 {
			t.Errorf("edge length: got %f, want 2", e[0].Sub(e[1]).Len())
		}
	}
}

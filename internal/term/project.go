package term

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera performs a rotate-then-perspective projection of world
// coordinates onto the dot grid.
type Camera struct {
	Dist       float64
	Near       float64
	RotX, RotY float64
	Zoom       float64
	WorldScale float64
}

// NewCamera frames a domain of the given world size.
func NewCamera(worldSize float64) *Camera {
	if worldSize <= 0 {
		worldSize = 1
	}
	return &Camera{Dist: 50, Near: 0.1, Zoom: 1, WorldScale: 1 / worldSize}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p mgl64.Vec3) mgl64.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p[1], p[2] = p.Y()*cx-p.Z()*sx, p.Y()*sx+p.Z()*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p[0], p[2] = p.X()*cy+p.Z()*sy, -p.X()*sy+p.Z()*cy
	return p
}

// Project maps a world point to dot coordinates on a sw x sh grid.
// It returns the dot position, the view-space depth, and whether the
// point lies on the grid.
func (c *Camera) Project(p mgl64.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Mul(c.Zoom * c.WorldScale)
	if rot.Z() >= c.Dist-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Dist / (c.Dist - rot.Z())
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	px := minDim / 3.0
	sx := int(rot.X()*scale*px) + sw/2
	sy := int(-rot.Y()*scale*px) + sh/2
	return sx, sy, rot.Z(), sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// cubeEdges returns the 12 edges of an axis-aligned box centered on the
// origin with the given side lengths.
func cubeEdges(sx, sy, sz float64) [][2]mgl64.Vec3 {
	hx, hy, hz := sx/2, sy/2, sz/2
	v := []mgl64.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	idx := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	edges := make([][2]mgl64.Vec3, 0, len(idx))
	for _, e := range idx {
		edges = append(edges, [2]mgl64.Vec3{v[e[0]], v[e[1]]})
	}
	return edges
}

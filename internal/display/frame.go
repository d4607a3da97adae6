package display

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sankalp-v/gravview/internal/boundary"
	"github.com/sankalp-v/gravview/internal/capture"
	"github.com/sankalp-v/gravview/internal/octree"
	"github.com/sankalp-v/gravview/internal/orbit"
)

var (
	colTest     = rl.NewColor(255, 255, 255, 128)
	colActive   = rl.NewColor(255, 255, 0, 230)
	colSphere   = rl.NewColor(255, 255, 255, 255)
	colWireTest = rl.NewColor(230, 255, 230, 230)
	colWireAct  = rl.NewColor(255, 230, 0, 230)
	colWireEven = rl.NewColor(0, 0, 255, 230)
	colWireOdd  = rl.NewColor(0, 255, 0, 230)
	colCell     = rl.NewColor(255, 0, 0, 102)
	colMass     = rl.NewColor(255, 128, 255, 102)
)

// lightDir is the fixed direction used for per-vertex sphere shading.
var lightDir = [3]float32{0.37, 0.37, 0.85}

// renderFrame draws and presents one frame. A paused renderer still presents
// so the host event loop keeps polling, but the scene pass is skipped.
func (e *Engine) renderFrame() {
	if !e.surfaceReady {
		return
	}
	rl.BeginDrawing()
	if !e.State.PauseRender {
		e.drawScene()
		if e.pendingCapture {
			e.pendingCapture = false
			e.saveCapture()
		}
	}
	rl.EndDrawing()
}

// effectiveMode degrades textured mode to plain spheres while the texture
// cache is disabled or still warming up. The cache retries resolution on
// every frame spent uninitialized.
func (e *Engine) effectiveMode() Mode {
	m := e.State.Mode
	if m != ModeTextured {
		return m
	}
	if err := e.cache.Ensure(e.Sim.Textures); err != nil {
		if e.degradedFor != err {
			e.degradedFor = err
			fmt.Printf("%v\n", err)
		}
		return ModeSpheres
	}
	return ModeTextured
}

func (e *Engine) drawScene() {
	if e.State.Clear {
		rl.ClearBackground(rl.Black)
	}
	mode := e.effectiveMode()
	if e.State.Tree {
		// Rebuild at most once per simulation step.
		if e.tree == nil || e.treeAge != e.Sim.T {
			e.tree = octree.Build(e.Sim.Particles, e.Sim.Bounds.Box, e.Sim.Bounds.Type == boundary.Open)
			e.treeAge = e.Sim.T
		}
	}

	rl.BeginMode3D(e.camera)
	PipelineFor(mode).apply()

	images := GhostImages(e.State.GhostBoxes, e.Sim.Ghost[0], e.Sim.Ghost[1], e.Sim.Ghost[2], e.Sim.T, e.Sim.Bounds.Ghost)
	for _, gb := range images {
		sx, sy, sz := float32(gb.Pos.X()), float32(gb.Pos.Y()), float32(gb.Pos.Z())
		rl.Translatef(sx, sy, sz)
		// In accumulate mode with wires on, only the wires draw, so
		// orbit trails build up without particle smear.
		if !(!e.State.Clear && e.State.Wire) {
			e.drawParticles(mode)
		}
		if e.State.Wire {
			e.drawWires()
		}
		if e.State.Tree && e.tree != nil {
			e.drawTree()
		}
		rl.Translatef(-sx, -sy, -sz)
	}

	box := e.Sim.Bounds.Box
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), float32(box.X), float32(box.Y), float32(box.Z), colCell)
	rl.EndMode3D()
	resetPipeline()
}

// resetPipeline returns rlgl to raylib's defaults so the next BeginDrawing
// is unaffected by the mode that ran last.
func resetPipeline() {
	rl.EndBlendMode()
	rl.EnableDepthTest()
	rl.EnableDepthMask()
	rl.SetTexture(0)
}

func (e *Engine) drawParticles(mode Mode) {
	switch mode {
	case ModePoints:
		na := e.Sim.Active()
		for i, p := range e.Sim.Particles {
			pos := rl.NewVector3(float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Pos.Z()))
			if i < na {
				rl.DrawPoint3D(pos, colActive)
			} else {
				rl.DrawPoint3D(pos, colTest)
			}
		}
	case ModeSpheres, ModeTextured:
		fallback := e.Sim.Bounds.Box.Max() / 100
		for i, p := range e.Sim.Particles {
			scale := p.Radius
			if scale == 0 {
				scale = fallback
			}
			scale *= e.State.SphereScale
			var tex uint32
			if mode == ModeTextured && i < len(e.Sim.Textures) {
				tex = e.cache.Handle(e.Sim.Textures[i])
			}
			rl.PushMatrix()
			rl.Translatef(float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Pos.Z()))
			rl.Scalef(float32(scale), float32(scale), float32(scale))
			e.drawMesh(tex, mode == ModeSpheres, colSphere)
			rl.PopMatrix()
		}
	}
}

// drawMesh emits the shared sphere mesh through rlgl, unrolling each
// triangle strip because rlgl only batches plain triangles. With lit=true a
// per-vertex Lambert term is folded into the color.
func (e *Engine) drawMesh(tex uint32, lit bool, tint rl.Color) {
	m := e.mesh
	if tex != 0 {
		rl.SetTexture(tex)
	}
	for s := 0; s < m.Stacks; s++ {
		strip := m.Strip(s)
		rl.CheckRenderBatchLimit(int32(3 * (len(strip) - 2)))
		rl.Begin(rl.RLTriangles)
		for t := 2; t < len(strip); t++ {
			a, b, c := strip[t-2], strip[t-1], strip[t]
			if t%2 == 1 {
				a, b = b, a // keep winding consistent across the strip
			}
			e.emitVertex(a, lit, tint)
			e.emitVertex(b, lit, tint)
			e.emitVertex(c, lit, tint)
		}
		rl.End()
	}
	if tex != 0 {
		rl.SetTexture(0)
	}
}

func (e *Engine) emitVertex(vi uint16, lit bool, tint rl.Color) {
	x, y, z := e.mesh.Vertex(vi)
	u, v := e.mesh.UV(vi)
	col := tint
	if lit {
		// On a unit sphere the position is the normal.
		d := x*lightDir[0] + y*lightDir[1] + z*lightDir[2]
		if d < 0 {
			d = 0
		}
		shade := 0.2 + 0.8*d
		col = rl.NewColor(
			uint8(float32(tint.R)*shade),
			uint8(float32(tint.G)*shade),
			uint8(float32(tint.B)*shade),
			tint.A,
		)
	}
	rl.Color4ub(col.R, col.G, col.B, col.A)
	rl.TexCoord2f(u, v)
	rl.Vertex3f(x, y, z)
}

// drawWires draws one osculating orbit ellipse per non-primary particle,
// colored by active/test split when the active count is known and by parity
// otherwise.
func (e *Engine) drawWires() {
	if len(e.Sim.Particles) == 0 {
		return
	}
	primary := e.Sim.Particles[0]
	mu := e.Sim.G * primary.Mass
	if mu <= 0 {
		return
	}
	px, py, pz := float32(primary.Pos.X()), float32(primary.Pos.Y()), float32(primary.Pos.Z())
	na := e.Sim.NActive

	rl.PushMatrix()
	rl.Translatef(px, py, pz)
	for i := 1; i < len(e.Sim.Particles); i++ {
		p := e.Sim.Particles[i]
		var col rl.Color
		if na > 0 {
			if i >= na {
				col = colWireTest
			} else {
				col = colWireAct
			}
		} else if i%2 == 1 {
			col = colWireOdd
		} else {
			col = colWireEven
		}
		el := orbit.FromState(p.Pos.Sub(primary.Pos), p.Vel.Sub(primary.Vel), mu)
		if el.A <= 0 {
			continue // hyperbolic, no closed wire to draw
		}
		pts := el.Path(orbit.DefaultStep)
		rl.CheckRenderBatchLimit(int32(2 * len(pts)))
		rl.Begin(rl.RLLines)
		rl.Color4ub(col.R, col.G, col.B, col.A)
		for j := range pts {
			q := pts[j]
			r := pts[(j+1)%len(pts)]
			rl.Vertex3f(float32(q.X()), float32(q.Y()), float32(q.Z()))
			rl.Vertex3f(float32(r.X()), float32(r.Y()), float32(r.Z()))
		}
		rl.End()
	}
	rl.PopMatrix()
}

// drawTree walks the partition arena, drawing each cell's bounding cube and,
// with mass display on, a small solid sphere at its aggregate mass center.
func (e *Engine) drawTree() {
	showMass := e.State.Mass
	e.tree.Walk(func(n *octree.Node) {
		if showMass && n.Mass > 0 {
			rl.DrawSphere(
				rl.NewVector3(float32(n.COM.X()), float32(n.COM.Y()), float32(n.COM.Z())),
				float32(0.04*n.Width),
				colMass,
			)
		}
		rl.DrawCubeWires(
			rl.NewVector3(float32(n.Center.X()), float32(n.Center.Y()), float32(n.Center.Z())),
			float32(n.Width), float32(n.Width), float32(n.Width),
			colCell,
		)
	})
}

func (e *Engine) saveCapture() {
	path := e.rec.Next()
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if err := capture.Save(path, w, h, nil); err != nil {
		fmt.Printf("Screenshot skipped: %v\n", err)
		return
	}
	fmt.Printf("Screenshot saved as '%s'.\n", path)
}

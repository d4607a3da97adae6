package display

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sankalp-v/gravview/internal/capture"
	"github.com/sankalp-v/gravview/internal/octree"
	"github.com/sankalp-v/gravview/internal/sim"
)

// Options configures the window and shared resources.
type Options struct {
	Width, Height  int
	Title          string
	Stacks, Slices int
	CaptureDir     string
}

// DefaultOptions mirrors the classic 700x700 viewer window.
func DefaultOptions() Options {
	return Options{Width: 700, Height: 700, Title: "gravview", Stacks: 16, Slices: 24, CaptureDir: "."}
}

// Engine owns all visualization state: render state, camera, the shared
// sphere mesh, the texture cache and the step/render scheduler. One Engine
// drives one window on one goroutine.
type Engine struct {
	Sim   *sim.Simulation
	State *State
	Sched *Scheduler

	opts    Options
	camera  rl.Camera3D
	mesh    *SphereMesh
	cache   *TextureCache
	rec     *capture.Recorder
	ctrl    *Controller
	tree    *octree.Tree
	treeAge float64

	surfaceReady   bool
	pendingCapture bool
	degradedFor    error // last reported texture degradation, logged once
}

// NewEngine builds an engine around a simulation. The sphere mesh is built
// here, exactly once; textures wait until textured mode is first entered.
func NewEngine(s *sim.Simulation, opts Options) *Engine {
	e := &Engine{
		Sim:   s,
		State: NewState(),
		opts:  opts,
		mesh:  Sphere(opts.Stacks, opts.Slices),
		rec:   capture.NewRecorder(opts.CaptureDir),
	}
	e.cache = NewTextureCache(loadTexture)
	e.Sched = NewScheduler(e.stepSim, e.renderFrame)
	e.ctrl = &Controller{
		State:     e.State,
		Sched:     e.Sched,
		ResetView: e.resetCamera,
		Capture:   e.captureScreenshot,
		Render:    e.renderFrame,
		Quit:      func() { os.Exit(0) },
	}
	return e
}

// Run opens the window and blocks in the event loop until quit or close.
func (e *Engine) Run() error {
	rl.InitWindow(int32(e.opts.Width), int32(e.opts.Height), e.opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	e.surfaceReady = true
	e.resetCamera()

	for !rl.WindowShouldClose() {
		e.handleInput()
		e.updateCamera()
		e.Sched.Tick()
	}
	return nil
}

func (e *Engine) stepSim() {
	e.Sim.Step()
}

// handleInput decodes one key press per frame into a command.
func (e *Engine) handleInput() {
	var cmd Command
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		cmd = CmdQuit
	case rl.IsKeyPressed(rl.KeySpace):
		cmd = CmdTogglePauseSim
	case rl.IsKeyPressed(rl.KeyS):
		cmd = CmdAdvanceMode
	case rl.IsKeyPressed(rl.KeyG):
		cmd = CmdToggleGhostBoxes
	case rl.IsKeyPressed(rl.KeyR):
		cmd = CmdResetView
	case rl.IsKeyPressed(rl.KeyT):
		cmd = CmdToggleTree
	case rl.IsKeyPressed(rl.KeyD):
		cmd = CmdTogglePauseRender
	case rl.IsKeyPressed(rl.KeyM):
		cmd = CmdToggleMass
	case rl.IsKeyPressed(rl.KeyW):
		cmd = CmdToggleWire
	case rl.IsKeyPressed(rl.KeyC):
		cmd = CmdToggleClear
	case rl.IsKeyPressed(rl.KeyP):
		cmd = CmdCapture
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		cmd = CmdScaleUp
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		cmd = CmdScaleDown
	default:
		return
	}
	e.ctrl.Apply(cmd)
}

func (e *Engine) resetCamera() {
	bm := float32(e.Sim.Bounds.Box.Max())
	if bm == 0 {
		bm = 2
	}
	e.camera = rl.NewCamera3D(
		rl.NewVector3(0, 0.6*bm, 1.8*bm),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
}

// updateCamera is the navigation helper: wheel zooms toward the target,
// right-drag orbits around it.
func (e *Engine) updateCamera() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		diff := rl.Vector3Subtract(e.camera.Target, e.camera.Position)
		dist := rl.Vector3Length(diff)
		zoom := wheel * 0.1 * dist
		if dist-zoom > 0.01 {
			dir := rl.Vector3Normalize(diff)
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(dir, zoom))
		}
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		off := rl.Vector3Subtract(e.camera.Position, e.camera.Target)
		r := float64(rl.Vector3Length(off))
		yaw := math.Atan2(float64(off.X), float64(off.Z)) - float64(delta.X)*0.005
		pitch := math.Asin(float64(off.Y)/r) + float64(delta.Y)*0.005
		const lim = math.Pi/2 - 0.01
		if pitch > lim {
			pitch = lim
		}
		if pitch < -lim {
			pitch = -lim
		}
		e.camera.Position = rl.Vector3Add(e.camera.Target, rl.NewVector3(
			float32(r*math.Cos(pitch)*math.Sin(yaw)),
			float32(r*math.Sin(pitch)),
			float32(r*math.Cos(pitch)*math.Cos(yaw)),
		))
	}
}

// captureScreenshot requests a readback of the next presented frame. When
// rendering is paused, exactly one synchronous redraw is forced so the
// capture reflects current state rather than a stale buffer.
func (e *Engine) captureScreenshot() {
	if !e.surfaceReady {
		return
	}
	e.pendingCapture = true
	if e.State.PauseRender {
		e.State.PauseRender = false
		e.renderFrame()
		e.State.PauseRender = true
	}
}

func loadTexture(path string) (uint32, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return 0, fmt.Errorf("display: cannot load texture %s", path)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex.ID, nil
}

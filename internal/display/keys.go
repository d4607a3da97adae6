package display

import "fmt"

// Command is a discrete interaction command decoded from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdAdvanceMode
	CmdToggleGhostBoxes
	CmdScaleUp
	CmdScaleDown
	CmdResetView
	CmdToggleTree
	CmdTogglePauseRender
	CmdToggleMass
	CmdToggleWire
	CmdToggleClear
	CmdTogglePauseSim
	CmdCapture
)

// Controller maps commands to render-state mutations. The simulation pause
// command is the only one that touches scheduling instead of pure render
// state. After any handled command one render pass is forced so feedback is
// immediate even while stepping is paused.
type Controller struct {
	State *State
	Sched *Scheduler

	// ResetView restores the camera; Capture saves a screenshot; Render
	// draws one frame (it is expected to respect State.PauseRender);
	// Quit terminates the host.
	ResetView func()
	Capture   func()
	Render    func()
	Quit      func()
	Logf      func(format string, args ...any)
}

func (c *Controller) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	} else {
		fmt.Printf(format, args...)
	}
}

// Apply executes one command. Unknown commands are ignored.
func (c *Controller) Apply(cmd Command) {
	switch cmd {
	case CmdQuit:
		c.logf("\nProgram ends.\n")
		if c.Quit != nil {
			c.Quit()
		}
		return
	case CmdAdvanceMode:
		c.State.AdvanceMode()
	case CmdToggleGhostBoxes:
		c.State.GhostBoxes = !c.State.GhostBoxes
	case CmdScaleUp:
		c.State.ScaleUp()
	case CmdScaleDown:
		c.State.ScaleDown()
	case CmdResetView:
		c.State.ResetScale()
		if c.ResetView != nil {
			c.ResetView()
		}
	case CmdToggleTree:
		c.State.ToggleTree()
	case CmdTogglePauseRender:
		c.State.PauseRender = !c.State.PauseRender
	case CmdToggleMass:
		c.State.Mass = !c.State.Mass
	case CmdToggleWire:
		c.State.Wire = !c.State.Wire
	case CmdToggleClear:
		c.State.Clear = !c.State.Clear
	case CmdTogglePauseSim:
		c.State.PauseSim = !c.State.PauseSim
		if c.State.PauseSim {
			c.logf("Pause.\n")
		} else {
			c.logf("Resume.\n")
		}
		c.Sched.SetStepping(!c.State.PauseSim)
	case CmdCapture:
		if c.Capture != nil {
			c.Capture()
		}
	default:
		return
	}
	if c.Render != nil {
		c.Render()
	}
}

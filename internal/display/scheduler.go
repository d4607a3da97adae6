package display

// Scheduler couples simulation stepping to frame presentation. Stepping and
// rendering are two independently switchable channels invoked, in that fixed
// order, from the same per-tick call on one goroutine. Pausing the
// simulation deregisters the step callback rather than flagging it away so
// tick cost drops to the render pass alone.
type Scheduler struct {
	step    func()
	render  func()
	stepOn  bool
	stashed func() // step callback kept while stepping is disabled
}

// NewScheduler wires the two per-tick callbacks. Both start enabled.
func NewScheduler(step, render func()) *Scheduler {
	return &Scheduler{step: step, render: render, stepOn: true}
}

// Tick runs one scheduling round: step (if registered), then render.
func (s *Scheduler) Tick() {
	if s.step != nil {
		s.step()
	}
	if s.render != nil {
		s.render()
	}
}

// SetStepping registers or deregisters the step callback.
func (s *Scheduler) SetStepping(on bool) {
	if on == s.stepOn {
		return
	}
	s.stepOn = on
	if on {
		s.step, s.stashed = s.stashed, nil
	} else {
		s.stashed, s.step = s.step, nil
	}
}

// Stepping reports whether the step callback is currently registered.
func (s *Scheduler) Stepping() bool { return s.stepOn }

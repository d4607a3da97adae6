package display

import "testing"

func TestSchedulerOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		func() { order = append(order, "step") },
		func() { order = append(order, "render") },
	)
	s.Tick()
	if len(order) != 2 || order[0] != "step" || order[1] != "render" {
		t.Fatalf("tick order %v, want [step render]", order)
	}
}

func TestSchedulerPauseResume(t *testing.T) {
	steps, renders := 0, 0
	s := NewScheduler(func() { steps++ }, func() { renders++ })

	s.SetStepping(false)
	s.Tick()
	s.Tick()
	if steps != 0 {
		t.Errorf("paused scheduler stepped %d times", steps)
	}
	if renders != 2 {
		t.Errorf("rendering must continue while stepping is paused, got %d", renders)
	}

	s.SetStepping(true)
	s.Tick()
	if steps != 1 {
		t.Errorf("resume lost the step callback, steps=%d", steps)
	}
}

func TestSchedulerRedundantToggle(t *testing.T) {
	steps := 0
	s := NewScheduler(func() { steps++ }, nil)
	s.SetStepping(true) // already on; must not clobber the callback
	s.Tick()
	if steps != 1 {
		t.Errorf("redundant enable dropped the callback, steps=%d", steps)
	}
	s.SetStepping(false)
	s.SetStepping(false)
	s.SetStepping(true)
	s.Tick()
	if steps != 2 {
		t.Errorf("toggle sequence lost the callback, steps=%d", steps)
	}
}

package display

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("render state", func() {
	var s *State

	BeforeEach(func() {
		s = NewState()
	})

	It("starts in points mode with clear on and scale 1", func() {
		Expect(s.Mode).To(Equal(ModePoints))
		Expect(s.Clear).To(BeTrue())
		Expect(s.SphereScale).To(Equal(1.0))
	})

	Describe("mode cycling", func() {
		It("cycles 0→1→2→0 and never leaves the valid range", func() {
			seen := []Mode{s.Mode}
			for i := 0; i < 7; i++ {
				s.AdvanceMode()
				Expect(int(s.Mode)).To(BeNumerically(">=", 0))
				Expect(int(s.Mode)).To(BeNumerically("<", int(numModes)))
				seen = append(seen, s.Mode)
			}
			Expect(seen[:4]).To(Equal([]Mode{ModePoints, ModeSpheres, ModeTextured, ModePoints}))
		})

		It("does not touch any flag", func() {
			s.Wire, s.GhostBoxes = true, true
			s.AdvanceMode()
			Expect(s.Wire).To(BeTrue())
			Expect(s.GhostBoxes).To(BeTrue())
		})
	})

	Describe("sphere scale", func() {
		It("returns to exactly 1.0 after up, up, reset", func() {
			s.ScaleUp()
			s.ScaleUp()
			s.ResetScale()
			Expect(s.SphereScale).To(Equal(1.0))
		})

		It("treats down as the multiplicative inverse of up", func() {
			s.ScaleUp()
			s.ScaleDown()
			Expect(s.SphereScale).To(BeNumerically("~", 1.0, 1e-12))
		})
	})

	Describe("tree and mass coupling", func() {
		It("clears mass display when the tree is switched off", func() {
			s.ToggleTree()
			s.Mass = true
			s.ToggleTree()
			Expect(s.Tree).To(BeFalse())
			Expect(s.Mass).To(BeFalse())
		})
	})
})

var _ = Describe("pipeline configuration", func() {
	It("is a total mapping over the three modes", func() {
		Expect(PipelineFor(ModePoints)).To(Equal(PipelineConfig{Blend: true}))
		Expect(PipelineFor(ModeSpheres)).To(Equal(PipelineConfig{DepthTest: true, DepthWrite: true, Lighting: true}))
		Expect(PipelineFor(ModeTextured)).To(Equal(PipelineConfig{DepthTest: true, DepthWrite: true, Texturing: true}))
	})

	It("falls back to the points configuration for corrupt modes", func() {
		Expect(PipelineFor(Mode(99))).To(Equal(PipelineFor(ModePoints)))
	})
})

var _ = Describe("interaction controller", func() {
	var (
		s       *State
		sched   *Scheduler
		ctrl    *Controller
		renders int
		steps   int
	)

	BeforeEach(func() {
		s = NewState()
		sched = NewScheduler(func() { steps++ }, func() {})
		renders, steps = 0, 0
		ctrl = &Controller{
			State: s,
			Sched: sched,
			// Mirrors the engine: a forced render respects render pause.
			Render: func() {
				if !s.PauseRender {
					renders++
				}
			},
			Logf: func(string, ...any) {},
		}
	})

	It("forces one render pass after any command", func() {
		ctrl.Apply(CmdToggleWire)
		Expect(renders).To(Equal(1))
	})

	It("leaves state untouched by a render-pause round trip, with exactly one forced render", func() {
		before := *s
		ctrl.Apply(CmdTogglePauseRender)
		ctrl.Apply(CmdTogglePauseRender)
		Expect(*s).To(Equal(before))
		Expect(renders).To(Equal(1))
	})

	It("deregisters the step callback while the simulation is paused", func() {
		ctrl.Apply(CmdTogglePauseSim)
		sched.Tick()
		Expect(steps).To(BeZero())
		Expect(sched.Stepping()).To(BeFalse())

		ctrl.Apply(CmdTogglePauseSim)
		sched.Tick()
		Expect(steps).To(Equal(1))
	})

	It("resets the scale and the camera together", func() {
		resets := 0
		ctrl.ResetView = func() { resets++ }
		s.SphereScale = 4.2
		ctrl.Apply(CmdResetView)
		Expect(s.SphereScale).To(Equal(1.0))
		Expect(resets).To(Equal(1))
	})

	It("routes the capture command without touching render state", func() {
		captures := 0
		ctrl.Capture = func() { captures++ }
		before := *s
		ctrl.Apply(CmdCapture)
		Expect(captures).To(Equal(1))
		Expect(*s).To(Equal(before))
	})
})

package display

import rl "github.com/gen2brain/raylib-go/raylib"

// PipelineConfig is the fixed-function GPU configuration implied by a render
// mode. The mapping is total and re-applied every frame; nothing is assumed
// to persist across frames.
type PipelineConfig struct {
	Blend      bool
	DepthTest  bool
	DepthWrite bool
	Lighting   bool
	Texturing  bool
}

// PipelineFor returns the configuration for a mode. Unknown values fall back
// to the points configuration so a corrupted mode can never leave the
// pipeline half-set.
func PipelineFor(m Mode) PipelineConfig {
	switch m {
	case ModeSpheres:
		return PipelineConfig{DepthTest: true, DepthWrite: true, Lighting: true}
	case ModeTextured:
		return PipelineConfig{DepthTest: true, DepthWrite: true, Texturing: true}
	default:
		return PipelineConfig{Blend: true}
	}
}

// apply pushes the configuration into rlgl. Additive blending matches the
// glow-style point rendering; depth state is set explicitly both ways.
func (c PipelineConfig) apply() {
	if c.Blend {
		rl.BeginBlendMode(rl.BlendAdditive)
	} else {
		rl.EndBlendMode()
	}
	if c.DepthTest {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}
	if c.DepthWrite {
		rl.EnableDepthMask()
	} else {
		rl.DisableDepthMask()
	}
	if !c.Texturing {
		rl.SetTexture(0)
	}
}

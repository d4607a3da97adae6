package config

// Presets are ready-made viewing scenarios keyed by name.
var Presets = map[string]*Config{
	"disc": {
		Preset: "disc", N: 1000, Dt: 0.001, Boundary: "open",
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "gravview: disc"},
		Mesh:   MeshConfig{Stacks: DefaultStacks, Slices: DefaultSlices},
	},
	"cloud": {
		Preset: "cloud", N: 2000, Dt: 0.001, Boundary: "periodic", Box: 2.0,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "gravview: cloud"},
		Mesh:   MeshConfig{Stacks: DefaultStacks, Slices: DefaultSlices},
		Ghost:  GhostConfig{X: 1, Y: 1, Z: 1},
	},
	"binary": {
		Preset: "binary", N: 500, Dt: 0.0005, Boundary: "open",
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "gravview: binary"},
		Mesh:   MeshConfig{Stacks: DefaultStacks, Slices: DefaultSlices},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

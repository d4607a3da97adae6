package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 700
	DefaultHeight   = 700
	DefaultStacks   = 16
	DefaultSlices   = 24
	DefaultN        = 1000
	DefaultDt       = 0.001
	DefaultBox      = 2.0
	DefaultInterval = 0.1
)

type Config struct {
	Preset   string       `yaml:"preset"`
	N        int          `yaml:"n"`
	Seed     int64        `yaml:"seed"`
	Dt       float64      `yaml:"dt"`
	Tmax     float64      `yaml:"tmax"`
	Boundary string       `yaml:"boundary"`
	Box      float64      `yaml:"box"`
	Window   WindowConfig `yaml:"window"`
	Mesh     MeshConfig   `yaml:"mesh"`
	Ghost    GhostConfig  `yaml:"ghost"`
	Output   OutputConfig `yaml:"output"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type MeshConfig struct {
	Stacks int `yaml:"stacks"`
	Slices int `yaml:"slices"`
}

type GhostConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

type OutputConfig struct {
	CaptureDir string  `yaml:"capture_dir"`
	Interval   float64 `yaml:"interval"`
	Particles  string  `yaml:"particles"`
	Orbits     string  `yaml:"orbits"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:   "disc",
		N:        DefaultN,
		Dt:       DefaultDt,
		Boundary: "open",
		Box:      DefaultBox,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "gravview",
		},
		Mesh: MeshConfig{
			Stacks: DefaultStacks,
			Slices: DefaultSlices,
		},
		Output: OutputConfig{
			Interval: DefaultInterval,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

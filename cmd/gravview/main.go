package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sankalp-v/gravview/internal/boundary"
	"github.com/sankalp-v/gravview/internal/config"
	"github.com/sankalp-v/gravview/internal/diag"
	"github.com/sankalp-v/gravview/internal/display"
	"github.com/sankalp-v/gravview/internal/sim"
	"github.com/sankalp-v/gravview/internal/term"
)

var (
	configFile string
	preset     string
	nParticles int
	seed       int64
	dt         float64
	tmax       float64
	boundType  string
	boxSize    float64
	captureDir string
	interval   float64
	outFile    string
	orbitFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravview",
		Short: "real-time 3D viewer for gravitational n-body systems",
		RunE:  runView,
	}
	addSimFlags(rootCmd)
	rootCmd.Flags().StringVar(&captureDir, "capture-dir", "", "directory for screenshots")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "open the OpenGL viewer",
		RunE:  runView,
	}
	addSimFlags(viewCmd)
	viewCmd.Flags().StringVar(&captureDir, "capture-dir", "", "directory for screenshots")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "view the simulation in the terminal",
		RunE:  runTerm,
	}
	addSimFlags(termCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and dump diagnostics",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().Float64Var(&interval, "interval", 0.1, "output interval in simulation time")
	runCmd.Flags().StringVar(&outFile, "out", "", "particle dump file")
	runCmd.Flags().StringVar(&orbitFile, "orbits", "", "orbit element dump file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(viewCmd, termCmd, runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "disc", "initial condition preset")
	cmd.Flags().IntVar(&nParticles, "n", config.DefaultN, "number of particles")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tmax, "tmax", 0, "stop time (0 runs forever)")
	cmd.Flags().StringVar(&boundType, "boundary", "", "boundary condition (open, periodic, shear)")
	cmd.Flags().Float64Var(&boxSize, "box", 0, "domain box size")
}

// resolve merges preset, config file, and command line flags into one
// config. Flags win over the file, the file wins over the preset.
func resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if p := config.GetPreset(preset); p != nil {
		c := *p
		cfg = &c
	} else if cmd.Flags().Changed("preset") {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("preset") {
		cfg.Preset = preset
	}
	if cmd.Flags().Changed("n") {
		cfg.N = nParticles
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("tmax") {
		cfg.Tmax = tmax
	}
	if cmd.Flags().Changed("boundary") {
		cfg.Boundary = boundType
	}
	if cmd.Flags().Changed("box") {
		cfg.Box = boxSize
	}
	if captureDir != "" {
		cfg.Output.CaptureDir = captureDir
	}
	return cfg, nil
}

// build constructs the simulation a resolved config describes.
func build(cfg *config.Config) (*sim.Simulation, error) {
	s, err := sim.NewPreset(cfg.Preset, cfg.N, cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.Dt = cfg.Dt

	if cfg.Boundary != "" {
		cond, err := boundary.ParseCondition(cfg.Boundary)
		if err != nil {
			return nil, err
		}
		s.Bounds.Type = cond
	}
	if cfg.Box > 0 {
		s.Bounds.Box = boundary.Box{X: cfg.Box, Y: cfg.Box, Z: cfg.Box}
	}
	if cfg.Ghost.X > 0 || cfg.Ghost.Y > 0 || cfg.Ghost.Z > 0 {
		s.Ghost = [3]int{cfg.Ghost.X, cfg.Ghost.Y, cfg.Ghost.Z}
	}
	return s, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	s, err := build(cfg)
	if err != nil {
		return err
	}

	opts := display.DefaultOptions()
	opts.Width = cfg.Window.Width
	opts.Height = cfg.Window.Height
	if cfg.Window.Title != "" {
		opts.Title = cfg.Window.Title
	}
	opts.Stacks = cfg.Mesh.Stacks
	opts.Slices = cfg.Mesh.Slices
	opts.CaptureDir = cfg.Output.CaptureDir

	return display.NewEngine(s, opts).Run()
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	s, err := build(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(term.NewModel(s, cfg.Preset), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	if cfg.Tmax <= 0 {
		return fmt.Errorf("headless run needs --tmax > 0")
	}
	s, err := build(cfg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("interval") || cfg.Output.Interval == 0 {
		cfg.Output.Interval = interval
	}
	if outFile != "" {
		cfg.Output.Particles = outFile
	}
	if orbitFile != "" {
		cfg.Output.Orbits = orbitFile
	}

	var tm diag.Timer
	dump := func() error {
		if cfg.Output.Particles != "" {
			if err := diag.WriteParticles(cfg.Output.Particles, s.Particles, s.T > 0); err != nil {
				return err
			}
		}
		if cfg.Output.Orbits != "" {
			if err := diag.WriteOrbits(cfg.Output.Orbits, s, s.T > 0); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		if diag.ShouldOutput(s.T, s.Dt, cfg.Output.Interval, cfg.Tmax) {
			tm.Line(os.Stdout, len(s.Particles), s.T, cfg.Tmax)
			if err := dump(); err != nil {
				return err
			}
		}
		if s.T >= cfg.Tmax {
			break
		}
		s.Step()
	}
	fmt.Println()

	mean, sigma := diag.VelocityDispersion(s.Particles)
	fmt.Printf("mean velocity   : % e % e % e\n", mean.X(), mean.Y(), mean.Z())
	fmt.Printf("velocity sigma  : % e % e % e\n", sigma.X(), sigma.Y(), sigma.Z())
	fmt.Printf("total energy    : % e\n", s.Energy())

	rmax := 0.0
	for _, p := range s.Particles {
		if r := p.Pos.Len(); r > rmax {
			rmax = r
		}
	}
	hist := diag.NewHistogram(0, rmax, 10)
	hist.AddRadii(s.Particles)
	fmt.Println("radial distribution:")
	return hist.Write(os.Stdout)
}

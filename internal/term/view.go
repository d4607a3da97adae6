package term

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/sankalp-v/gravview/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the terminal view: it owns the simulation, the camera,
// and the energy history shown in the sparkline.
type Model struct {
	Sim      *sim.Simulation
	Title    string
	StepsPer int

	camera  *Camera
	canvas  *Canvas
	running bool
	initial []sim.Particle
	energy  []float64
}

// NewModel frames the simulation domain and starts running.
func NewModel(s *sim.Simulation, title string) Model {
	initial := make([]sim.Particle, len(s.Particles))
	copy(initial, s.Particles)
	return Model{
		Sim:      s,
		Title:    title,
		StepsPer: 1,
		camera:   NewCamera(s.Bounds.Box.Max()),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		running:  true,
		initial:  initial,
		energy:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the simulation on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.StepsPer; i++ {
				m.Sim.Step()
			}
			m.energy = append(m.energy, m.Sim.Energy())
			if len(m.energy) > historyCapacity {
				m.energy = m.energy[1:]
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	m.Sim.T = 0
	copy(m.Sim.Particles, m.initial)
	m.energy = m.energy[:0]
}

// draw projects the domain cube and every particle onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	dw, dh := m.canvas.Width*2, m.canvas.Height*4
	box := m.Sim.Bounds.Box
	if box.Max() > 0 {
		for _, e := range cubeEdges(box.X, box.Y, box.Z) {
			x0, y0, _, v0 := m.camera.Project(e[0], dw, dh)
			x1, y1, _, v1 := m.camera.Project(e[1], dw, dh)
			if v0 || v1 {
				m.canvas.Line(x0, y0, x1, y1)
			}
		}
	}
	for _, p := range m.Sim.Particles {
		if x, y, _, ok := m.camera.Project(p.Pos, dw, dh); ok {
			m.canvas.Set(x, y)
		}
	}
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.Title)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}
	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f", m.Sim.T)) + "\n")
	s.WriteString(labelStyle.Render("N") + valueStyle.Render(fmt.Sprintf("%d", len(m.Sim.Particles))) + "\n")
	if len(m.energy) > 0 {
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4e", m.energy[len(m.energy)-1])) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nX/Y:Rotate +/-:Zoom"))
	statsView := statsStyle.Render(s.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

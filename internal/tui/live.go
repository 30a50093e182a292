package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/diskbox/internal/body"
	"github.com/san-kum/diskbox/internal/config"
	"github.com/san-kum/diskbox/internal/physics"
	"github.com/san-kum/diskbox/internal/vec"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	world *physics.World
	cfg   *config.Config
	rng   *rand.Rand

	paused  bool
	simTime float64
	history []float64 // kinetic energy ring buffer for the graph
	removed int

	width  int
	height int
}

// NewModel builds the terminal sandbox around a world configured from cfg.
func NewModel(cfg *config.Config) *model {
	w := physics.NewWorld(cfg.PhysicsConfig(), cfg.Bounds(), cfg.DiskRadius)

	m := &model{
		world:   w,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		history: make([]float64, 0, 120),
		width:   80,
		height:  24,
	}
	w.OnRemove = func(id body.ID) { m.removed++ }
	return m
}

// Run starts the bubbletea program and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused {
			dt := m.cfg.Dt
			m.world.Step(dt)
			m.simTime += dt

			m.history = append(m.history, m.world.KineticEnergy())
			if len(m.history) > 120 {
				m.history = m.history[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.world.Config()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
	case " ":
		// Spawn somewhere in the upper half of the view.
		b := m.world.Bounds()
		pos := vec.New(
			(m.rng.Float64()*2-1)*b.HalfWidth*0.8,
			m.rng.Float64()*b.HalfHeight*0.8,
		)
		m.world.Spawn(pos)
	case "x":
		// Remove an arbitrary body.
		victim := body.None
		m.world.Each(func(id body.ID, b *body.Body) {
			victim = id
		})
		m.world.Despawn(victim)
	case "f":
		cfg.FrictionEnabled = !cfg.FrictionEnabled
		m.world.SetConfig(cfg)
	case "up":
		cfg.Restitution += 0.1
		m.world.SetConfig(cfg)
	case "down":
		cfg.Restitution -= 0.1
		m.world.SetConfig(cfg)
	case "g":
		if cfg.Gravity == vec.Zero {
			cfg.Gravity = vec.New(0, -980)
		} else {
			cfg.Gravity = vec.Zero
		}
		m.world.SetConfig(cfg)
	}
	return m, nil
}

func (m *model) View() string {
	cw := m.width - 4
	ch := m.height - 14
	if cw < 40 {
		cw = 40
	}
	if ch < 8 {
		ch = 8
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// World to canvas: bounds fill the canvas, y up.
	b := m.world.Bounds()
	m.world.Each(func(id body.ID, bd *body.Body) {
		cx := int((bd.Pos.X + b.HalfWidth) / (2 * b.HalfWidth) * float64(cw))
		cy := int((b.HalfHeight - bd.Pos.Y) / (2 * b.HalfHeight) * float64(ch))
		if cx >= 0 && cx < cw && cy >= 0 && cy < ch {
			canvas[cy][cx] = '●'
		}
	})

	var sb strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	sb.WriteString(fmt.Sprintf("\n  %s %s  %s\n\n", statusIcon, cyan.Render("diskbox"), statusText))

	for _, row := range canvas {
		sb.WriteString("  " + white.Render(string(row)) + "\n")
	}

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(cw),
			asciigraph.Caption("kinetic energy"),
		)
		sb.WriteString("\n" + dim.Render(graph) + "\n")
	}

	cfg := m.world.Config()
	p := m.world.Momentum()
	friction := "off"
	if cfg.FrictionEnabled {
		friction = "on"
	}
	sb.WriteString(fmt.Sprintf("\n  %s  %s  %s  %s\n",
		dim.Render(fmt.Sprintf("bodies %d (removed %d)", m.world.Len(), m.removed)),
		dim.Render(fmt.Sprintf("p (%.0f, %.0f)", p.X, p.Y)),
		dim.Render(fmt.Sprintf("ke %.0f", m.world.KineticEnergy())),
		dim.Render(fmt.Sprintf("e %.1f friction %s", cfg.Restitution, friction)),
	))
	sb.WriteString(dimmer.Render("  space spawn   x remove   g gravity   f friction   ↑↓ restitution   p pause   q quit") + "\n")

	return sb.String()
}

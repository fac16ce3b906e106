// Package tui is the terminal launcher: pick a preset, tune it, then hand
// the configuration to the live view.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/physics"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var presetInfo = map[string]string{
	"default":      "100 balls, drag",
	"billiards":    "16 resting balls, damped hits",
	"crowded":      "400 small balls",
	"sparse":       "a few large balls",
	"frictionless": "elastic gas, energy conserved",
}

type param struct {
	name string
	step float64
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var params = []param{
	{"balls", 10,
		func(c *config.Config) float64 { return float64(c.Balls.Count) },
		func(c *config.Config, v float64) { c.Balls.Count = int(math.Max(0, math.Round(v))) }},
	{"min_radius", 1,
		func(c *config.Config) float64 { return c.Balls.MinRadius },
		func(c *config.Config, v float64) { c.Balls.MinRadius = v }},
	{"max_radius", 1,
		func(c *config.Config) float64 { return c.Balls.MaxRadius },
		func(c *config.Config, v float64) { c.Balls.MaxRadius = v }},
	{"initial_speed", 50,
		func(c *config.Config) float64 { return c.Balls.InitialSpeed },
		func(c *config.Config, v float64) { c.Balls.InitialSpeed = math.Max(0, v) }},
	{"launch_speed", 100,
		func(c *config.Config) float64 { return c.Launch.Speed },
		func(c *config.Config, v float64) { c.Launch.Speed = math.Max(0, v) }},
	{"seed", 1,
		func(c *config.Config) float64 { return float64(c.Seed) },
		func(c *config.Config, v float64) { c.Seed = int64(v) }},
}

type state int

const (
	stateMenu state = iota
	stateConfig
)

type model struct {
	state   state
	cursor  int
	presets []string
	cfg     *config.Config

	paramCursor int
	editing     bool
	editBuf     string
	err         error

	chosen *config.Config
}

func newModel() model {
	return model{state: stateMenu, presets: config.ListPresets()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateConfig:
			return m.configKey(msg)
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg = config.GetPreset(m.presets[m.cursor])
		m.state = stateConfig
		m.paramCursor = 0
		m.err = nil
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	p := params[m.paramCursor]
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				p.set(m.cfg, val)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", p.get(m.cfg))
	case "left", "h":
		p.set(m.cfg, p.get(m.cfg)-p.step)
	case "right", "l":
		p.set(m.cfg, p.get(m.cfg)+p.step)
	case "f":
		m.cfg.Friction = nextFriction(m.cfg.Friction)
	case "s":
		if err := m.cfg.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.chosen = m.cfg
		return m, tea.Quit
	}
	return m, nil
}

func nextFriction(name string) string {
	modes := physics.FrictionModes()
	for i, mode := range modes {
		if mode.String() == name {
			return modes[(i+1)%len(modes)].String()
		}
	}
	return modes[0].String()
}

func (m model) View() string {
	if m.state == stateConfig {
		return m.viewConfig()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("b a l l s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	name := m.presets[m.cursor]
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(name) + "  " + dim.Render(presetInfo[name]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, p := range params {
		val := fmt.Sprintf("%8g", p.get(m.cfg))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", p.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", p.name)) + dim.Render(val) + "\n")
		}
	}
	b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", "friction")) + dim.Render(fmt.Sprintf("%8s", m.cfg.Friction)) + "\n")

	if m.err != nil {
		b.WriteString("\n      " + red.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  f friction  s start  esc back") + "\n")
	return b.String()
}

// Pick runs the launcher and returns the chosen configuration, or nil when
// the user quit without starting.
func Pick() (*config.Config, error) {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(model).chosen, nil
}

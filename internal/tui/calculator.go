package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Universe-Codex/PhyArch/internal/config"
	"github.com/Universe-Codex/PhyArch/internal/engine"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var opInfo = map[string]string{
	engine.ExportStress:         "sigma = F/A",
	engine.ExportDisplacement:   "delta = FL/(AE)",
	engine.ExportStrain:         "epsilon = sigma/E",
	engine.ExportAxialStiffness: "k = AE/L",
}

var opParams = map[string][]string{
	engine.ExportStress:         {"force", "area"},
	engine.ExportDisplacement:   {"force", "length", "area", "modulus"},
	engine.ExportStrain:         {"stress", "modulus"},
	engine.ExportAxialStiffness: {"area", "modulus", "length"},
}

type state int

const (
	stateMenu state = iota
	stateCalc
)

type model struct {
	state    state
	cursor   int
	ops      []string
	selected string

	materials *config.Config
	matIndex  int

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	width  int
	height int
}

func newModel(materials *config.Config) model {
	return model{
		state:     stateMenu,
		ops:       engine.Names(),
		materials: materials,
		matIndex:  -1,
		params:    map[string]float64{},
		width:     80,
		height:    24,
	}
}

// Run starts the interactive calculator.
func Run(materials *config.Config) error {
	_, err := tea.NewProgram(newModel(materials), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateCalc:
		return m.calcKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ops)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.ops[m.cursor]
		m.paramNames = opParams[m.selected]
		m.paramCursor = 0
		for _, name := range m.paramNames {
			if _, ok := m.params[name]; !ok {
				m.params[name] = 0.0
			}
		}
		m.state = stateCalc
	}
	return m, nil
}

func (m model) calcKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strings.TrimSpace(fmt.Sprintf("%g", m.params[m.paramNames[m.paramCursor]]))
	case "m":
		// cycle material presets into the modulus parameter
		if names := m.materials.Names(); len(names) > 0 {
			m.matIndex = (m.matIndex + 1) % len(names)
			if mat, ok := m.materials.Lookup(names[m.matIndex]); ok {
				m.params["modulus"] = mat.ElasticModulus
			}
		}
	}
	return m, nil
}

func (m model) result() float64 {
	args := make([]float64, len(m.paramNames))
	for i, name := range m.paramNames {
		args[i] = m.params[name]
	}
	return engine.Call(m.selected, args...)
}

func (m model) View() string {
	switch m.state {
	case stateCalc:
		return m.calcView()
	default:
		return m.menuView()
	}
}

func (m model) menuView() string {
	var b strings.Builder
	b.WriteString(cyan.Render("phyarch") + dim.Render("  engineering unit calculator") + "\n\n")
	for i, op := range m.ops {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = cyan.Render("> ")
			style = cyan
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, style.Render(op), dim.Render(opInfo[op])))
	}
	b.WriteString("\n" + dim.Render("j/k move · enter select · q quit"))
	return b.String()
}

func (m model) calcView() string {
	var b strings.Builder
	b.WriteString(cyan.Render(m.selected) + "  " + dim.Render(opInfo[m.selected]) + "\n\n")

	for i, name := range m.paramNames {
		cursor := "  "
		if i == m.paramCursor {
			cursor = cyan.Render("> ")
		}
		value := fmt.Sprintf("%g", m.params[name])
		if m.editing && i == m.paramCursor {
			value = yellow.Render(m.editBuf + "_")
		}
		b.WriteString(fmt.Sprintf("%s%-10s %s\n", cursor, name, white.Render(value)))
	}

	v := m.result()
	b.WriteString("\n" + white.Render("result ") + green.Render(fmt.Sprintf("%g", v)))
	if v == engine.Sentinel {
		b.WriteString("  " + yellow.Render("(sentinel: zero or invalid input)"))
	}
	if m.matIndex >= 0 {
		names := m.materials.Names()
		b.WriteString("\n" + dim.Render("material: "+names[m.matIndex]))
	}
	b.WriteString("\n\n" + dim.Render("j/k move · enter edit · m material · esc back · ctrl+c quit"))
	return b.String()
}

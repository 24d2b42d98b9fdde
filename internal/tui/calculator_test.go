package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Universe-Codex/PhyArch/internal/config"
	"github.com/Universe-Codex/PhyArch/internal/engine"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "escape":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	var m tea.Model = newModel(config.Default())

	m = press(t, m, "enter")
	got := m.(model)
	if got.state != stateCalc {
		t.Fatalf("expected calc state, got %v", got.state)
	}
	// Names() is sorted, so the first operation is axial stiffness.
	if got.selected != engine.ExportAxialStiffness {
		t.Errorf("expected %s, got %s", engine.ExportAxialStiffness, got.selected)
	}
}

func TestEditParamAndResult(t *testing.T) {
	var m tea.Model = newModel(config.Default())

	// Move to engine_calculate_stress (sorted last) and select it.
	m = press(t, m, "j", "j", "j", "enter")
	got := m.(model)
	if got.selected != engine.ExportStress {
		t.Fatalf("expected stress op, got %s", got.selected)
	}

	// force = 1000
	m = press(t, m, "enter", "1", "0", "0", "0", "enter")
	// area = 10
	m = press(t, m, "j", "enter", "1", "0", "enter")

	got = m.(model)
	if got.params["force"] != 1000.0 || got.params["area"] != 10.0 {
		t.Fatalf("params not applied: %+v", got.params)
	}
	if v := got.result(); v != 100.0 {
		t.Errorf("expected live result 100, got %g", v)
	}
	if !strings.Contains(got.View(), "100") {
		t.Error("expected result in view")
	}
}

func TestSentinelShownForInvalidInput(t *testing.T) {
	var m tea.Model = newModel(config.Default())
	m = press(t, m, "j", "j", "j", "enter")
	// force = 500, area left at 0
	m = press(t, m, "enter", "5", "0", "0", "enter")

	got := m.(model)
	if v := got.result(); v != 0.0 {
		t.Fatalf("expected sentinel, got %g", v)
	}
	if !strings.Contains(got.View(), "sentinel") {
		t.Error("expected sentinel note in view")
	}
}

func TestMaterialCycle(t *testing.T) {
	var m tea.Model = newModel(config.Default())
	// displacement is second in sorted order
	m = press(t, m, "j", "enter", "m")

	got := m.(model)
	if got.params["modulus"] == 0 {
		t.Error("expected material cycle to set modulus")
	}
}

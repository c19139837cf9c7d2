package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/device"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T) Model {
	t.Helper()
	dev := device.New(device.Config{Accel: accel.Config{Emulate: false}})
	dev.AllocateQubits(2)
	return NewModel(dev, nil, nil)
}

func TestApplyKeyCreatesSuperposition(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(key(" "))
	m = next.(Model)

	if m.applied != 1 {
		t.Errorf("applied = %d, want 1", m.applied)
	}
	last := m.history[len(m.history)-1]
	if math.Abs(last-0.5) > 1e-9 {
		t.Errorf("P(|00>) = %v, want 0.5", last)
	}
}

func TestResetKeyRestoresAllZeros(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(key(" "))
	next, _ = next.(Model).Update(key("r"))
	m = next.(Model)

	if m.applied != 0 {
		t.Errorf("applied = %d after reset, want 0", m.applied)
	}
	if last := m.history[len(m.history)-1]; last != 1 {
		t.Errorf("P(|00>) = %v after reset, want 1", last)
	}
}

func TestResizeKeysBoundRegister(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(key("+"))
	m = next.(Model)
	if m.qubits != 3 {
		t.Errorf("qubits = %d after grow, want 3", m.qubits)
	}

	for i := 0; i < 5; i++ {
		next, _ = m.Update(key("-"))
		m = next.(Model)
	}
	if m.qubits != 1 {
		t.Errorf("qubits = %d after repeated shrink, want 1", m.qubits)
	}
	if m.cursor >= m.qubits {
		t.Errorf("cursor = %d outside register of %d", m.cursor, m.qubits)
	}
}

func TestViewShowsBasisStates(t *testing.T) {
	m := testModel(t)
	view := m.View()

	if !strings.Contains(view, "QUANTUM REGISTER") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "|00⟩") {
		t.Error("view missing basis label")
	}
	if !strings.Contains(view, "UNAVAILABLE") {
		t.Error("view missing bridge state for software-only device")
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("phosphor").Name; got != "phosphor" {
		t.Errorf("GetTheme(phosphor).Name = %s", got)
	}
	if got := GetTheme("nope").Name; got != "neon" {
		t.Errorf("unknown theme should fall back to neon, got %s", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	defer SetTheme("neon")

	SetTheme("neon")
	seen := map[string]bool{CurrentTheme.Name: true}
	for i := 0; i < len(Themes); i++ {
		NextTheme()
		seen[CurrentTheme.Name] = true
	}

	if CurrentTheme.Name != "neon" {
		t.Errorf("full cycle should wrap back to neon, got %s", CurrentTheme.Name)
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(Themes))
	}
}

package viz

import (
	"fmt"
	"math/cmplx"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/metrics"
	"github.com/san-kum/qsim/internal/quantum"
)

const (
	historyCapacity = 600
	maxQubits       = 8
	maxDisplayRows  = 16
	barWidth        = 20
)

var (
	registerStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the live register view. Keys apply gates and resize the
// register; a slow tick refreshes the accelerator health panel.
type Model struct {
	dev      *device.Device
	em       *accel.Emulator
	rec      *metrics.Recorder
	qubits   int
	cursor   int
	applied  int
	history  []float64
	status   accel.EmulatorStatus
	showHelp bool
	err      error
}

// NewModel wraps an allocated device. The emulator handle may be nil
// when the device runs software-only or on real hardware.
func NewModel(dev *device.Device, em *accel.Emulator, rec *metrics.Recorder) Model {
	m := Model{
		dev:     dev,
		em:      em,
		rec:     rec,
		qubits:  dev.GetNumQubits(),
		history: make([]float64, 0, historyCapacity),
	}
	if em != nil {
		m.status = em.Status()
	}
	m.record()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and applies device operations.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.qubits-1 {
				m.cursor++
			}
		case " ", "enter":
			m.apply()
		case "r":
			m.reset()
		case "+", "=":
			m.grow()
		case "-", "_":
			m.shrink()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.em != nil {
			m.status = m.em.Status()
		}
		return m, tea.Tick(time.Second/2, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// apply runs a Hadamard on the selected wire.
func (m *Model) apply() {
	m.err = m.dev.NamedOperation("Hadamard", nil, []int{m.cursor}, false, nil, nil)
	if m.err == nil {
		m.applied++
	}
	m.record()
}

// reset restores |0...0> at the current register size.
func (m *Model) reset() {
	m.dev.ReleaseAllQubits()
	m.dev.AllocateQubits(m.qubits)
	m.applied = 0
	m.err = nil
	m.history = m.history[:0]
	m.record()
}

func (m *Model) grow() {
	if m.qubits >= maxQubits {
		return
	}
	m.dev.AllocateQubit()
	m.qubits = m.dev.GetNumQubits()
	m.applied = 0
	m.history = m.history[:0]
	m.record()
}

func (m *Model) shrink() {
	if m.qubits <= 1 {
		return
	}
	m.dev.ReleaseQubit(quantum.QubitHandle(m.qubits - 1))
	m.qubits = m.dev.GetNumQubits()
	if m.cursor >= m.qubits {
		m.cursor = m.qubits - 1
	}
	m.applied = 0
	m.history = m.history[:0]
	m.record()
}

// record appends the all-zeros probability to the trace.
func (m *Model) record() {
	v := m.dev.StateVector()
	p := 0.0
	if len(v) > 0 {
		p = real(v[0])*real(v[0]) + imag(v[0])*imag(v[0])
	}
	m.history = append(m.history, p)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Title).Bold(true).MarginBottom(1)

	registerView := registerStyle.Render(m.renderRegister())

	var s strings.Builder
	s.WriteString(titleStyle.Render("QUANTUM REGISTER") + "\n")
	s.WriteString(m.renderBridge() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("P(|0...0>)"))
		graphStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Graph).Padding(1, 0)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Qubits") + valueStyle.Render(fmt.Sprintf("%d", m.qubits)) + "\n")
	s.WriteString(labelStyle.Render("Wire") + valueStyle.Render(fmt.Sprintf("%d", m.cursor)) + "\n")
	s.WriteString(labelStyle.Render("Applied") + valueStyle.Render(fmt.Sprintf("%d", m.applied)) + "\n")

	if m.rec != nil {
		st := m.rec.Stats()
		s.WriteString(labelStyle.Render("Hardware") + valueStyle.Render(fmt.Sprintf("%d", st.HardwareRuns)) + "\n")
		s.WriteString(labelStyle.Render("Software") + valueStyle.Render(fmt.Sprintf("%d", st.SoftwareRuns)) + "\n")
		s.WriteString(labelStyle.Render("Fallbacks") + valueStyle.Render(fmt.Sprintf("%d", st.Fallbacks)) + "\n")
	}

	if m.em != nil {
		s.WriteString("\nACCELERATOR\n")
		s.WriteString(labelStyle.Render("Device") + valueStyle.Render(m.status.Device) + "\n")
		s.WriteString(labelStyle.Render("Memory") + valueStyle.Render(fmt.Sprintf("%d MB", m.status.MemoryMB)) + "\n")
		s.WriteString(labelStyle.Render("Temp") + valueStyle.Render(fmt.Sprintf("%.1f C", m.status.Temperature)) + "\n")
		s.WriteString(labelStyle.Render("Util") + valueStyle.Render(fmt.Sprintf("%.0f%%", m.status.Utilization)) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + StatusUnavailable.Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\n←→:Wire SP:Hadamard R:Reset\n+/-:Resize T:Theme ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, registerView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Left/H   - Select previous wire     ║
║  Right/L  - Select next wire         ║
║  Space    - Apply Hadamard           ║
║  R        - Reset register           ║
║  +        - Allocate a qubit         ║
║  -        - Release a qubit          ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// renderBridge styles the accelerator state line.
func (m Model) renderBridge() string {
	st := m.dev.BridgeState()
	label := strings.ToUpper(st.String())
	switch st {
	case accel.Available:
		return StatusAvailable.Render("⚡ " + label)
	case accel.Degraded:
		return StatusDegraded.Render("⚠ " + label)
	default:
		return StatusUnavailable.Render("● " + label)
	}
}

// renderRegister draws the wire selector and one row per basis state.
func (m Model) renderRegister() string {
	var s strings.Builder

	cursorStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Cursor).Bold(true)
	s.WriteString("wire ")
	for w := 0; w < m.qubits; w++ {
		if w == m.cursor {
			s.WriteString(cursorStyle.Render(fmt.Sprintf("[%d]", w)))
		} else {
			s.WriteString(fmt.Sprintf(" %d ", w))
		}
	}
	s.WriteString("\n")
	s.WriteString(Separator(m.qubits*3 + 5 + barWidth + 24))
	s.WriteString("\n")

	v := m.dev.StateVector()
	rows := len(v)
	if rows > maxDisplayRows {
		rows = maxDisplayRows
	}
	for i := 0; i < rows; i++ {
		p := real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		label := fmt.Sprintf("|%0*b⟩", m.qubits, i)
		amp := fmt.Sprintf("%+.4f%+.4fi", real(v[i]), imag(v[i]))
		if cmplx.Abs(v[i]) < 1e-12 {
			amp = Subtle.Render(amp)
		} else {
			amp = valueStyle.Render(amp)
		}
		s.WriteString(fmt.Sprintf("%s %s %.4f  %s\n", label, ProbabilityBar(p, barWidth), p, amp))
	}
	if len(v) > rows {
		s.WriteString(Subtle.Render(fmt.Sprintf("... %d more states", len(v)-rows)) + "\n")
	}

	return s.String()
}

package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/render"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

// history keeps the latest values of one state component for the graph.
type history struct {
	index  int
	values []float64
}

func (h *history) OnTick(_ int, x []float64) {
	if h.index >= len(x) {
		return
	}
	h.values = append(h.values, x[h.index])
	if len(h.values) > historyCapacity {
		h.values = h.values[1:]
	}
}

func (h *history) OnReset() { h.values = h.values[:0] }

// Model is the live view: one active scenario at a time, driven by bubbletea
// frames. Switching scenario stops the old driver before the new one starts.
type Model struct {
	registry *experiment.Registry
	names    []string
	current  int
	session  *experiment.Session
	handle   *driver.Handle
	sched    *Scheduler
	canvas   *Canvas
	history  *history
	incline  kinematics.InclineParams
	selected int
	showHelp bool

	// OnInclineChange, if set, sees the incline parameters when they change.
	OnInclineChange func(kinematics.InclineParams)
}

// NewModel opens scenario and starts it.
func NewModel(scenario string, incline kinematics.InclineParams, fps int) (*Model, error) {
	reg := experiment.NewRegistry()
	m := &Model{
		registry: reg,
		names:    reg.List(),
		sched:    NewScheduler(fps),
		canvas:   NewCanvas(width, height),
		incline:  incline,
	}

	for i, name := range m.names {
		if name == scenario {
			return m, m.open(i)
		}
	}
	return nil, fmt.Errorf("%w: %s", experiment.ErrUnknownScenario, scenario)
}

func (m *Model) open(i int) error {
	if m.session != nil {
		m.handle.Stop()
		if m.session.Controls != nil {
			m.incline = m.session.Controls.Params()
		}
	}

	s, err := m.registry.Open(m.names[i], m.incline, nil)
	if err != nil {
		return err
	}
	m.history = &history{index: 1}
	s.Runner.AddObserver(m.history)
	if ctl := s.Controls; ctl != nil {
		notify := func(float64) {
			if m.OnInclineChange != nil {
				m.OnInclineChange(ctl.Params())
			}
		}
		ctl.Angle.OnChange(notify)
		ctl.Friction.OnChange(notify)
	}

	m.session = s
	m.current = i
	m.selected = 0
	m.handle = s.Runner.Start(m.sched)
	return nil
}

// Session is the active scenario.
func (m *Model) Session() *experiment.Session { return m.session }

func (m *Model) Init() tea.Cmd {
	return m.sched.Cmd()
}

// Update delivers frames and handles keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.sched.Deliver(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.handle.Stop()
			return m, tea.Quit
		case " ":
			if m.session.Runner.Running() {
				m.handle.Stop()
			} else {
				m.handle = m.session.Runner.Start(m.sched)
			}
		case "r":
			m.session.Runner.Reset()
		case "tab":
			m.switchTo((m.current + 1) % len(m.names))
		case "shift+tab":
			m.switchTo((m.current + len(m.names) - 1) % len(m.names))
		case "1", "2", "3":
			m.switchTo(int(msg.String()[0] - '1'))
		case "up", "k":
			m.selectSlider(-1)
		case "down", "j":
			m.selectSlider(1)
		case "left", "h":
			m.nudge(-1)
		case "right", "l":
			m.nudge(1)
		case "t":
			SetTheme(NextTheme(CurrentTheme.Name))
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, m.sched.Cmd()
}

func (m *Model) switchTo(i int) {
	if i < 0 || i >= len(m.names) || i == m.current {
		return
	}
	if err := m.open(i); err != nil {
		log.Warn("switch scenario", "scenario", m.names[i], "err", err)
	}
}

func (m *Model) selectSlider(dir int) {
	if m.session.Controls == nil {
		return
	}
	n := len(m.session.Controls.Sliders())
	m.selected = (m.selected + dir + n) % n
}

func (m *Model) nudge(n int) {
	if m.session.Controls == nil {
		return
	}
	m.session.Controls.Sliders()[m.selected].Nudge(n)
}

// View renders the canvas and the stats panel side by side.
func (m *Model) View() string {
	st := NewStyles(CurrentTheme)
	runner := m.session.Runner

	if f, ok := runner.Surface().(*render.Frame); ok {
		w, h := runner.Size()
		f.Replay(NewBackend(m.canvas, w, h))
	}
	canvasView := st.Canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(st.Header.Render(strings.ToUpper(runner.Name())) + "\n")
	if runner.Running() {
		s.WriteString(st.StatusRunning.Render("RUNNING"))
	} else {
		s.WriteString(st.StatusPaused.Render("PAUSED"))
	}
	s.WriteString(fmt.Sprintf("  tick %d\n\n", runner.Ticks()))

	for _, line := range m.session.Readout() {
		label, value, _ := strings.Cut(line, ": ")
		s.WriteString(st.Label.Render(label) + st.Value.Render(value) + "\n")
	}

	if ctl := m.session.Controls; ctl != nil {
		s.WriteString("\nPARAMETERS\n")
		for i, sl := range ctl.Sliders() {
			line := fmt.Sprintf("%-9s %s %s", sl.Name, ProgressBar(sl.Fraction(), 12), sl.Format())
			if i == m.selected {
				s.WriteString(st.ActiveParam.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + st.Label.Render(line) + "\n")
			}
		}
	}

	if len(m.history.values) > 1 {
		chart := asciigraph.Plot(m.history.values,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption(runner.Fields()[m.history.index]),
		)
		s.WriteString(st.Graph.Render(chart) + "\n")
	}

	s.WriteString(st.Help.Render(Separator(40) + "\nSP:Pause R:Reset Q:Quit\nTAB:Scenario T:Theme ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.Stats.Render(s.String()))

	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset scenario           ║
║  Tab/1-3  - Switch scenario          ║
║  Up/Down  - Select slider (incline)  ║
║  Left/Rt  - Move slider (incline)    ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run opens scenario in the alt screen until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	m.handle.Stop()
	return err
}

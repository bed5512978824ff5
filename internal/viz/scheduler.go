package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/physlab/internal/driver"
)

// FrameMsg delivers a requested frame through the bubbletea update loop.
type FrameMsg struct {
	ID driver.FrameID
	At time.Time
}

// Scheduler implements driver.Scheduler on top of tea.Tick. Requests queue a
// tick command that the model returns from Update; when the FrameMsg comes
// back, Deliver runs the callback unless the frame was cancelled meanwhile.
type Scheduler struct {
	interval time.Duration
	next     driver.FrameID
	pending  map[driver.FrameID]driver.FrameFunc
	cmds     []tea.Cmd
}

func NewScheduler(fps int) *Scheduler {
	if fps <= 0 {
		fps = driver.DefaultFPS
	}
	return &Scheduler{
		interval: time.Second / time.Duration(fps),
		pending:  make(map[driver.FrameID]driver.FrameFunc),
	}
}

func (s *Scheduler) RequestFrame(fn driver.FrameFunc) driver.FrameID {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	}))
	return id
}

func (s *Scheduler) CancelFrame(id driver.FrameID) {
	delete(s.pending, id)
}

// Deliver runs the callback for msg. Stale or cancelled ids are ignored.
func (s *Scheduler) Deliver(msg FrameMsg) bool {
	fn, ok := s.pending[msg.ID]
	if !ok {
		return false
	}
	delete(s.pending, msg.ID)
	fn(msg.At)
	return true
}

// Pending is the number of live requests.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Cmd drains the tick commands queued since the last call.
func (s *Scheduler) Cmd() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

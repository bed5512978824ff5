package driver

import (
	"context"
	"sync"
	"time"
)

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

type FrameFunc func(now time.Time)

// Scheduler runs callbacks before the next repaint.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a pending request. Unknown or already-run ids are ignored.
	CancelFrame(id FrameID)
}

// frameQueue keeps pending requests in request order.
type frameQueue struct {
	next    FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
}

func newFrameQueue() frameQueue {
	return frameQueue{pending: make(map[FrameID]FrameFunc)}
}

func (q *frameQueue) add(fn FrameFunc) FrameID {
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

func (q *frameQueue) cancel(id FrameID) {
	delete(q.pending, id)
}

// take detaches the ids requested so far; callbacks requested while they run
// land in the next batch.
func (q *frameQueue) take() []FrameID {
	ids := q.order
	q.order = nil
	return ids
}

func (q *frameQueue) pop(id FrameID) (FrameFunc, bool) {
	fn, ok := q.pending[id]
	delete(q.pending, id)
	return fn, ok
}

// ManualScheduler refreshes only when told to. Headless runs and tests use
// it to drive a fixed number of frames deterministically.
type ManualScheduler struct {
	q        frameQueue
	now      time.Time
	interval time.Duration
	frames   int
}

func NewManualScheduler(fps int) *ManualScheduler {
	return &ManualScheduler{
		q:        newFrameQueue(),
		interval: frameInterval(fps),
	}
}

func (s *ManualScheduler) RequestFrame(fn FrameFunc) FrameID { return s.q.add(fn) }
func (s *ManualScheduler) CancelFrame(id FrameID)            { s.q.cancel(id) }

// Pending is the number of live requests.
func (s *ManualScheduler) Pending() int { return len(s.q.pending) }

// Frames is the number of refreshes so far.
func (s *ManualScheduler) Frames() int { return s.frames }

// Advance performs one display refresh and returns how many callbacks ran.
func (s *ManualScheduler) Advance() int {
	s.frames++
	s.now = s.now.Add(s.interval)

	ran := 0
	for _, id := range s.q.take() {
		if fn, ok := s.q.pop(id); ok {
			fn(s.now)
			ran++
		}
	}
	return ran
}

func (s *ManualScheduler) AdvanceN(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		ran += s.Advance()
	}
	return ran
}

// LoopScheduler refreshes in real time at a fixed rate. Callbacks run on the
// goroutine that calls Run; RequestFrame and CancelFrame may be called from
// anywhere.
type LoopScheduler struct {
	mu       sync.Mutex
	q        frameQueue
	interval time.Duration
}

func NewLoopScheduler(fps int) *LoopScheduler {
	return &LoopScheduler{
		q:        newFrameQueue(),
		interval: frameInterval(fps),
	}
}

func (s *LoopScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.add(fn)
}

func (s *LoopScheduler) CancelFrame(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.q.cancel(id)
}

// Run refreshes until ctx is done.
func (s *LoopScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.refresh(now)
		}
	}
}

func (s *LoopScheduler) refresh(now time.Time) {
	s.mu.Lock()
	ids := s.q.take()
	s.mu.Unlock()

	for _, id := range ids {
		s.mu.Lock()
		fn, ok := s.q.pop(id)
		s.mu.Unlock()
		if ok {
			fn(now)
		}
	}
}

const DefaultFPS = 60

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

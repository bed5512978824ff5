package gui

import (
	"slices"
	"time"

	"github.com/san-kum/physlab/internal/driver"
)

// frames is the window's driver.Scheduler. Requested callbacks run on
// the next game update.
type frames struct {
	next    driver.FrameID
	pending map[driver.FrameID]driver.FrameFunc
}

func newFrames() *frames {
	return &frames{pending: make(map[driver.FrameID]driver.FrameFunc)}
}

func (f *frames) RequestFrame(fn driver.FrameFunc) driver.FrameID {
	f.next++
	f.pending[f.next] = fn
	return f.next
}

func (f *frames) CancelFrame(id driver.FrameID) {
	delete(f.pending, id)
}

// run calls every callback pending at entry, oldest first. Callbacks
// requested while running wait for the next call.
func (f *frames) run(now time.Time) int {
	ids := make([]driver.FrameID, 0, len(f.pending))
	for id := range f.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	n := 0
	for _, id := range ids {
		fn, ok := f.pending[id]
		if !ok {
			continue
		}
		delete(f.pending, id)
		fn(now)
		n++
	}
	return n
}

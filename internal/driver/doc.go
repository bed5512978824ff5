// Package driver runs one scenario's simulation loop.
//
// A [Driver] owns a scenario's physical state and, once started, steps and
// renders it once per display refresh:
//
//	d := driver.New(scenario, params, nil)
//	h := d.Start(sched)
//	defer h.Stop()
//
// Ticks are requested from a [Scheduler] one at a time: the next frame is
// requested only after the current step and render return, so ticks never
// overlap. Stopping cancels the outstanding frame; [Handle.Stop] and
// [Scheduler.CancelFrame] are safe to call any number of times.
//
// # Thread Safety
//
// Drivers are NOT thread-safe. Every method must be called from the goroutine
// that runs the scheduler's frame callbacks.
package driver

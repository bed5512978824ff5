// Package kinematics advances the physical state of the lab scenarios by one
// fixed tick.
//
// Each scenario has a state value and a pure step function:
//
//   - [FreefallState] / [StepFreefall]: a ball falling onto a ground line and bouncing
//   - [PendulumState] / [StepPendulum]: a damped nonlinear pendulum
//   - [InclineState] / [StepIncline]: a block sliding down an incline with kinetic friction
//
// Units are per tick and per pixel, matching the drawing surface the states are
// rendered on. Steppers never fail; parameters are bounded by the caller.
//
//	s := kinematics.NewPendulum()
//	for i := 0; i < 100; i++ {
//	    s = kinematics.StepPendulum(s)
//	}
package kinematics

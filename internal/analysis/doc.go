// Package analysis works on recorded runs.
//
//   - [PowerSpectrum], [DominantPeriod]: frequency content of one state component
//   - [CrossingPeriod]: period from level crossings, robust for damped oscillation
//   - [NewPortrait]: 2D phase space trajectory of a run
//   - [SweepIncline]: incline behaviour across a range of angles
//
// Periods are in samples; divide by the frame rate for seconds:
//
//	period := analysis.DominantPeriod(res.Column(0))
//	seconds := period / float64(meta.FPS)
package analysis

package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the spectrum
// of data.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-DC
// component of data. The mean is removed and the series zero-padded to a
// power of two; the peak bin is refined by parabolic interpolation. It
// returns 0 when data has no oscillation.
func DominantPeriod(data []float64) float64 {
	if len(data) < 4 {
		return 0
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	ps := PowerSpectrum(padded)
	peak := 0
	for i := 1; i < len(ps); i++ {
		if peak == 0 || ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak == 0 || ps[peak] == 0 {
		return 0
	}

	k := float64(peak)
	if peak+1 < len(ps) {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if den := a - 2*b + c; den != 0 {
			k += 0.5 * (a - c) / den
		}
	}
	return float64(n) / k
}

// CrossingPeriod estimates the period, in samples, from the spacing of the
// crossings of level. Two crossings make one period. It returns 0 with
// fewer than two crossings.
func CrossingPeriod(data []float64, level float64) float64 {
	first, last, count := -1, -1, 0
	for i := 1; i < len(data); i++ {
		if (data[i-1] < level) != (data[i] < level) {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}
	if count < 2 {
		return 0
	}
	return 2 * float64(last-first) / float64(count-1)
}

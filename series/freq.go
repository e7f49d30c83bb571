package series

import "math"

// FFTFreq returns the two-sided frequency bins for an n-point transform of a
// signal sampled every dt seconds, in the standard FFT ordering: DC first,
// positive frequencies ascending, then negative frequencies ascending toward
// zero. Matches the numpy fftfreq convention.
func FFTFreq(n int, dt float64) []float64 {
	freqs := make([]float64, n)
	if n == 0 {
		return freqs
	}
	df := 1.0 / (float64(n) * dt)
	half := (n + 1) / 2
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * df
	}
	for i := half; i < n; i++ {
		freqs[i] = float64(i-n) * df
	}
	return freqs
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Arange returns values from start up to but excluding stop with the given
// step.
func Arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Unwrap removes 2π jumps from a phase sequence so that consecutive samples
// never differ by more than π. The first sample is left unchanged.
func Unwrap(phase []float64) []float64 {
	out := make([]float64, len(phase))
	if len(phase) == 0 {
		return out
	}
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		for d > math.Pi {
			d -= 2 * math.Pi
			offset -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

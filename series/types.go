// Package series holds the time- and frequency-domain value types shared by
// the spectral estimators and filter builders. All types are plain slices
// with a parallel index; constructors copy nothing and functions treat their
// inputs as immutable.
package series

import (
	"fmt"
	"sort"
)

// TimeSignal is a uniformly sampled real-valued signal. Times carries the
// sample instants in seconds. Uniform spacing is assumed from the first
// interval only; the rest of the grid is not validated.
type TimeSignal struct {
	Times  []float64
	Values []float64
}

// NewTimeSignal builds a TimeSignal from a start time, sampling interval and
// sample values.
func NewTimeSignal(start, dt float64, values []float64) TimeSignal {
	times := make([]float64, len(values))
	for i := range times {
		times[i] = start + float64(i)*dt
	}
	return TimeSignal{Times: times, Values: values}
}

// Len returns the number of samples.
func (s TimeSignal) Len() int {
	return len(s.Values)
}

// Dt returns the sampling interval derived from the first two time stamps.
func (s TimeSignal) Dt() (float64, error) {
	if len(s.Times) < 2 {
		return 0, fmt.Errorf("time signal needs at least 2 samples to derive dt, got %d", len(s.Times))
	}
	dt := s.Times[1] - s.Times[0]
	if dt <= 0 {
		return 0, fmt.Errorf("time index must be strictly increasing, first interval is %g", dt)
	}
	return dt, nil
}

// Spectrum is a single-channel complex spectrum indexed by frequency in Hz.
// Frequencies may be negative (two-sided spectra) and need not be sorted.
type Spectrum struct {
	Freqs  []float64
	Values []complex128
}

// Len returns the number of frequency bins.
func (s Spectrum) Len() int {
	return len(s.Freqs)
}

// MaxFreq returns the largest frequency covered by the spectrum.
func (s Spectrum) MaxFreq() float64 {
	if len(s.Freqs) == 0 {
		return 0
	}
	max := s.Freqs[0]
	for _, f := range s.Freqs[1:] {
		if f > max {
			max = f
		}
	}
	return max
}

// Sorted returns a copy of the spectrum with bins ordered by ascending
// frequency.
func (s Spectrum) Sorted() Spectrum {
	perm := sortPerm(s.Freqs)
	out := Spectrum{
		Freqs:  make([]float64, len(s.Freqs)),
		Values: make([]complex128, len(s.Values)),
	}
	for i, p := range perm {
		out.Freqs[i] = s.Freqs[p]
		out.Values[i] = s.Values[p]
	}
	return out
}

// SpectrumSet is a multi-channel complex spectrum: named channels sharing one
// frequency index. Values is parallel to Columns.
type SpectrumSet struct {
	Freqs   []float64
	Columns []string
	Values  [][]complex128
}

// Len returns the number of frequency bins.
func (s SpectrumSet) Len() int {
	return len(s.Freqs)
}

// Channel returns the values of the named channel.
func (s SpectrumSet) Channel(name string) ([]complex128, error) {
	for i, c := range s.Columns {
		if c == name {
			return s.Values[i], nil
		}
	}
	return nil, fmt.Errorf("spectrum set has no channel %q", name)
}

// Sorted returns a copy of the set with bins ordered by ascending frequency.
func (s SpectrumSet) Sorted() SpectrumSet {
	perm := sortPerm(s.Freqs)
	out := SpectrumSet{
		Freqs:   make([]float64, len(s.Freqs)),
		Columns: append([]string(nil), s.Columns...),
		Values:  make([][]complex128, len(s.Values)),
	}
	for c := range s.Values {
		out.Values[c] = make([]complex128, len(s.Values[c]))
	}
	for i, p := range perm {
		out.Freqs[i] = s.Freqs[p]
		for c := range s.Values {
			out.Values[c][i] = s.Values[c][p]
		}
	}
	return out
}

// sortPerm returns the permutation that sorts xs ascending.
func sortPerm(xs []float64) []int {
	perm := make([]int, len(xs))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return xs[perm[a]] < xs[perm[b]]
	})
	return perm
}

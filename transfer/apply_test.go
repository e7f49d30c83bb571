package transfer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/solar-sonar/series"
)

func rampAndTone(n int, dt float64) series.TimeSignal {
	values := make([]float64, n)
	for i := range values {
		ti := float64(i) * dt
		values[i] = math.Sin(2*math.Pi*0.05*ti) + 0.01*ti
	}
	return series.NewTimeSignal(0, dt, values)
}

func unityFilter(fmax float64) series.Spectrum {
	return series.Spectrum{
		Freqs:  []float64{-fmax, 0, fmax},
		Values: []complex128{1, 1, 1},
	}
}

func TestApplyUnityFilterRoundTrip(t *testing.T) {
	sig := rampAndTone(64, 1)

	out, err := NewFilterApplier().Apply(sig, unityFilter(0.5))
	require.NoError(t, err)

	require.Len(t, out.Values, sig.Len())
	assert.Equal(t, sig.Times, out.Times)
	for i := range sig.Values {
		assert.InDelta(t, sig.Values[i], out.Values[i], 1e-9, "sample %d", i)
	}
}

func TestApplyHalvingFilter(t *testing.T) {
	sig := rampAndTone(128, 1)
	filt := series.Spectrum{
		Freqs:  []float64{-0.5, 0, 0.5},
		Values: []complex128{0.5, 0.5, 0.5},
	}

	out, err := NewFilterApplier().Apply(sig, filt)
	require.NoError(t, err)

	for i := range sig.Values {
		assert.InDelta(t, sig.Values[i]/2, out.Values[i], 1e-9, "sample %d", i)
	}
}

func TestApplyCoverageError(t *testing.T) {
	// dt = 1 puts the largest bin near 0.5 Hz; a filter stopping at 0.3 Hz
	// must be rejected before any interpolation happens.
	sig := rampAndTone(64, 1)

	_, err := NewFilterApplier().Apply(sig, unityFilter(0.3))
	require.ErrorIs(t, err, ErrFrequencyCoverage)
}

func TestApplyRejectsShortSignal(t *testing.T) {
	sig := series.TimeSignal{Times: []float64{0}, Values: []float64{1}}

	_, err := NewFilterApplier().Apply(sig, unityFilter(0.5))
	assert.Error(t, err)
}

func TestCleanFrequencyAxis(t *testing.T) {
	n := 8
	s := series.Spectrum{
		Freqs:  series.FFTFreq(n, 1),
		Values: make([]complex128, n),
	}
	for i := range s.Values {
		s.Values[i] = complex(float64(i), 0)
	}
	origFreqs := append([]float64(nil), s.Freqs...)

	out := CleanFrequencyAxis(s)

	require.Len(t, out.Freqs, n)
	assert.True(t, math.IsNaN(out.Freqs[n/2]), "middle frequency must be the null marker")
	for i := range out.Freqs {
		if i == n/2 {
			continue
		}
		assert.Equal(t, origFreqs[i], out.Freqs[i], "frequency %d must be untouched", i)
	}
	// Data values and the input spectrum are untouched.
	assert.Equal(t, s.Values, out.Values)
	assert.Equal(t, origFreqs, s.Freqs)
}

func TestCleanFrequencyAxisEmpty(t *testing.T) {
	out := CleanFrequencyAxis(series.Spectrum{})
	assert.Empty(t, out.Freqs)
}

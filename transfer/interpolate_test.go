package transfer

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/solar-sonar/series"
)

func complexDelta(t *testing.T, want, got complex128, tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), tol, msgAndArgs...)
	assert.InDelta(t, imag(want), imag(got), tol, msgAndArgs...)
}

func sampleTF() series.Spectrum {
	freqs := []float64{0, 0.1, 0.2, 0.3, 0.4}
	values := make([]complex128, len(freqs))
	for i, f := range freqs {
		values[i] = cmplx.Rect(1/(1+f*5), -2*math.Pi*f*3)
	}
	return series.Spectrum{Freqs: freqs, Values: values}
}

func TestInterpolationIdentity(t *testing.T) {
	tf := sampleTF()

	out, err := NewInterpolator().InterpolateSpectrum(tf.Freqs, tf)
	require.NoError(t, err)

	require.Len(t, out.Values, len(tf.Values))
	for i := range tf.Values {
		complexDelta(t, tf.Values[i], out.Values[i], 1e-12, "bin %d", i)
	}
}

func TestInterpolationSortsSource(t *testing.T) {
	tf := sampleTF()
	// Shuffle the source bins; the interpolator must sort before fitting.
	shuffled := series.Spectrum{
		Freqs:  []float64{tf.Freqs[3], tf.Freqs[0], tf.Freqs[4], tf.Freqs[1], tf.Freqs[2]},
		Values: []complex128{tf.Values[3], tf.Values[0], tf.Values[4], tf.Values[1], tf.Values[2]},
	}

	out, err := NewInterpolator().InterpolateSpectrum(tf.Freqs, shuffled)
	require.NoError(t, err)

	for i := range tf.Values {
		complexDelta(t, tf.Values[i], out.Values[i], 1e-12, "bin %d", i)
	}
}

func TestInterpolationAcrossPhaseWrap(t *testing.T) {
	// Two unit-magnitude bins whose phases straddle the ±π boundary.
	// Interpolating the complex values directly would pull the midpoint
	// magnitude below 1; magnitude/unwrapped-phase interpolation must not.
	tf := series.Spectrum{
		Freqs: []float64{0, 1},
		Values: []complex128{
			cmplx.Rect(1, 3.0),
			cmplx.Rect(1, 3.4), // stored wrapped as 3.4-2π
		},
	}

	out, err := NewInterpolator().InterpolateSpectrum([]float64{0.5}, tf)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cmplx.Abs(out.Values[0]), 1e-12)
	complexDelta(t, cmplx.Rect(1, 3.2), out.Values[0], 1e-12)
}

func TestInterpolateSetMirrorsChannels(t *testing.T) {
	tf := sampleTF()
	set := series.SpectrumSet{
		Freqs:   tf.Freqs,
		Columns: []string{"a", "b"},
		Values:  [][]complex128{tf.Values, tf.Values},
	}

	target := []float64{0.05, 0.15, 0.25}
	out, err := NewInterpolator().InterpolateSet(target, set)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, out.Columns)
	require.Len(t, out.Values, 2)
	for i := range target {
		complexDelta(t, out.Values[0][i], out.Values[1][i], 1e-15, "bin %d", i)
	}

	// Cross-check one channel against the single-spectrum path.
	single, err := NewInterpolator().InterpolateSpectrum(target, tf)
	require.NoError(t, err)
	for i := range target {
		complexDelta(t, single.Values[i], out.Values[0][i], 1e-15, "bin %d", i)
	}
}

func TestInterpolationTooFewBins(t *testing.T) {
	tf := series.Spectrum{Freqs: []float64{0}, Values: []complex128{1}}

	_, err := NewInterpolator().InterpolateSpectrum([]float64{0}, tf)
	assert.Error(t, err)
}

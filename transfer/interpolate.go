// Package transfer resamples complex transfer functions across frequency
// grids and applies them to time signals. Complex interpolation is done on
// magnitude and unwrapped phase independently; interpolating the real and
// imaginary parts directly corrupts the result wherever the phase wraps at
// ±π.
package transfer

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/interp"

	"github.com/RyanBlaney/solar-sonar/logging"
	"github.com/RyanBlaney/solar-sonar/series"
)

// Interpolator resamples complex spectra onto arbitrary frequency grids.
type Interpolator struct {
	logger logging.Logger
}

// NewInterpolator creates a new transfer function interpolator.
func NewInterpolator() *Interpolator {
	return &Interpolator{
		logger: logging.WithFields(logging.Fields{
			"component": "tf_interpolator",
		}),
	}
}

// InterpolateSpectrum resamples a single-channel transfer function onto the
// target frequency grid. The source is sorted by frequency first; target
// frequencies outside the source domain are clamped to the nearest endpoint,
// so callers needing full coverage must check it themselves (the filter
// applier does).
func (ip *Interpolator) InterpolateSpectrum(targetFreqs []float64, tf series.Spectrum) (series.Spectrum, error) {
	sorted := tf.Sorted()
	values, err := interpChannel(sorted.Freqs, sorted.Values, targetFreqs)
	if err != nil {
		return series.Spectrum{}, err
	}
	return series.Spectrum{
		Freqs:  append([]float64(nil), targetFreqs...),
		Values: values,
	}, nil
}

// InterpolateSet resamples every channel of a multi-channel transfer
// function onto the target frequency grid. Output mirrors the input's
// channel names.
func (ip *Interpolator) InterpolateSet(targetFreqs []float64, tf series.SpectrumSet) (series.SpectrumSet, error) {
	sorted := tf.Sorted()
	out := series.SpectrumSet{
		Freqs:   append([]float64(nil), targetFreqs...),
		Columns: append([]string(nil), sorted.Columns...),
		Values:  make([][]complex128, len(sorted.Values)),
	}
	for c := range sorted.Values {
		values, err := interpChannel(sorted.Freqs, sorted.Values[c], targetFreqs)
		if err != nil {
			return series.SpectrumSet{}, fmt.Errorf("channel %q: %w", sorted.Columns[c], err)
		}
		out.Values[c] = values
	}
	return out, nil
}

// interpChannel interpolates one complex channel: linear in magnitude,
// linear in unwrapped phase, recombined as magnitude·exp(i·phase).
func interpChannel(srcFreqs []float64, srcValues []complex128, targetFreqs []float64) ([]complex128, error) {
	if len(srcFreqs) < 2 {
		return nil, fmt.Errorf("transfer function needs at least 2 frequency bins to interpolate, got %d", len(srcFreqs))
	}

	mag := make([]float64, len(srcValues))
	phase := make([]float64, len(srcValues))
	for i, v := range srcValues {
		mag[i] = cmplx.Abs(v)
		phase[i] = cmplx.Phase(v)
	}
	phase = series.Unwrap(phase)

	var magInterp, phaseInterp interp.PiecewiseLinear
	if err := magInterp.Fit(srcFreqs, mag); err != nil {
		return nil, fmt.Errorf("fitting magnitude interpolant: %w", err)
	}
	if err := phaseInterp.Fit(srcFreqs, phase); err != nil {
		return nil, fmt.Errorf("fitting phase interpolant: %w", err)
	}

	out := make([]complex128, len(targetFreqs))
	for i, f := range targetFreqs {
		out[i] = cmplx.Rect(magInterp.Predict(f), phaseInterp.Predict(f))
	}
	return out, nil
}

// Package spectral implements segment-averaged spectral estimation for
// uniformly sampled time signals: power spectral density, cross-spectral
// density, coherence and the empirical transfer function between a pair of
// signals. The averaging follows Welch's method: the signal is split into
// navgs segments (more with overlap), each segment is detrended, windowed
// and transformed, and the per-segment spectra are averaged.
package spectral

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/RyanBlaney/solar-sonar/logging"
	"github.com/RyanBlaney/solar-sonar/series"
)

// ErrDegenerateInput reports inputs that would produce empty or meaningless
// estimates: signals too short to segment, navgs exceeding the signal
// length, or mismatched input/output lengths.
var ErrDegenerateInput = errors.New("degenerate estimator input")

// TransferFunctionEstimate pairs the empirical transfer function with the
// coherence of the two signals on a shared frequency axis.
type TransferFunctionEstimate struct {
	Freqs     []float64
	TF        []complex128
	Coherence []float64
}

// Set returns the estimate as a two-channel spectrum set, transfer function
// in channel "tf" and coherence in channel "coh", the shape the transfer
// interpolator accepts for resampling both estimates together.
func (t *TransferFunctionEstimate) Set() series.SpectrumSet {
	coh := make([]complex128, len(t.Coherence))
	for i, c := range t.Coherence {
		coh[i] = complex(c, 0)
	}
	return series.SpectrumSet{
		Freqs:   t.Freqs,
		Columns: []string{"tf", "coh"},
		Values:  [][]complex128{t.TF, coh},
	}
}

// Estimator computes averaged spectral estimates.
type Estimator struct {
	logger logging.Logger
}

// NewEstimator creates a new spectral estimator.
func NewEstimator() *Estimator {
	return &Estimator{
		logger: logging.WithFields(logging.Fields{
			"component": "spectral_estimator",
		}),
	}
}

// AveragedPSD calculates an averaged power spectral density for a signal.
// navgs is the number of averages at zero overlap; the configured overlap
// yields more averages. With density scaling the values are reported in
// power per unit frequency.
func (e *Estimator) AveragedPSD(sig series.TimeSignal, navgs int, cfg *EstimatorConfig) (series.Spectrum, error) {
	dt, err := sig.Dt()
	if err != nil {
		return series.Spectrum{}, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}

	plan, err := newWelchPlan(sig.Len(), navgs, 1/dt, cfg)
	if err != nil {
		return series.Spectrum{}, err
	}

	e.logger.Debug("computing averaged PSD", logging.Fields{
		"signal_length": sig.Len(),
		"navgs":         navgs,
		"nperseg":       plan.nperseg,
	})

	pxx, err := plan.crossSpectrum(sig.Values, sig.Values)
	if err != nil {
		return series.Spectrum{}, err
	}
	return series.Spectrum{Freqs: plan.freqs(), Values: pxx}, nil
}

// AveragedTF calculates the empirical transfer function between an input and
// an output signal, along with their coherence. The transfer function is the
// averaged cross-spectral density divided by the averaged input PSD; the
// three underlying estimates share one segmentation so the result is
// frequency-aligned by construction.
func (e *Estimator) AveragedTF(input, output series.TimeSignal, navgs int, cfg *EstimatorConfig) (*TransferFunctionEstimate, error) {
	if input.Len() != output.Len() {
		return nil, fmt.Errorf("%w: input length (%d) does not match output length (%d)",
			ErrDegenerateInput, input.Len(), output.Len())
	}

	dt, err := input.Dt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}

	plan, err := newWelchPlan(input.Len(), navgs, 1/dt, cfg)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("computing averaged transfer function", logging.Fields{
		"signal_length": input.Len(),
		"navgs":         navgs,
		"nperseg":       plan.nperseg,
	})

	pxx, err := plan.crossSpectrum(input.Values, input.Values)
	if err != nil {
		return nil, err
	}
	pyy, err := plan.crossSpectrum(output.Values, output.Values)
	if err != nil {
		return nil, err
	}
	pxy, err := plan.crossSpectrum(input.Values, output.Values)
	if err != nil {
		return nil, err
	}

	nfreq := len(pxx)
	tf := make([]complex128, nfreq)
	coh := make([]float64, nfreq)
	for i := 0; i < nfreq; i++ {
		// Near-zero input power propagates as non-finite values rather
		// than being trapped.
		tf[i] = pxy[i] / complex(real(pxx[i]), 0)
		cross := cmplx.Abs(pxy[i])
		coh[i] = cross * cross / (real(pxx[i]) * real(pyy[i]))
	}

	return &TransferFunctionEstimate{
		Freqs:     plan.freqs(),
		TF:        tf,
		Coherence: coh,
	}, nil
}

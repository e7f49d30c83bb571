package transfer

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/solar-sonar/logging"
	"github.com/RyanBlaney/solar-sonar/series"
)

// ErrFrequencyCoverage reports a filter whose frequency domain does not span
// the frequency bins of the signal it is applied to.
var ErrFrequencyCoverage = errors.New("filter does not cover the signal's frequency axis")

// FilterApplier applies complex frequency-domain filters to time signals.
type FilterApplier struct {
	interp *Interpolator
	logger logging.Logger
}

// NewFilterApplier creates a new filter applier.
func NewFilterApplier() *FilterApplier {
	return &FilterApplier{
		interp: NewInterpolator(),
		logger: logging.WithFields(logging.Fields{
			"component": "filter_applier",
		}),
	}
}

// Apply filters a time signal with a complex frequency-domain filter and
// returns the filtered signal on the original time index.
//
// The signal's full two-sided transform is taken with a 2/N forward scale,
// the filter is interpolated onto the signal's exact frequency bins,
// multiplied in, and the product inverted with the compensating N/2 scale.
// The filter must cover the signal's maximum bin frequency or
// ErrFrequencyCoverage is returned. The imaginary residue of the inverse
// transform is discarded, which assumes a Hermitian-symmetric filter.
func (fa *FilterApplier) Apply(sig series.TimeSignal, filt series.Spectrum) (series.TimeSignal, error) {
	dt, err := sig.Dt()
	if err != nil {
		return series.TimeSignal{}, err
	}
	n := sig.Len()

	fa.logger.Debug("applying frequency-domain filter", logging.Fields{
		"signal_length": n,
		"filter_bins":   filt.Len(),
	})

	fvec := series.FFTFreq(n, dt)
	maxBin := 0.0
	for _, f := range fvec {
		if f > maxBin {
			maxBin = f
		}
	}
	if maxBin > filt.MaxFreq() {
		return series.TimeSignal{}, fmt.Errorf(
			"%w: filter reaches %g Hz but the signal requires %g Hz",
			ErrFrequencyCoverage, filt.MaxFreq(), maxBin)
	}

	inputFFT := fft.FFTReal(sig.Values)
	scale := complex(2/float64(n), 0)
	for i := range inputFFT {
		inputFFT[i] *= scale
	}

	interpFilt, err := fa.interp.InterpolateSpectrum(fvec, filt)
	if err != nil {
		return series.TimeSignal{}, err
	}

	compensate := complex(float64(n)/2, 0)
	filtered := make([]complex128, n)
	for i := range filtered {
		filtered[i] = inputFFT[i] * interpFilt.Values[i] * compensate
	}

	inverse := fft.IFFT(filtered)
	values := make([]float64, n)
	for i, v := range inverse {
		values[i] = real(v)
	}

	return series.TimeSignal{Times: sig.Times, Values: values}, nil
}

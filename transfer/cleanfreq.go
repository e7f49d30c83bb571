package transfer

import (
	"math"

	"github.com/RyanBlaney/solar-sonar/series"
)

// CleanFrequencyAxis returns a copy of the spectrum whose middle frequency
// (position len/2) is replaced with NaN, leaving all data values untouched.
// On a two-sided spectrum in FFT ordering this breaks a plotted line from
// wrapping across the zero-frequency or Nyquist boundary. Display aid only;
// nothing else consumes the result.
func CleanFrequencyAxis(s series.Spectrum) series.Spectrum {
	out := series.Spectrum{
		Freqs:  append([]float64(nil), s.Freqs...),
		Values: append([]complex128(nil), s.Values...),
	}
	if len(out.Freqs) == 0 {
		return out
	}
	out.Freqs[len(out.Freqs)/2] = math.NaN()
	return out
}

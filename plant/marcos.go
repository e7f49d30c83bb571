package plant

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/solar-sonar/series"
)

// MarcosFilter computes the empirical Marcos smoothing filter for a plant of
// the given area in hectares: a single-pole low-pass 1/(1 + i·f/fc) with
// cutoff fc = 0.02/√area. If freqs is nil a reference grid of 100 points
// from 0 to 0.5 Hz is used.
//
// Values are rounded through 32-bit complex precision, matching the model's
// published reference implementation.
func MarcosFilter(areaHectares float64, freqs []float64) (series.Spectrum, error) {
	if areaHectares <= 0 {
		return series.Spectrum{}, fmt.Errorf("plant area must be positive, got %g hectares", areaHectares)
	}
	if freqs == nil {
		freqs = series.Linspace(0, 0.5, 100)
	}

	fc := 0.02 / math.Sqrt(areaHectares)
	values := make([]complex128, len(freqs))
	for i, f := range freqs {
		v := 1 / complex(1, f/fc)
		values[i] = complex128(complex64(v))
	}

	return series.Spectrum{
		Freqs:  append([]float64(nil), freqs...),
		Values: values,
	}, nil
}

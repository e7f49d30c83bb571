package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// detrendInPlace removes the requested trend from a segment before
// windowing. The segment is modified in place.
func detrendInPlace(segment []float64, mode DetrendMode, xs []float64) error {
	switch mode {
	case DetrendNone:
		return nil
	case DetrendConstant:
		mean := stat.Mean(segment, nil)
		for i := range segment {
			segment[i] -= mean
		}
		return nil
	case DetrendLinear:
		alpha, beta := stat.LinearRegression(xs[:len(segment)], segment, nil, false)
		for i := range segment {
			segment[i] -= alpha + beta*xs[i]
		}
		return nil
	default:
		return fmt.Errorf("unsupported detrend mode: %s", mode)
	}
}

// Package windowing generates the taper windows used by the averaged
// spectral estimators. Windows are generated periodic by default, which is
// the correct variant for segment-averaged spectral estimation; symmetric
// variants are available for filter design style use.
package windowing

import (
	"fmt"
	"math"
)

// WindowType represents different window function types
type WindowType string

const (
	WindowHann        WindowType = "hann"
	WindowHamming     WindowType = "hamming"
	WindowBlackman    WindowType = "blackman"
	WindowBartlett    WindowType = "bartlett"
	WindowRectangular WindowType = "rectangular"
)

// WindowConfig holds window generation parameters
type WindowConfig struct {
	Type      WindowType
	Size      int
	Symmetric bool // symmetric vs periodic sampling of the window function
}

// DefaultWindowConfig returns the window used by the spectral estimators
// when none is specified: a periodic Hann window.
func DefaultWindowConfig(size int) *WindowConfig {
	return &WindowConfig{
		Type:      WindowHann,
		Size:      size,
		Symmetric: false,
	}
}

// Window holds generated coefficients along with the two normalization sums
// the estimators need.
type Window struct {
	Type         WindowType
	Coefficients []float64
	Sum          float64 // Σw, amplitude normalization
	Power        float64 // Σw², power normalization
}

// Generate creates a window with the specified configuration.
func Generate(config *WindowConfig) (*Window, error) {
	if config == nil {
		return nil, fmt.Errorf("window config must not be nil")
	}
	if config.Size <= 0 {
		return nil, fmt.Errorf("window size must be positive: %d", config.Size)
	}

	coefficients := make([]float64, config.Size)

	switch config.Type {
	case WindowHann:
		generateHann(coefficients, config.Symmetric)
	case WindowHamming:
		generateHamming(coefficients, config.Symmetric)
	case WindowBlackman:
		generateBlackman(coefficients, config.Symmetric)
	case WindowBartlett:
		generateBartlett(coefficients, config.Symmetric)
	case WindowRectangular:
		generateRectangular(coefficients)
	default:
		return nil, fmt.Errorf("unsupported window type: %s", config.Type)
	}

	w := &Window{
		Type:         config.Type,
		Coefficients: coefficients,
	}
	for _, c := range coefficients {
		w.Sum += c
		w.Power += c * c
	}
	return w, nil
}

// ApplyInPlace multiplies the signal by the window coefficients in-place.
func (w *Window) ApplyInPlace(signal []float64) error {
	if len(signal) != len(w.Coefficients) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(w.Coefficients))
	}
	for i := range signal {
		signal[i] *= w.Coefficients[i]
	}
	return nil
}

// denominator handles the single sampling difference between symmetric and
// periodic windows.
func denominator(n int, symmetric bool) float64 {
	if symmetric {
		return float64(n - 1)
	}
	return float64(n)
}

// generateHann generates Hann window coefficients
func generateHann(coefficients []float64, symmetric bool) {
	d := denominator(len(coefficients), symmetric)
	for i := range coefficients {
		coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/d))
	}
}

// generateHamming generates Hamming window coefficients
func generateHamming(coefficients []float64, symmetric bool) {
	d := denominator(len(coefficients), symmetric)
	for i := range coefficients {
		coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/d)
	}
}

// generateBlackman generates Blackman window coefficients
func generateBlackman(coefficients []float64, symmetric bool) {
	d := denominator(len(coefficients), symmetric)
	for i := range coefficients {
		x := 2 * math.Pi * float64(i) / d
		coefficients[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	}
}

// generateBartlett generates Bartlett (triangular) window coefficients
func generateBartlett(coefficients []float64, symmetric bool) {
	d := denominator(len(coefficients), symmetric)
	for i := range coefficients {
		coefficients[i] = 1.0 - math.Abs(2*float64(i)/d-1.0)
	}
}

// generateRectangular generates rectangular (boxcar) window coefficients
func generateRectangular(coefficients []float64) {
	for i := range coefficients {
		coefficients[i] = 1.0
	}
}

package spectral

import "github.com/RyanBlaney/solar-sonar/algorithms/windowing"

// DetrendMode selects how each segment is detrended before windowing.
type DetrendMode string

const (
	DetrendLinear   DetrendMode = "linear"
	DetrendConstant DetrendMode = "constant"
	DetrendNone     DetrendMode = "none"
)

// ScalingMode selects the output units of the spectral estimates.
type ScalingMode string

const (
	// ScalingDensity reports power per unit frequency (V²/Hz).
	ScalingDensity ScalingMode = "density"
	// ScalingSpectrum reports power per bin (V²).
	ScalingSpectrum ScalingMode = "spectrum"
)

// EstimatorConfig collects the segmented-averaging parameters shared by the
// PSD, CSD and coherence estimates. Using one config for all three keeps
// their frequency axes aligned.
type EstimatorConfig struct {
	Window  windowing.WindowType
	Detrend DetrendMode
	Overlap float64 // fractional overlap between segments, [0, 1)
	Scaling ScalingMode
}

// DefaultEstimatorConfig returns the defaults: Hann window, linear detrend,
// 50% overlap, density scaling.
func DefaultEstimatorConfig() *EstimatorConfig {
	return &EstimatorConfig{
		Window:  windowing.WindowHann,
		Detrend: DetrendLinear,
		Overlap: 0.5,
		Scaling: ScalingDensity,
	}
}

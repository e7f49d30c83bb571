package spectral

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/RyanBlaney/solar-sonar/algorithms/windowing"
)

// welchPlan holds the segmentation, window and FFT state shared by every
// estimate derived from one (signal, navgs, config) triple. Deriving the
// PSD, CSD and coherence from a single plan guarantees they land on the
// same frequency axis.
type welchPlan struct {
	n       int // total signal length
	nperseg int // segment length = n / navgs
	step    int // hop between segment starts
	fs      float64
	window  *windowing.Window
	fft     *fourier.FFT
	detrend DetrendMode
	scaling ScalingMode
	xs      []float64 // 0..nperseg-1, reused by linear detrending
}

func newWelchPlan(n, navgs int, fs float64, cfg *EstimatorConfig) (*welchPlan, error) {
	if cfg == nil {
		cfg = DefaultEstimatorConfig()
	}
	if navgs < 1 {
		return nil, fmt.Errorf("%w: navgs must be at least 1, got %d", ErrDegenerateInput, navgs)
	}
	nperseg := n / navgs
	if nperseg < 1 {
		return nil, fmt.Errorf("%w: navgs (%d) exceeds signal length (%d), segments would be empty",
			ErrDegenerateInput, navgs, n)
	}
	if cfg.Overlap < 0 || cfg.Overlap >= 1 {
		return nil, fmt.Errorf("%w: overlap must be in [0, 1), got %g", ErrDegenerateInput, cfg.Overlap)
	}
	noverlap := int(float64(nperseg) * cfg.Overlap)
	step := nperseg - noverlap
	if step < 1 {
		step = 1
	}

	win, err := windowing.Generate(&windowing.WindowConfig{
		Type:      cfg.Window,
		Size:      nperseg,
		Symmetric: false,
	})
	if err != nil {
		return nil, err
	}

	xs := make([]float64, nperseg)
	for i := range xs {
		xs[i] = float64(i)
	}

	return &welchPlan{
		n:       n,
		nperseg: nperseg,
		step:    step,
		fs:      fs,
		window:  win,
		fft:     fourier.NewFFT(nperseg),
		detrend: cfg.Detrend,
		scaling: cfg.Scaling,
		xs:      xs,
	}, nil
}

// freqs returns the one-sided frequency axis of the plan.
func (p *welchPlan) freqs() []float64 {
	nfreq := p.nperseg/2 + 1
	freqs := make([]float64, nfreq)
	for i := range freqs {
		freqs[i] = p.fft.Freq(i) * p.fs
	}
	return freqs
}

// segmentSpectrum detrends, windows and transforms one segment.
func (p *welchPlan) segmentSpectrum(seg []float64, buf []float64) ([]complex128, error) {
	copy(buf, seg)
	if err := detrendInPlace(buf, p.detrend, p.xs); err != nil {
		return nil, err
	}
	if err := p.window.ApplyInPlace(buf); err != nil {
		return nil, err
	}
	return p.fft.Coefficients(nil, buf), nil
}

// crossSpectrum computes the segment-averaged one-sided cross-spectral
// density conj(X)·Y between x and y. Calling it with x == y yields the
// power spectral density (imaginary parts identically zero).
func (p *welchPlan) crossSpectrum(x, y []float64) ([]complex128, error) {
	nfreq := p.nperseg/2 + 1
	acc := make([]complex128, nfreq)
	bufX := make([]float64, p.nperseg)
	bufY := make([]float64, p.nperseg)

	var scale float64
	switch p.scaling {
	case ScalingDensity:
		scale = 1.0 / (p.fs * p.window.Power)
	case ScalingSpectrum:
		scale = 1.0 / (p.window.Sum * p.window.Sum)
	default:
		return nil, fmt.Errorf("unsupported scaling mode: %s", p.scaling)
	}

	nseg := 0
	for start := 0; start+p.nperseg <= p.n; start += p.step {
		specX, err := p.segmentSpectrum(x[start:start+p.nperseg], bufX)
		if err != nil {
			return nil, err
		}
		specY, err := p.segmentSpectrum(y[start:start+p.nperseg], bufY)
		if err != nil {
			return nil, err
		}
		for i := 0; i < nfreq; i++ {
			acc[i] += cmplx.Conj(specX[i]) * specY[i]
		}
		nseg++
	}
	if nseg == 0 {
		return nil, fmt.Errorf("%w: no complete segments of length %d in signal of length %d",
			ErrDegenerateInput, p.nperseg, p.n)
	}

	// One-sided estimate: fold the energy of the omitted negative
	// frequencies into every bin except DC and (for even segment lengths)
	// Nyquist.
	for i := 0; i < nfreq; i++ {
		factor := scale / float64(nseg)
		if i != 0 && !(p.nperseg%2 == 0 && i == nfreq-1) {
			factor *= 2
		}
		acc[i] *= complex(factor, 0)
	}
	return acc, nil
}

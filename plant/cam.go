package plant

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/solar-sonar/logging"
	"github.com/RyanBlaney/solar-sonar/series"
	"github.com/RyanBlaney/solar-sonar/spatial"
)

// CloudMotion describes a cloud motion vector: a planar direction (length is
// irrelevant, it is normalized internally) and a signed scalar speed in
// meters per second. The sign of Speed sets the causal direction along the
// projection axis.
type CloudMotion struct {
	Direction spatial.Vector
	Speed     float64
}

// CAMBuilder converts plant profiles into Cloud Advection Model filters.
type CAMBuilder struct {
	synth  *Synthesizer
	logger logging.Logger
}

// NewCAMBuilder creates a new CAM filter builder.
func NewCAMBuilder() *CAMBuilder {
	return &CAMBuilder{
		synth: NewSynthesizer(),
		logger: logging.WithFields(logging.Fields{
			"component": "cam_builder",
		}),
	}
}

// FromProfile computes the CAM frequency response of a plant profile swept
// by clouds moving at the given signed speed.
//
// The profile is normalized to unit mass so the zero-frequency gain is one,
// transformed to a spatial-frequency response, and re-indexed onto a
// temporal frequency axis with effective time step dx/|speed|. The phase is
// referenced to the reference site via the delay x_min/speed; for negative
// speeds the conjugate response with the negated delay is returned, flipping
// the causal direction consistent with reversed cloud travel.
func (b *CAMBuilder) FromProfile(p *Profile, cloudSpeed float64) (series.Spectrum, error) {
	dx, err := p.Dx()
	if err != nil {
		return series.Spectrum{}, err
	}
	if len(p.Density) != len(p.X) {
		return series.Spectrum{}, fmt.Errorf("%w: density length (%d) does not match grid length (%d)",
			ErrDegenerateProfile, len(p.Density), len(p.X))
	}
	if cloudSpeed == 0 {
		return series.Spectrum{}, fmt.Errorf("%w: cloud speed must be non-zero", ErrDegenerateProfile)
	}
	mass := floats.Sum(p.Density)
	if mass == 0 {
		return series.Spectrum{}, fmt.Errorf("%w: profile has zero total mass (all site centers outside the domain?)",
			ErrDegenerateProfile)
	}

	b.logger.Debug("building CAM filter", logging.Fields{
		"cells":       len(p.Density),
		"cloud_speed": cloudSpeed,
	})

	normalized := make([]float64, len(p.Density))
	for i, d := range p.Density {
		normalized[i] = d / mass
	}

	camfilt := fft.FFTReal(normalized)
	spatialDt := dx / math.Abs(cloudSpeed)
	camfreq := series.FFTFreq(len(normalized), spatialDt)

	tDelay := floats.Min(p.X) / cloudSpeed
	if cloudSpeed > 0 {
		for i := range camfilt {
			camfilt[i] *= cmplx.Exp(complex(0, 2*math.Pi*camfreq[i]*tDelay))
		}
	} else {
		for i := range camfilt {
			camfilt[i] = cmplx.Conj(camfilt[i] * cmplx.Exp(complex(0, 2*math.Pi*camfreq[i]*-tDelay)))
		}
	}

	return series.Spectrum{Freqs: camfreq, Values: camfilt}, nil
}

// FromLayout computes the CAM filter for a plant described by a site layout:
// the sites are projected onto the cloud motion axis relative to the
// reference site, a profile is synthesized with the given layout config, and
// the profile is converted with FromProfile. Geographic layouts should be
// converted with spatial.LatLonToUTM first.
func (b *CAMBuilder) FromLayout(layout spatial.Layout, motion CloudMotion, cfg *LayoutConfig) (series.Spectrum, error) {
	vecs, err := layout.Vectors()
	if err != nil {
		return series.Spectrum{}, err
	}
	dists, err := spatial.Project(vecs, motion.Direction)
	if err != nil {
		return series.Spectrum{}, err
	}

	// Deterministic center order; square/triangle overlaps resolve
	// last-writer-wins, so the order must not depend on map iteration.
	ids := layout.SiteIDs()
	centers := make([]float64, 0, len(ids))
	for _, id := range ids {
		centers = append(centers, dists[id])
	}

	profile, err := b.synth.Synthesize(centers, 0, cfg)
	if err != nil {
		return series.Spectrum{}, err
	}
	return b.FromProfile(profile, motion.Speed)
}

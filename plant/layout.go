// Package plant synthesizes one-dimensional plant generation profiles from
// site layouts and turns them into frequency-domain smoothing filters: the
// Cloud Advection Model built from the spatial footprint and a cloud motion
// vector, and the closed-form Marcos model parameterized by plant area.
package plant

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/solar-sonar/logging"
	"github.com/RyanBlaney/solar-sonar/series"
)

// ErrUnsupportedShape reports a footprint shape tag outside the supported
// enumeration.
var ErrUnsupportedShape = errors.New("unsupported footprint shape")

// ErrDegenerateProfile reports a plant profile with no mass or too few grid
// cells to transform.
var ErrDegenerateProfile = errors.New("degenerate plant profile")

// Shape is the footprint placed at each site center.
type Shape string

const (
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeGaussian Shape = "gaussian"
)

// LayoutConfig parameterizes the synthesized spatial grid and the footprint
// placed at each site.
type LayoutConfig struct {
	Width float64 // footprint width; 0 means use Dx
	Shape Shape
	Dx    float64 // spatial step of the grid
	Xmax  float64 // full extent of the spatial domain, centered on zero
}

// DefaultLayoutConfig returns the defaults: square footprints one grid step
// wide on a 500 km domain with 1 m resolution.
func DefaultLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		Width: 0,
		Shape: ShapeSquare,
		Dx:    1,
		Xmax:  500000,
	}
}

// Profile is a one-dimensional generation-density profile along the
// projection axis. X is strictly increasing with uniform step.
type Profile struct {
	Density []float64
	X       []float64
}

// Dx returns the spatial step derived from the first two grid positions.
func (p *Profile) Dx() (float64, error) {
	if len(p.X) < 2 {
		return 0, fmt.Errorf("%w: profile needs at least 2 grid cells, got %d", ErrDegenerateProfile, len(p.X))
	}
	return p.X[1] - p.X[0], nil
}

// Synthesizer builds plant profiles from projected site centers.
type Synthesizer struct {
	logger logging.Logger
}

// NewSynthesizer creates a new plant layout synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		logger: logging.WithFields(logging.Fields{
			"component": "plant_synthesizer",
		}),
	}
}

// Synthesize places a footprint at each site center and returns the
// resulting density profile. refCenter becomes the zero of the x axis.
//
// Square and triangle footprints overwrite the span they cover, so
// overlapping sites resolve last-writer-wins; gaussian footprints accumulate
// additively. This asymmetry is deliberate and preserved from the validated
// model.
func (s *Synthesizer) Synthesize(centers []float64, refCenter float64, cfg *LayoutConfig) (*Profile, error) {
	if cfg == nil {
		cfg = DefaultLayoutConfig()
	}
	w := cfg.Width
	if w == 0 {
		w = cfg.Dx
	}

	x := series.Arange(-cfg.Xmax/2, cfg.Xmax/2, cfg.Dx)
	density := make([]float64, len(x))

	s.logger.Debug("synthesizing plant profile", logging.Fields{
		"sites": len(centers),
		"shape": cfg.Shape,
		"cells": len(x),
	})

	for _, c := range centers {
		center := c - refCenter
		switch cfg.Shape {
		case ShapeSquare:
			for i, xi := range x {
				if xi >= center-w/2 && xi < center+w/2 {
					density[i] = 1
				}
			}
		case ShapeTriangle:
			// Asymmetric linear ramp from 0 to w across the span.
			for i, xi := range x {
				if xi >= center-w/2 && xi < center+w/2 {
					density[i] = xi - center + w/2
				}
			}
		case ShapeGaussian:
			// FWHM of w; overlapping sites sum.
			sigma := w / 2.355
			for i, xi := range x {
				d := xi - center
				density[i] += math.Exp(-d * d / (2 * sigma * sigma))
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedShape, cfg.Shape)
		}
	}

	return &Profile{Density: density, X: x}, nil
}

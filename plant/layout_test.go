package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleSiteSquareFootprint(t *testing.T) {
	cfg := &LayoutConfig{Width: 10, Shape: ShapeSquare, Dx: 1, Xmax: 100}

	profile, err := NewSynthesizer().Synthesize([]float64{0}, 0, cfg)
	require.NoError(t, err)

	require.Len(t, profile.X, 100)
	assert.Equal(t, -50.0, profile.X[0])
	assert.Equal(t, 49.0, profile.X[99])

	for i, x := range profile.X {
		if x >= -5 && x < 5 {
			assert.Equal(t, 1.0, profile.Density[i], "x=%g", x)
		} else {
			assert.Equal(t, 0.0, profile.Density[i], "x=%g", x)
		}
	}
}

func TestTriangleFootprintIsAsymmetricRamp(t *testing.T) {
	cfg := &LayoutConfig{Width: 10, Shape: ShapeTriangle, Dx: 1, Xmax: 100}

	profile, err := NewSynthesizer().Synthesize([]float64{0}, 0, cfg)
	require.NoError(t, err)

	// Ramp from 0 at x=-w/2 up to w-dx at the last covered cell.
	for i, x := range profile.X {
		if x >= -5 && x < 5 {
			assert.InDelta(t, x+5, profile.Density[i], 1e-12, "x=%g", x)
		} else {
			assert.Equal(t, 0.0, profile.Density[i], "x=%g", x)
		}
	}
}

func TestSquareOverwritesGaussianAccumulates(t *testing.T) {
	synth := NewSynthesizer()

	// Two coincident sites: square footprints overwrite (last writer
	// wins), so the density stays 1.
	sq, err := synth.Synthesize([]float64{0, 0}, 0, &LayoutConfig{Width: 10, Shape: ShapeSquare, Dx: 1, Xmax: 100})
	require.NoError(t, err)
	assert.Equal(t, 1.0, sq.Density[50])

	// Gaussian footprints sum, so the peak doubles.
	ga, err := synth.Synthesize([]float64{0, 0}, 0, &LayoutConfig{Width: 10, Shape: ShapeGaussian, Dx: 1, Xmax: 100})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, ga.Density[50], 1e-9)
}

func TestRefCenterShiftsOrigin(t *testing.T) {
	cfg := &LayoutConfig{Width: 2, Shape: ShapeSquare, Dx: 1, Xmax: 100}

	profile, err := NewSynthesizer().Synthesize([]float64{20}, 20, cfg)
	require.NoError(t, err)

	// Site re-centers onto the origin.
	assert.Equal(t, 1.0, profile.Density[49]) // x = -1
	assert.Equal(t, 1.0, profile.Density[50]) // x = 0
	assert.Equal(t, 0.0, profile.Density[51]) // x = 1
}

func TestWidthDefaultsToDx(t *testing.T) {
	cfg := &LayoutConfig{Shape: ShapeSquare, Dx: 2, Xmax: 100}

	profile, err := NewSynthesizer().Synthesize([]float64{0}, 0, cfg)
	require.NoError(t, err)

	covered := 0
	for _, d := range profile.Density {
		if d != 0 {
			covered++
		}
	}
	assert.Equal(t, 1, covered, "width=dx covers exactly one grid cell")
}

func TestUnsupportedShape(t *testing.T) {
	cfg := &LayoutConfig{Shape: "hexagon", Dx: 1, Xmax: 100}

	_, err := NewSynthesizer().Synthesize([]float64{0}, 0, cfg)
	require.ErrorIs(t, err, ErrUnsupportedShape)
}

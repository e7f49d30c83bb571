package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorsRelativeToReference(t *testing.T) {
	layout := Layout{
		Positions: map[string]Position{
			"ref":   {E: 100, N: 200},
			"east":  {E: 150, N: 200},
			"north": {E: 100, N: 260},
		},
		Ref: "ref",
	}

	vecs, err := layout.Vectors()
	require.NoError(t, err)

	assert.Equal(t, Vector{}, vecs["ref"])
	assert.Equal(t, Vector{Dx: 50, Dy: 0}, vecs["east"])
	assert.Equal(t, Vector{Dx: 0, Dy: 60}, vecs["north"])
}

func TestVectorsUnknownReference(t *testing.T) {
	layout := Layout{
		Positions: map[string]Position{"a": {}},
		Ref:       "zz",
	}

	_, err := layout.Vectors()
	require.ErrorIs(t, err, ErrUnknownSite)
}

func TestProjectNormalizesDirection(t *testing.T) {
	vecs := map[string]Vector{
		"a": {Dx: 30, Dy: 40},
		"b": {Dx: -10, Dy: 0},
	}

	// Direction length must not matter.
	short, err := Project(vecs, Vector{Dx: 1, Dy: 0})
	require.NoError(t, err)
	long, err := Project(vecs, Vector{Dx: 250, Dy: 0})
	require.NoError(t, err)

	assert.InDelta(t, 30, short["a"], 1e-12)
	assert.InDelta(t, -10, short["b"], 1e-12)
	assert.InDelta(t, short["a"], long["a"], 1e-12)

	diag, err := Project(vecs, Vector{Dx: 3, Dy: 4})
	require.NoError(t, err)
	assert.InDelta(t, (30*3+40*4)/5.0, diag["a"], 1e-12)
}

func TestProjectZeroDirection(t *testing.T) {
	_, err := Project(map[string]Vector{"a": {}}, Vector{})
	assert.Error(t, err)
}

func TestSiteIDsSorted(t *testing.T) {
	layout := Layout{
		Positions: map[string]Position{"c": {}, "a": {}, "b": {}},
		Ref:       "a",
	}
	assert.Equal(t, []string{"a", "b", "c"}, layout.SiteIDs())
}

func TestLatLonToUTM(t *testing.T) {
	coords := map[string]LatLon{
		"south": {Lat: 40.00, Lon: -105.25},
		"north": {Lat: 40.01, Lon: -105.25},
	}

	positions, err := LatLonToUTM(coords)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	// 0.01° of latitude is roughly 1.11 km of northing on the same
	// meridian.
	dn := positions["north"].N - positions["south"].N
	assert.InDelta(t, 1110, dn, 10)
	assert.InDelta(t, 0, positions["north"].E-positions["south"].E, 5)
	assert.False(t, math.IsNaN(positions["south"].E))
}

func TestLatLonToUTMInvalid(t *testing.T) {
	_, err := LatLonToUTM(map[string]LatLon{"bad": {Lat: 95, Lon: 0}})
	assert.Error(t, err)
}

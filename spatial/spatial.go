// Package spatial provides the planar geometry the cloud advection model
// needs: geographic to UTM conversion, displacement vectors relative to a
// reference site, and projection of those vectors onto a cloud motion
// direction.
package spatial

import (
	"errors"
	"fmt"
	"math"
	"sort"

	utm "github.com/im7mortal/UTM"
)

// ErrUnknownSite reports a reference site identifier absent from a layout.
var ErrUnknownSite = errors.New("unknown site identifier")

// Position is a planar east/north coordinate pair in meters.
type Position struct {
	E, N float64
}

// LatLon is a geographic coordinate pair in degrees.
type LatLon struct {
	Lat, Lon float64
}

// Vector is a planar displacement in meters.
type Vector struct {
	Dx, Dy float64
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return math.Hypot(v.Dx, v.Dy)
}

// Unit returns the vector scaled to unit length.
func (v Vector) Unit() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, fmt.Errorf("cannot normalize a zero-length direction vector")
	}
	return Vector{Dx: v.Dx / n, Dy: v.Dy / n}, nil
}

// Layout maps site identifiers to planar positions with a designated
// reference site that serves as the coordinate origin.
type Layout struct {
	Positions map[string]Position
	Ref       string
}

// SiteIDs returns the layout's site identifiers in sorted order so that
// derived center lists are deterministic.
func (l Layout) SiteIDs() []string {
	ids := make([]string, 0, len(l.Positions))
	for id := range l.Positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Vectors computes the displacement of every site relative to the reference
// site, keyed by site identifier.
func (l Layout) Vectors() (map[string]Vector, error) {
	ref, ok := l.Positions[l.Ref]
	if !ok {
		return nil, fmt.Errorf("%w: reference site %q not in layout", ErrUnknownSite, l.Ref)
	}
	vecs := make(map[string]Vector, len(l.Positions))
	for id, pos := range l.Positions {
		vecs[id] = Vector{Dx: pos.E - ref.E, Dy: pos.N - ref.N}
	}
	return vecs, nil
}

// Project projects displacement vectors onto a direction. The direction is
// normalized to a unit vector internally, so its length is irrelevant.
func Project(vecs map[string]Vector, dir Vector) (map[string]float64, error) {
	unit, err := dir.Unit()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(vecs))
	for id, v := range vecs {
		out[id] = v.Dx*unit.Dx + v.Dy*unit.Dy
	}
	return out, nil
}

// LatLonToUTM converts geographic site coordinates to planar UTM positions.
// Sites are assumed to lie close enough together that per-site zone
// selection yields a consistent planar frame.
func LatLonToUTM(coords map[string]LatLon) (map[string]Position, error) {
	out := make(map[string]Position, len(coords))
	for id, c := range coords {
		easting, northing, _, _, err := utm.FromLatLon(c.Lat, c.Lon, c.Lat >= 0)
		if err != nil {
			return nil, fmt.Errorf("converting site %q to UTM: %w", id, err)
		}
		out[id] = Position{E: easting, N: northing}
	}
	return out, nil
}

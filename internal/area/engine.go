// Package area computes the surface area of polygonal regions on an ellipsoid.
//
// Ring areas come from the geodesic package; this package validates rings,
// composes exterior rings with their holes, sums multipolygons and converts
// the result to square kilometers.
package area

import (
	"errors"
	"fmt"
	"math"

	"github.com/UnknownOlympus/geoarea/internal/geodesic"
	"github.com/UnknownOlympus/geoarea/internal/models"
	"github.com/samber/lo"
)

// Errors returned by the engine. All of them abort the computation.
var (
	ErrMissingInput        = errors.New("no geometry supplied")
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
	ErrDegenerateRing      = errors.New("ring has fewer than 3 distinct vertices")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
)

const (
	squareMetersPerKm2 = 1_000_000
	minRingVertices    = 3
)

// Engine computes areas on a fixed ellipsoid. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	ellipsoid *geodesic.Ellipsoid
}

// NewEngine returns an engine bound to the given ellipsoid, or to WGS84 when nil.
func NewEngine(ellipsoid *geodesic.Ellipsoid) *Engine {
	if ellipsoid == nil {
		ellipsoid = geodesic.WGS84
	}

	return &Engine{ellipsoid: ellipsoid}
}

// Default returns an engine on the WGS84 ellipsoid.
func Default() *Engine {
	return NewEngine(nil)
}

// Ellipsoid returns the reference body the engine measures on.
func (en *Engine) Ellipsoid() *geodesic.Ellipsoid {
	return en.ellipsoid
}

// Compute returns the area of a Polygon or MultiPolygon geometry in square
// kilometers, rounded to two decimals.
func (en *Engine) Compute(geometry models.Geometry) (float64, error) {
	m2, err := en.GeometryArea(geometry)
	if err != nil {
		return 0, err
	}

	return RoundKm2(m2), nil
}

// Compute is a shorthand for NewEngine(ellipsoid).Compute(geometry).
func Compute(geometry models.Geometry, ellipsoid *geodesic.Ellipsoid) (float64, error) {
	return NewEngine(ellipsoid).Compute(geometry)
}

// GeometryArea dispatches on the geometry kind and returns the unrounded area in square meters.
func (en *Engine) GeometryArea(geometry models.Geometry) (float64, error) {
	switch geometry.Kind {
	case models.KindPolygon:
		return en.PolygonArea(geometry.Polygon)
	case models.KindMultiPolygon:
		return en.MultiPolygonArea(geometry.MultiPolygon)
	case "":
		return 0, ErrMissingInput
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, geometry.Kind)
	}
}

// RingArea returns the unsigned geodesic area enclosed by the ring in square meters.
// The orientation of the ring does not matter.
func (en *Engine) RingArea(ring models.Ring) (float64, error) {
	ring, err := normalizeRing(ring)
	if err != nil {
		return 0, err
	}

	return math.Abs(geodesic.RingArea(ring, en.ellipsoid)), nil
}

// PolygonArea returns the exterior area minus the area of every hole, in square meters.
// Holes are trusted to lie inside the exterior and not to overlap each other;
// violating that yields a meaningless, possibly negative, value.
func (en *Engine) PolygonArea(polygon models.Polygon) (float64, error) {
	exterior, err := en.RingArea(polygon.Exterior)
	if err != nil {
		return 0, fmt.Errorf("exterior ring: %w", err)
	}

	holes := make([]float64, 0, len(polygon.Holes))
	for i, hole := range polygon.Holes {
		holeArea, errHole := en.RingArea(hole)
		if errHole != nil {
			return 0, fmt.Errorf("hole %d: %w", i, errHole)
		}
		holes = append(holes, holeArea)
	}

	return ComposePolygon(exterior, holes), nil
}

// MultiPolygonArea returns the sum of the member polygon areas in square meters.
// Members are trusted to be disjoint.
func (en *Engine) MultiPolygonArea(multi models.MultiPolygon) (float64, error) {
	if len(multi) == 0 {
		return 0, ErrMissingInput
	}

	var total float64
	for i, polygon := range multi {
		polyArea, err := en.PolygonArea(polygon)
		if err != nil {
			return 0, fmt.Errorf("polygon %d: %w", i, err)
		}
		total += polyArea
	}

	return total, nil
}

// ComposePolygon subtracts the hole areas from the exterior area.
func ComposePolygon(exterior float64, holes []float64) float64 {
	return exterior - lo.Sum(holes)
}

// RoundKm2 converts square meters to square kilometers rounded to two decimals.
func RoundKm2(m2 float64) float64 {
	return math.Round(m2/squareMetersPerKm2*100) / 100
}

// normalizeRing drops an explicit closing vertex, checks the coordinates and
// requires at least three distinct vertices.
func normalizeRing(ring models.Ring) (models.Ring, error) {
	for _, c := range ring {
		if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
			return nil, fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Longitude)
		}
		if !(c.Latitude >= -90 && c.Latitude <= 90) {
			return nil, fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, c.Latitude)
		}
	}

	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}

	if distinct := len(lo.Uniq(ring)); distinct < minRingVertices {
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateRing, distinct)
	}

	return ring, nil
}

package geodesic

import (
	"math"

	"github.com/UnknownOlympus/geoarea/internal/models"
)

// RingArea returns the signed area, in square meters, enclosed by a ring whose
// consecutive vertices are joined by geodesics. The last vertex is joined back
// to the first. Counter-clockwise rings are positive and clockwise rings are
// negative; the result lies in (-TotalArea/2, TotalArea/2], so a ring always
// denotes the smaller of the two regions it separates.
//
// Longitudes may take any finite value; edges crossing the antimeridian and
// rings encircling a pole are handled. The caller must supply at least three
// vertices with latitudes in [-90, 90].
func RingArea(ring models.Ring, e *Ellipsoid) float64 {
	var (
		acc       accumulator
		crossings int
	)

	for i, from := range ring {
		to := ring[(i+1)%len(ring)]
		_, s12 := e.Inverse(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
		acc.add(s12)
		crossings += transit(from.Longitude, to.Longitude)
	}

	return acc.reduce(e.TotalArea(), crossings)
}

// transit reports whether the edge from lon1 to lon2 crosses the prime meridian
// eastward (+1), westward (-1) or not at all.
func transit(lon1, lon2 float64) int {
	lon12, _ := angDiff(lon1, lon2)
	lon1 = angNormalize(lon1)
	lon2 = angNormalize(lon2)

	switch {
	case lon12 > 0 && ((lon1 < 0 && lon2 >= 0) || (lon1 > 0 && lon2 == 0)):
		return 1
	case lon12 < 0 && lon1 >= 0 && lon2 < 0:
		return -1
	default:
		return 0
	}
}

// accumulator is a double-double sum that keeps the edge contributions exact
// enough for rings with many vertices.
type accumulator struct {
	s, t float64
}

func (a *accumulator) add(y float64) {
	z, u := sumx(y, a.t)
	a.s, a.t = sumx(z, a.s)
	if a.s == 0 {
		a.s = u
	} else {
		a.t += u
	}
}

// reduce folds the accumulated edge areas into the signed ring area.
// Edge areas are measured to the equator, so every pole the ring encircles
// adds half the ellipsoid; an odd number of prime meridian crossings flags it.
func (a *accumulator) reduce(area0 float64, crossings int) float64 {
	a.s = math.Remainder(a.s, area0)
	a.add(0)
	if crossings&1 != 0 {
		if a.s < 0 {
			a.add(area0 / 2)
		} else {
			a.add(-area0 / 2)
		}
	}

	// Edge areas are positive for clockwise traversal; flip to counter-clockwise positive.
	a.s, a.t = -a.s, -a.t
	switch {
	case a.s > area0/2:
		a.add(-area0)
	case a.s <= -area0/2:
		a.add(area0)
	}

	return 0 + a.s
}

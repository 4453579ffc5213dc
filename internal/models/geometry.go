package models

// GeometryKind is the GeoJSON type name of a geometry.
type GeometryKind string

// Geometry kinds the area engine understands.
const (
	KindPolygon      GeometryKind = "Polygon"
	KindMultiPolygon GeometryKind = "MultiPolygon"
)

// Ring is an ordered sequence of coordinates forming a closed loop.
// The closing point may or may not repeat the first one.
type Ring []Coordinates

// Reversed returns a copy of the ring with the vertex order inverted.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}

	return out
}

// Polygon is one exterior ring plus zero or more holes nested inside it.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// MultiPolygon is a collection of polygons assumed to be pairwise disjoint.
type MultiPolygon []Polygon

// Geometry is a decoded boundary. Only one of Polygon and MultiPolygon is set,
// according to Kind. Kinds other than Polygon and MultiPolygon carry no payload.
type Geometry struct {
	Kind         GeometryKind
	Polygon      Polygon
	MultiPolygon MultiPolygon
}

// NewPolygonGeometry wraps a polygon into a Geometry.
func NewPolygonGeometry(p Polygon) Geometry {
	return Geometry{Kind: KindPolygon, Polygon: p}
}

// NewMultiPolygonGeometry wraps a multipolygon into a Geometry.
func NewMultiPolygonGeometry(mp MultiPolygon) Geometry {
	return Geometry{Kind: KindMultiPolygon, MultiPolygon: mp}
}

// RingFromPositions builds a ring from GeoJSON positions ([lon, lat]).
func RingFromPositions(positions [][2]float64) Ring {
	ring := make(Ring, 0, len(positions))
	for _, p := range positions {
		ring = append(ring, Coordinates{Longitude: p[0], Latitude: p[1]})
	}

	return ring
}

// PolygonFromPositions builds a polygon from the nested GeoJSON coordinate layout:
// the first ring is the exterior, the remaining rings are holes.
func PolygonFromPositions(rings [][][2]float64) Polygon {
	var poly Polygon
	for i, r := range rings {
		if i == 0 {
			poly.Exterior = RingFromPositions(r)
			continue
		}
		poly.Holes = append(poly.Holes, RingFromPositions(r))
	}

	return poly
}

// Package boundary reads region boundaries from GeoJSON documents and writes
// computed areas back into them.
package boundary

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/geoarea/internal/area"
	"github.com/UnknownOlympus/geoarea/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/samber/lo"
)

// AreaProperty is the feature property the computed area is stored under.
const AreaProperty = "area"

// ErrInvalidDocument is returned when the input is not a GeoJSON document.
var ErrInvalidDocument = errors.New("invalid GeoJSON document")

// Document is a decoded GeoJSON feature collection. Only its first feature
// describes the region.
type Document struct {
	collection *geojson.FeatureCollection
}

// Decode parses a FeatureCollection, a single Feature or a bare geometry.
// Features and geometries are wrapped into a collection.
func Decode(data []byte) (*Document, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode feature collection: %w", ErrInvalidDocument, err)
		}
		return &Document{collection: fc}, nil
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode feature: %w", ErrInvalidDocument, err)
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(feature)
		return &Document{collection: fc}, nil
	case "":
		return nil, fmt.Errorf("%w: missing type member", ErrInvalidDocument)
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode geometry: %w", ErrInvalidDocument, err)
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(geojson.NewFeature(geometry.Geometry()))
		return &Document{collection: fc}, nil
	}
}

// Features returns the number of features in the document.
func (d *Document) Features() int {
	return len(d.collection.Features)
}

// Geometry returns the first feature's geometry in the engine's data model.
// A document without features, or whose first feature has no geometry,
// yields area.ErrMissingInput. Geometry types other than Polygon and
// MultiPolygon are returned with their GeoJSON type name and no payload.
func (d *Document) Geometry() (models.Geometry, error) {
	if len(d.collection.Features) == 0 {
		return models.Geometry{}, fmt.Errorf("%w: no features found in GeoJSON", area.ErrMissingInput)
	}

	switch g := d.collection.Features[0].Geometry.(type) {
	case nil:
		return models.Geometry{}, fmt.Errorf("%w: first feature has no geometry", area.ErrMissingInput)
	case orb.Polygon:
		return models.NewPolygonGeometry(fromOrbPolygon(g)), nil
	case orb.MultiPolygon:
		return models.NewMultiPolygonGeometry(lo.Map(g, func(p orb.Polygon, _ int) models.Polygon {
			return fromOrbPolygon(p)
		})), nil
	default:
		return models.Geometry{Kind: models.GeometryKind(g.GeoJSONType())}, nil
	}
}

// SetArea stores the area, in square kilometers, in the first feature's properties.
func (d *Document) SetArea(km2 float64) error {
	if len(d.collection.Features) == 0 {
		return fmt.Errorf("%w: no features found in GeoJSON", area.ErrMissingInput)
	}

	feature := d.collection.Features[0]
	if feature.Properties == nil {
		feature.Properties = geojson.Properties{}
	}
	feature.Properties[AreaProperty] = km2

	return nil
}

// Area returns the area previously stored in the first feature, if any.
func (d *Document) Area() (float64, bool) {
	if len(d.collection.Features) == 0 {
		return 0, false
	}
	v, ok := d.collection.Features[0].Properties[AreaProperty].(float64)

	return v, ok
}

// Encode serializes the document as a GeoJSON feature collection.
func (d *Document) Encode() ([]byte, error) {
	data, err := d.collection.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode feature collection: %w", err)
	}

	return data, nil
}

// Measure decodes a document, computes the area of its first feature with the
// engine and records it in the feature's properties.
func Measure(engine *area.Engine, data []byte) (float64, *Document, error) {
	doc, err := Decode(data)
	if err != nil {
		return 0, nil, err
	}

	geometry, err := doc.Geometry()
	if err != nil {
		return 0, nil, err
	}

	km2, err := engine.Compute(geometry)
	if err != nil {
		return 0, nil, err
	}

	if err = doc.SetArea(km2); err != nil {
		return 0, nil, err
	}

	return km2, doc, nil
}

func fromOrbPolygon(p orb.Polygon) models.Polygon {
	rings := lo.Map(p, func(r orb.Ring, _ int) [][2]float64 {
		return lo.Map(r, func(pt orb.Point, _ int) [2]float64 { return pt })
	})

	return models.PolygonFromPositions(rings)
}

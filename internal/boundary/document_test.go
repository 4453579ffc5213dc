package boundary_test

import (
	"encoding/json"
	"testing"

	"github.com/UnknownOlympus/geoarea/internal/area"
	"github.com/UnknownOlympus/geoarea/internal/boundary"
	"github.com/UnknownOlympus/geoarea/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Square"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Ignored"},
      "geometry": {"type": "Point", "coordinates": [5, 5]}
    }
  ]
}`

const holedFeature = `{
  "type": "Feature",
  "geometry": {
    "type": "Polygon",
    "coordinates": [
      [[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]],
      [[0.25, 0.25], [0.75, 0.25], [0.75, 0.75], [0.25, 0.75], [0.25, 0.25]]
    ]
  }
}`

const multiGeometry = `{
  "type": "MultiPolygon",
  "coordinates": [
    [[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]]],
    [[[10, 10], [11, 10], [11, 11], [10, 11], [10, 10]]]
  ]
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("success - feature collection", func(t *testing.T) {
		t.Parallel()
		doc, err := boundary.Decode([]byte(squareCollection))
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Features())

		geometry, err := doc.Geometry()
		require.NoError(t, err)
		assert.Equal(t, models.KindPolygon, geometry.Kind)
		assert.Len(t, geometry.Polygon.Exterior, 5)
		assert.Empty(t, geometry.Polygon.Holes)
		assert.Equal(t, models.Coordinates{Longitude: 1, Latitude: 0}, geometry.Polygon.Exterior[1])
	})

	t.Run("success - single feature with a hole", func(t *testing.T) {
		t.Parallel()
		doc, err := boundary.Decode([]byte(holedFeature))
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Features())

		geometry, err := doc.Geometry()
		require.NoError(t, err)
		assert.Equal(t, models.KindPolygon, geometry.Kind)
		assert.Len(t, geometry.Polygon.Holes, 1)
	})

	t.Run("success - bare multipolygon geometry", func(t *testing.T) {
		t.Parallel()
		doc, err := boundary.Decode([]byte(multiGeometry))
		require.NoError(t, err)

		geometry, err := doc.Geometry()
		require.NoError(t, err)
		assert.Equal(t, models.KindMultiPolygon, geometry.Kind)
		assert.Len(t, geometry.MultiPolygon, 2)
	})

	t.Run("error - not json", func(t *testing.T) {
		t.Parallel()
		_, err := boundary.Decode([]byte("not json"))

		require.ErrorIs(t, err, boundary.ErrInvalidDocument)
	})

	t.Run("error - missing type", func(t *testing.T) {
		t.Parallel()
		_, err := boundary.Decode([]byte(`{"features": []}`))

		require.ErrorIs(t, err, boundary.ErrInvalidDocument)
	})
}

func TestDocument_Geometry(t *testing.T) {
	t.Parallel()

	t.Run("error - no features", func(t *testing.T) {
		t.Parallel()
		doc, err := boundary.Decode([]byte(`{"type": "FeatureCollection", "features": []}`))
		require.NoError(t, err)

		_, err = doc.Geometry()
		require.ErrorIs(t, err, area.ErrMissingInput)
	})

	t.Run("success - unsupported types keep their name", func(t *testing.T) {
		t.Parallel()
		doc, err := boundary.Decode([]byte(`{"type": "LineString", "coordinates": [[0, 0], [1, 1]]}`))
		require.NoError(t, err)

		geometry, err := doc.Geometry()
		require.NoError(t, err)
		assert.Equal(t, models.GeometryKind("LineString"), geometry.Kind)
	})
}

func TestMeasure(t *testing.T) {
	t.Parallel()
	engine := area.Default()

	t.Run("success - area written to the first feature", func(t *testing.T) {
		t.Parallel()
		km2, doc, err := boundary.Measure(engine, []byte(squareCollection))
		require.NoError(t, err)
		assert.InDelta(t, 12308.78, km2, 1e-9)

		stored, ok := doc.Area()
		require.True(t, ok)
		assert.InDelta(t, km2, stored, 0)

		data, err := doc.Encode()
		require.NoError(t, err)

		var out struct {
			Type     string `json:"type"`
			Features []struct {
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "FeatureCollection", out.Type)
		require.Len(t, out.Features, 2)
		assert.InDelta(t, 12308.78, out.Features[0].Properties["area"], 1e-9)
		assert.Equal(t, "Square", out.Features[0].Properties["name"])
		assert.NotContains(t, out.Features[1].Properties, "area")
	})

	t.Run("success - feature without properties", func(t *testing.T) {
		t.Parallel()
		km2, doc, err := boundary.Measure(engine, []byte(holedFeature))
		require.NoError(t, err)
		assert.InDelta(t, 9231.61, km2, 1e-9)

		stored, ok := doc.Area()
		require.True(t, ok)
		assert.InDelta(t, 9231.61, stored, 1e-9)
	})

	t.Run("success - multipolygon", func(t *testing.T) {
		t.Parallel()
		km2, _, err := boundary.Measure(engine, []byte(multiGeometry))
		require.NoError(t, err)
		assert.InDelta(t, 24417.25, km2, 1e-9)
	})

	t.Run("error - unsupported geometry", func(t *testing.T) {
		t.Parallel()
		_, doc, err := boundary.Measure(engine, []byte(`{"type": "Point", "coordinates": [1, 2]}`))

		require.ErrorIs(t, err, area.ErrUnsupportedGeometry)
		assert.Contains(t, err.Error(), "Point")
		assert.Nil(t, doc)
	})

	t.Run("error - degenerate ring", func(t *testing.T) {
		t.Parallel()
		data := `{"type": "Polygon", "coordinates": [[[0, 0], [1, 1], [0, 0]]]}`
		_, _, err := boundary.Measure(engine, []byte(data))

		require.ErrorIs(t, err, area.ErrDegenerateRing)
	})

	t.Run("error - invalid document", func(t *testing.T) {
		t.Parallel()
		_, _, err := boundary.Measure(engine, []byte(`[1, 2, 3]`))

		require.ErrorIs(t, err, boundary.ErrInvalidDocument)
	})
}

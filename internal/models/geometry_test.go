package models_test

import (
	"testing"

	"github.com/UnknownOlympus/geoarea/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPolygonFromPositions(t *testing.T) {
	poly := models.PolygonFromPositions([][][2]float64{
		{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		{{0.2, 0.2}, {0.4, 0.2}, {0.4, 0.4}, {0.2, 0.2}},
	})

	assert.Len(t, poly.Exterior, 4)
	assert.Equal(t, models.Coordinates{Longitude: 1, Latitude: 0}, poly.Exterior[1])
	assert.Len(t, poly.Holes, 1)
	assert.Equal(t, models.Coordinates{Longitude: 0.4, Latitude: 0.2}, poly.Holes[0][1])

	assert.Equal(t, models.Polygon{}, models.PolygonFromPositions(nil))
}

func TestRing_Reversed(t *testing.T) {
	ring := models.RingFromPositions([][2]float64{{0, 0}, {1, 0}, {1, 1}})
	reversed := ring.Reversed()

	assert.Equal(t, models.RingFromPositions([][2]float64{{1, 1}, {1, 0}, {0, 0}}), reversed)
	assert.Equal(t, models.Coordinates{Longitude: 0, Latitude: 0}, ring[0], "original ring must not change")
}

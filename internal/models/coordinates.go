package models

// Coordinates represents a geographical point defined by its longitude and latitude in decimal degrees.
type Coordinates struct {
	Longitude float64 // Longitude of the geographical point, any finite value.
	Latitude  float64 // Latitude of the geographical point, within [-90, 90].
}

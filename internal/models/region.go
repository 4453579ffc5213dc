package models

// RegionTask represents a catalogued region whose area has not been measured yet.
type RegionTask struct {
	Code     string // Code is the unique identifier of the region (e.g. an ISO 3166-1 alpha-2 code).
	Name     string // Name is the human readable region name.
	Boundary []byte // Boundary is the raw GeoJSON document describing the region.
}

package models

import "github.com/paulmach/orb"

// Summary holds the counters of the quick coordinate check.
type Summary struct {
	Total             int
	WithCoords        int
	WithoutCoords     int
	Invalid           int
	OutOfBounds       int
	DuplicateSets     int
	MissingByDistrict []DistrictPlaces
	InvalidPlaces     []Place
	OutOfBoundsPlaces []Place
	Duplicates        []DuplicateGroup
}

// DistrictPlaces lists places of a single district.
type DistrictPlaces struct {
	DistrictID string
	Places     []Place
}

// QuickAudit bundles what the quick check report needs.
type QuickAudit struct {
	Files   int
	Summary Summary
	Bounds  orb.Bound
}

package models

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// Placeholder is used for place fields that are absent from the source file.
const Placeholder = "N/A"

// Place is a flattened, read-only view of one place along with its district context.
type Place struct {
	File           string
	DistrictID     string
	DistrictCenter orb.Point
	HasCenter      bool
	Category       string
	ID             string
	Name           string
	Address        string
	RawCoordinates json.RawMessage
	Point          orb.Point
	Valid          bool
}

// Lat returns the latitude of a place with valid coordinates.
func (p Place) Lat() float64 { return p.Point.Lat() }

// Lon returns the longitude of a place with valid coordinates.
func (p Place) Lon() float64 { return p.Point.Lon() }

// CoordinatesText renders the coordinates as they were found in the source file.
func (p Place) CoordinatesText() string {
	if len(p.RawCoordinates) == 0 {
		return "absent"
	}
	return string(p.RawCoordinates)
}

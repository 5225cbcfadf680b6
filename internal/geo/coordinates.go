// Package geo holds the coordinate rules shared by every report: parsing, canonical keys,
// the city bounding box and global validity.
package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DefaultPrecision is the number of decimal digits used for coordinate keys.
const DefaultPrecision = 6

// Paris bounding box defaults.
const (
	DefaultLatMin = 48.815
	DefaultLatMax = 48.902
	DefaultLonMin = 2.224
	DefaultLonMax = 2.469
)

// Parse decodes a [lat, lon] pair. It reports false for anything that is not exactly two
// numeric components. Numeric strings are coerced. NaN and Inf spelled as words are rejected,
// while a number too large for float64 becomes ±Inf.
func Parse(raw json.RawMessage) (orb.Point, bool) {
	if !IsPresent(raw) {
		return orb.Point{}, false
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil || len(parts) != 2 {
		return orb.Point{}, false
	}

	lat, ok := component(parts[0])
	if !ok {
		return orb.Point{}, false
	}
	lon, ok := component(parts[1])
	if !ok {
		return orb.Point{}, false
	}

	return orb.Point{lon, lat}, true
}

func component(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		return 0, false
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range literals such as 1e400 are well formed and come back as ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsPresent reports whether a coordinates value carries anything at all. Empty arrays,
// empty strings, null, zero and false count as absent.
func IsPresent(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "[]", "{}", `""`, "0", "false":
		return false
	}
	return true
}

// Key canonicalizes a point into "lat,lon" with both components rounded to precision digits.
// Two points that round to the same digits share a key.
func Key(p orb.Point, precision int) string {
	return formatComponent(p.Lat(), precision) + "," + formatComponent(p.Lon(), precision)
}

func formatComponent(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	// -0.000000 and 0.000000 must collapse to one key.
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// NewBound builds the city rectangle. orb points are [lon, lat].
func NewBound(latMin, latMax, lonMin, lonMax float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{lonMin, latMin},
		Max: orb.Point{lonMax, latMax},
	}
}

// DefaultBound is the Paris rectangle.
func DefaultBound() orb.Bound {
	return NewBound(DefaultLatMin, DefaultLatMax, DefaultLonMin, DefaultLonMax)
}

// InBound reports whether p lies inside b, edges included.
func InBound(b orb.Bound, p orb.Point) bool {
	return b.Contains(p)
}

// IsSuspicious flags the null island point and components outside the valid WGS84 ranges.
func IsSuspicious(p orb.Point) bool {
	lat, lon := p.Lat(), p.Lon()
	if lat == 0 && lon == 0 {
		return true
	}
	return math.Abs(lat) > 90 || math.Abs(lon) > 180
}

// Distance returns the great-circle distance in meters.
func Distance(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b)
}

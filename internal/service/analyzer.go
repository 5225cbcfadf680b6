package service

import (
	"strings"

	"paris-coordcheck/internal/geo"
	"paris-coordcheck/internal/models"

	"github.com/paulmach/orb"
)

// Analyzer classifies flattened places against a bounding box and groups shared coordinates.
type Analyzer struct {
	bound     orb.Bound
	precision int
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(bound orb.Bound, precision int) *Analyzer {
	return &Analyzer{bound: bound, precision: precision}
}

// Bound returns the rectangle places are checked against.
func (a *Analyzer) Bound() orb.Bound {
	return a.bound
}

// Key returns the coordinate key of p at the analyzer's precision.
func (a *Analyzer) Key(p orb.Point) string {
	return geo.Key(p, a.precision)
}

// Analyze runs one classification pass followed by one grouping pass.
// A place without usable coordinates only ever lands in Missing.
func (a *Analyzer) Analyze(places []models.Place) *models.Classification {
	result := &models.Classification{
		Duplicates: make(map[string][]models.Place),
		Total:      len(places),
	}

	groups := make(map[string][]models.Place)
	for _, place := range places {
		if !place.Valid {
			result.Missing = append(result.Missing, place)
			continue
		}

		if geo.IsSuspicious(place.Point) {
			result.Suspicious = append(result.Suspicious, place)
		}
		if !geo.InBound(a.bound, place.Point) {
			result.OutOfBounds = append(result.OutOfBounds, place)
		}

		key := a.Key(place.Point)
		groups[key] = append(groups[key], place)
	}

	for key, group := range groups {
		if len(group) > 1 {
			result.Duplicates[key] = group
		}
	}

	return result
}

// CenterCoincidences returns the duplicate groups whose key matches the center of one of their
// members' districts, in SortedDuplicates order. Members without a center are skipped.
func (a *Analyzer) CenterCoincidences(result *models.Classification) []models.CenterCoincidence {
	var out []models.CenterCoincidence

	for _, group := range result.SortedDuplicates() {
		for _, place := range group.Places {
			if !place.HasCenter {
				continue
			}
			if a.Key(place.DistrictCenter) == group.Key {
				out = append(out, models.CenterCoincidence{
					Key:    group.Key,
					Center: place.DistrictCenter,
					Places: group.Places,
				})
				break
			}
		}
	}

	return out
}

// FindByName reports every place whose name contains one of targets, case-insensitively.
// A place matching several targets is reported once, in place order, so the number of
// matches counts places rather than place and target pairs.
func FindByName(places []models.Place, targets []string) []models.LookupMatch {
	needles := make([]string, 0, len(targets))
	for _, target := range targets {
		if target = strings.ToLower(strings.TrimSpace(target)); target != "" {
			needles = append(needles, target)
		}
	}

	var matches []models.LookupMatch
	for _, place := range places {
		name := strings.ToLower(place.Name)
		for _, needle := range needles {
			if !strings.Contains(name, needle) {
				continue
			}

			match := models.LookupMatch{Place: place}
			if place.Valid && place.HasCenter {
				match.SameAsCenter = place.Point.Equal(place.DistrictCenter)
				match.DistanceMeters = geo.Distance(place.Point, place.DistrictCenter)
				match.HasDistance = true
			}
			matches = append(matches, match)
			break
		}
	}

	return matches
}

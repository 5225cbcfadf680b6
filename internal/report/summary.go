package report

import (
	"fmt"
	"strings"

	"paris-coordcheck/internal/models"
)

const (
	topDuplicates      = 10
	duplicateExamples  = 3
	missingPerDistrict = 5
)

// WriteSummary renders the quick coordinate check.
func (w *Writer) WriteSummary(quick *models.QuickAudit) error {
	var p page
	s := quick.Summary

	p.line("%s", w.heading.Render(fmt.Sprintf("COORDINATE CHECK (%d files)", quick.Files)))
	p.line("%s", strings.Repeat("=", 50))
	p.line("Total places: %d", s.Total)
	p.line("With coordinates: %d (%.1f%%)", s.WithCoords, percent(s.WithCoords, s.Total))
	p.line("Without coordinates: %d (%.1f%%)", s.WithoutCoords, percent(s.WithoutCoords, s.Total))
	p.line("Invalid coordinates: %d", s.Invalid)
	p.line("Outside bounds: %d", s.OutOfBounds)
	p.line("Duplicate coordinate sets: %d", s.DuplicateSets)

	if len(s.Duplicates) > 0 {
		p.line("")
		p.line("%s", w.heading.Render(fmt.Sprintf("DUPLICATE COORDINATES (top %d)", topDuplicates)))
		p.line("%s", strings.Repeat("-", 40))
		groups := s.Duplicates
		if len(groups) > topDuplicates {
			groups = groups[:topDuplicates]
		}
		for _, group := range groups {
			p.line("%s: %d places", keyText(group.Key), len(group.Places))
			writeNames(&p, group.Places, duplicateExamples)
			p.line("")
		}
	}

	if len(s.MissingByDistrict) > 0 {
		p.line("")
		p.line("%s", w.heading.Render("MISSING COORDINATES BY DISTRICT"))
		p.line("%s", strings.Repeat("-", 45))
		for _, district := range s.MissingByDistrict {
			p.line("%s: %d places", district.DistrictID, len(district.Places))
			writeNames(&p, district.Places, missingPerDistrict)
			p.line("")
		}
	}

	if len(s.OutOfBoundsPlaces) > 0 {
		p.line("")
		p.line("%s", w.heading.Render("OUTSIDE BOUNDS"))
		p.line("%s", strings.Repeat("-", 30))
		p.line("Bounds: %s", boundText(quick.Bounds))
		for _, place := range s.OutOfBoundsPlaces {
			p.line("%s (%s): %s", place.Name, place.DistrictID, pointText(place.Point))
		}
	}

	if len(s.InvalidPlaces) > 0 {
		p.line("")
		p.line("%s", w.heading.Render("INVALID COORDINATES"))
		p.line("%s", strings.Repeat("-", 25))
		for _, place := range s.InvalidPlaces {
			p.line("%s (%s): %s", place.Name, place.DistrictID, place.CoordinatesText())
		}
	}

	p.line("")
	p.line("%s", w.heading.Render("RECOMMENDATIONS"))
	p.line("%s", strings.Repeat("-", 20))
	recommendations := 0
	if s.WithoutCoords > 0 {
		p.line("- Add coordinates for %d places", s.WithoutCoords)
		recommendations++
	}
	if s.DuplicateSets > 0 {
		p.line("- Fix %d sets of duplicated coordinates", s.DuplicateSets)
		recommendations++
	}
	if s.OutOfBounds > 0 {
		p.line("- Check %d places with coordinates outside bounds", s.OutOfBounds)
		recommendations++
	}
	if s.Invalid > 0 {
		p.line("- Fix %d invalid coordinates", s.Invalid)
		recommendations++
	}
	if recommendations == 0 {
		p.line("- Nothing to fix")
	}

	return w.flush(&p)
}

func writeNames(p *page, places []models.Place, limit int) {
	for i, place := range places {
		if i == limit {
			p.line("  ... and %d more", len(places)-limit)
			break
		}
		p.line("  - %s (%s)", place.Name, place.DistrictID)
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

package service

import (
	"sort"

	"paris-coordcheck/internal/geo"
	"paris-coordcheck/internal/models"
)

// Summarize derives the quick check counters from a classification. Missing places are split
// into those with no coordinates at all and those with a present but unusable value.
func Summarize(places []models.Place, result *models.Classification) models.Summary {
	summary := models.Summary{
		Total:             result.Total,
		OutOfBounds:       len(result.OutOfBounds),
		OutOfBoundsPlaces: result.OutOfBounds,
		DuplicateSets:     len(result.Duplicates),
		Duplicates:        result.SortedDuplicates(),
	}

	byDistrict := make(map[string][]models.Place)
	for _, place := range places {
		if !geo.IsPresent(place.RawCoordinates) {
			summary.WithoutCoords++
			byDistrict[place.DistrictID] = append(byDistrict[place.DistrictID], place)
			continue
		}

		summary.WithCoords++
		if !place.Valid {
			summary.Invalid++
			summary.InvalidPlaces = append(summary.InvalidPlaces, place)
		}
	}

	for id, missing := range byDistrict {
		summary.MissingByDistrict = append(summary.MissingByDistrict, models.DistrictPlaces{DistrictID: id, Places: missing})
	}
	sort.Slice(summary.MissingByDistrict, func(i, j int) bool {
		return summary.MissingByDistrict[i].DistrictID < summary.MissingByDistrict[j].DistrictID
	})

	return summary
}

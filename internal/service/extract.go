package service

import (
	"encoding/json"

	"paris-coordcheck/internal/geo"
	"paris-coordcheck/internal/models"
)

// Extract flattens districts into one place per raw place, in document, category and place order.
// Nothing is filtered; coordinates are parsed but kept as found.
func Extract(docs []models.SourceDocument) []models.Place {
	var places []models.Place

	for _, doc := range docs {
		districtID := doc.District.IDText(doc.File)
		center, hasCenter := geo.Parse(doc.District.Center)

		for _, category := range doc.District.Categories {
			for _, raw := range category.Places {
				point, valid := geo.Parse(raw.Coordinates)

				places = append(places, models.Place{
					File:           doc.File,
					DistrictID:     districtID,
					DistrictCenter: center,
					HasCenter:      hasCenter,
					Category:       category.Label,
					ID:             models.Text(raw.ID, models.Placeholder),
					Name:           models.Text(raw.Name, models.Placeholder),
					Address:        models.Text(raw.Address, models.Placeholder),
					RawCoordinates: cloneRaw(raw.Coordinates),
					Point:          point,
					Valid:          valid,
				})
			}
		}
	}

	return places
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

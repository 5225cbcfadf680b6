package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the top-level shape of one district file.
type Document struct {
	Arrondissement *District `json:"arrondissement"`
}

// District groups the categorized places of one arrondissement together with its center point.
type District struct {
	ID         json.RawMessage `json:"id"`
	Center     json.RawMessage `json:"center"`
	Categories Categories      `json:"categories"`
}

// Category is a labelled list of places inside a district.
type Category struct {
	Label  string
	Title  string
	Places []RawPlace
}

// RawPlace is a place exactly as it appears in a district file. Coordinates are kept undecoded.
type RawPlace struct {
	ID          json.RawMessage `json:"id"`
	Name        json.RawMessage `json:"name"`
	Address     json.RawMessage `json:"address"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// IDText returns the district id as text, or fallback when the id is absent or null.
func (d District) IDText(fallback string) string {
	return Text(d.ID, fallback)
}

// Text renders a scalar JSON value as plain text. Strings are unquoted, other values are
// kept as written, absent and null values give fallback.
func Text(raw json.RawMessage, fallback string) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return fallback
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// SourceDocument pairs a loaded district with the file it came from.
type SourceDocument struct {
	File     string
	District District
}

// Categories keeps categories in the order they appear in the file.
type Categories []Category

type categoryBody struct {
	Title  string     `json:"title"`
	Places []RawPlace `json:"places"`
}

// UnmarshalJSON decodes the category object key by key so that document order is preserved.
func (c *Categories) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("models: failed to read categories: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("models: categories must be an object")
	}

	var out Categories
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("models: failed to read category label: %w", err)
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("models: unexpected category label %v", tok)
		}

		var body categoryBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("models: failed to decode category %q: %w", label, err)
		}
		out = append(out, Category{Label: label, Title: body.Title, Places: body.Places})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("models: failed to close categories: %w", err)
	}

	*c = out
	return nil
}

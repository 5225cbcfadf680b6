package models

import (
	"sort"

	"github.com/paulmach/orb"
)

// Classification is the outcome of one analysis run over a flattened place list.
type Classification struct {
	Duplicates  map[string][]Place
	Missing     []Place
	OutOfBounds []Place
	Suspicious  []Place
	Total       int
}

// DuplicateGroup is a set of places sharing one coordinate key.
type DuplicateGroup struct {
	Key    string
	Places []Place
}

// SortedDuplicates returns the duplicate groups, largest first, ties broken by key.
func (c *Classification) SortedDuplicates() []DuplicateGroup {
	groups := make([]DuplicateGroup, 0, len(c.Duplicates))
	for key, places := range c.Duplicates {
		groups = append(groups, DuplicateGroup{Key: key, Places: places})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Places) != len(groups[j].Places) {
			return len(groups[i].Places) > len(groups[j].Places)
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// CenterCoincidence is a duplicate group whose shared point is a district center.
type CenterCoincidence struct {
	Key    string
	Center orb.Point
	Places []Place
}

// LookupMatch is a place found by a targeted name search.
type LookupMatch struct {
	Place          Place
	SameAsCenter   bool
	DistanceMeters float64
	HasDistance    bool
}

// Audit bundles everything the full analysis report needs.
type Audit struct {
	Files              int
	Places             []Place
	Result             *Classification
	CenterCoincidences []CenterCoincidence
	Matches            []LookupMatch
	Bounds             orb.Bound
}

package search

import (
	"math"
	"sort"

	"CloseByRentals/models"
)

// Rank orders properties by how well their amenity distances match the
// caller's preferences (category -> desired distance in km). With no
// preferences the ordering falls back to ascending price. Both sorts are
// stable, so ties keep their original relative order.
//
// The score is an L1 proximity match: each preference contributes the
// absolute difference between the property's nearest amenity in that
// category and the desired distance. Closer-than-desired is penalized
// exactly as much as farther-than-desired. A property with no amenity in a
// preferred category takes an infinite term for it: it sorts after every
// property with fewer infinite terms but is never excluded, and among
// equally-missing properties the finite terms decide.
func Rank(properties []models.Property, preferences map[string]float64) []models.Property {
	ranked := make([]models.Property, len(properties))
	copy(ranked, properties)

	if len(preferences) == 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Price < ranked[j].Price
		})
		return ranked
	}

	costs := make([]cost, len(ranked))
	for i := range ranked {
		costs[i] = scoreProperty(ranked[i], preferences)
	}
	idx := make([]int, len(ranked))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return costs[idx[i]].less(costs[idx[j]])
	})

	out := make([]models.Property, len(ranked))
	for i, k := range idx {
		out[i] = ranked[k]
	}
	return out
}

// cost separates the infinite terms from the finite sum so that properties
// missing the same preferred categories still order by their remaining terms.
type cost struct {
	missing int
	finite  float64
}

func (c cost) less(o cost) bool {
	if c.missing != o.missing {
		return c.missing < o.missing
	}
	return c.finite < o.finite
}

func scoreProperty(p models.Property, preferences map[string]float64) cost {
	var c cost
	for category, desired := range preferences {
		nearest, ok := NearestDistance(p, category)
		if !ok {
			c.missing++
			continue
		}
		c.finite += math.Abs(nearest - desired)
	}
	return c
}

// NearestDistance returns the minimum fact distance for a category, or
// ok=false when the property has no fact in that category.
func NearestDistance(p models.Property, category string) (float64, bool) {
	nearest := math.Inf(1)
	found := false
	for _, fact := range p.NearbyAmenities {
		if fact.Category != category {
			continue
		}
		if fact.Distance < nearest {
			nearest = fact.Distance
		}
		found = true
	}
	return nearest, found
}

// Preferences builds the ranking preference map from a filter spec: every
// selected standard category is desired as close as possible (0 km) and
// custom amenities carry their own desired distance.
func Preferences(f models.SearchFilters) map[string]float64 {
	prefs := make(map[string]float64, len(f.SelectedAmenities)+len(f.CustomAmenities))
	for _, category := range f.SelectedAmenities {
		prefs[category] = 0
	}
	for name, desired := range f.CustomAmenities {
		prefs[name] = desired
	}
	return prefs
}

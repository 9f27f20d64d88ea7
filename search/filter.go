package search

import (
	"strings"

	"CloseByRentals/models"
)

// Matches reports whether a property satisfies every filter constraint.
// It is pure: it never mutates the property or the filters, so calling it
// twice on the same pair always yields the same result.
func Matches(p models.Property, f models.SearchFilters) bool {
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}
	if p.Bedrooms < f.Bedrooms {
		return false
	}
	if f.PropertyType != models.AnySelector && f.PropertyType != p.PropertyType {
		return false
	}
	if f.FurnishedType != models.AnySelector && f.FurnishedType != p.FurnishedType {
		return false
	}
	if f.LetType != models.AnySelector && f.LetType != p.LetType {
		return false
	}
	if f.Location != "" && !containsFold(p.Location.Address, f.Location) {
		return false
	}
	if f.OfficeLocation != "" && !containsFold(p.OfficeLocation, f.OfficeLocation) {
		return false
	}
	return true
}

// Apply filters a candidate set down to the properties matching f.
func Apply(properties []models.Property, f models.SearchFilters) []models.Property {
	var matched []models.Property
	for _, p := range properties {
		if Matches(p, f) {
			matched = append(matched, p)
		}
	}
	return matched
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

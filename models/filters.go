package models

// SearchFilters is the per-request filter specification posted to the search
// endpoint. The three type selectors accept a literal value or "any", which
// means no constraint. CustomAmenities maps a free-text amenity name to the
// desired distance in kilometres.
type SearchFilters struct {
	PriceRange        [2]float64         `json:"priceRange"`
	Bedrooms          int                `json:"bedrooms"`
	PropertyType      string             `json:"propertyType"`
	FurnishedType     string             `json:"furnishedType"`
	LetType           string             `json:"letType"`
	Location          string             `json:"location,omitempty"`
	OfficeLocation    string             `json:"officeLocation"`
	SelectedAmenities []string           `json:"selectedAmenities"`
	CustomAmenities   map[string]float64 `json:"customAmenities"`
}

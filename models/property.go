package models

import (
	"encoding/json"
	"sort"
)

const AnySelector = "any"

var PropertyTypes = []string{"detached", "semi-detached", "terraced", "flat", "bungalow"}

var FurnishedTypes = []string{"furnished", "unfurnished"}

var LetTypes = []string{"long_term", "short_term"}

// AmenityFact is a point of interest known to be near a property, with its
// distance in kilometres. This is the canonical amenity shape; the legacy
// amenityDistances map is converted into facts at ingestion.
type AmenityFact struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Category string  `json:"category" bson:"category"`
	Distance float64 `json:"distance" bson:"distance"`
	URL      string  `json:"url,omitempty" bson:"url,omitempty"`
}

type PropertyLocation struct {
	Address   string  `json:"address" bson:"address"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Property struct {
	ID              string           `json:"id" bson:"_id"`
	Title           string           `json:"title" bson:"title"`
	Price           float64          `json:"price" bson:"price"`
	Bedrooms        int              `json:"bedrooms" bson:"bedrooms"`
	PropertyType    string           `json:"propertyType" bson:"propertyType"`
	FurnishedType   string           `json:"furnishedType" bson:"furnishedType"`
	LetType         string           `json:"letType" bson:"letType"`
	Location        PropertyLocation `json:"location" bson:"location"`
	NearbyAmenities []AmenityFact    `json:"nearbyAmenities" bson:"nearbyAmenities"`
	Images          []string         `json:"images" bson:"images"`
	Description     string           `json:"description" bson:"description"`
	OfficeLocation  string           `json:"officeLocation" bson:"officeLocation"`
}

// UnmarshalJSON accepts both historical amenity shapes. Payloads carrying the
// legacy amenityDistances map (category -> nearest distance) and no fact list
// get one synthesized fact per category.
func (p *Property) UnmarshalJSON(data []byte) error {
	type plain Property
	aux := struct {
		*plain
		AmenityDistances map[string]float64 `json:"amenityDistances"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(p.NearbyAmenities) == 0 && len(aux.AmenityDistances) > 0 {
		p.NearbyAmenities = FactsFromDistances(aux.AmenityDistances)
	}
	return nil
}

// FactsFromDistances converts the legacy per-category distance map into the
// canonical fact list, in stable category order.
func FactsFromDistances(distances map[string]float64) []AmenityFact {
	categories := make([]string, 0, len(distances))
	for category := range distances {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	facts := make([]AmenityFact, 0, len(categories))
	for _, category := range categories {
		facts = append(facts, AmenityFact{
			ID:       "legacy-" + category,
			Name:     category,
			Category: category,
			Distance: distances[category],
		})
	}
	return facts
}

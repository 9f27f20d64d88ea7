package utils

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Payload contracts for the three POST endpoints. Validation runs at the
// boundary so malformed shapes never reach the filter or ranking logic.

var filterSchema = jsonschema.MustCompileString("filters.json", `{
	"type": "object",
	"required": ["priceRange", "bedrooms", "propertyType", "furnishedType", "letType", "officeLocation", "selectedAmenities", "customAmenities"],
	"properties": {
		"priceRange": {
			"type": "array",
			"minItems": 2,
			"maxItems": 2,
			"items": {"type": "number", "minimum": 0}
		},
		"bedrooms": {"type": "integer", "minimum": 0},
		"propertyType": {"enum": ["detached", "semi-detached", "terraced", "flat", "bungalow", "any"]},
		"furnishedType": {"enum": ["furnished", "unfurnished", "any"]},
		"letType": {"enum": ["long_term", "short_term", "any"]},
		"location": {"type": "string"},
		"officeLocation": {"type": "string"},
		"selectedAmenities": {"type": "array", "items": {"type": "string"}},
		"customAmenities": {"type": "object", "additionalProperties": {"type": "number", "minimum": 0}}
	}
}`)

var propertySchema = jsonschema.MustCompileString("property.json", `{
	"type": "object",
	"required": ["title", "price", "bedrooms", "propertyType", "furnishedType", "letType", "location"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"price": {"type": "number", "minimum": 0},
		"bedrooms": {"type": "integer", "minimum": 0},
		"propertyType": {"enum": ["detached", "semi-detached", "terraced", "flat", "bungalow"]},
		"furnishedType": {"enum": ["furnished", "unfurnished"]},
		"letType": {"enum": ["long_term", "short_term"]},
		"location": {
			"type": "object",
			"required": ["address"],
			"properties": {
				"address": {"type": "string", "minLength": 1},
				"latitude": {"type": "number", "minimum": -90, "maximum": 90},
				"longitude": {"type": "number", "minimum": -180, "maximum": 180}
			}
		},
		"nearbyAmenities": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "category", "distance"],
				"properties": {
					"name": {"type": "string"},
					"category": {"type": "string"},
					"distance": {"type": "number", "minimum": 0},
					"url": {"type": "string"}
				}
			}
		},
		"amenityDistances": {"type": "object", "additionalProperties": {"type": "number", "minimum": 0}},
		"images": {"type": "array", "items": {"type": "string"}},
		"description": {"type": "string"},
		"officeLocation": {"type": "string"}
	}
}`)

var amenitySchema = jsonschema.MustCompileString("amenity.json", `{
	"type": "object",
	"required": ["name", "category", "location"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"category": {"type": "string", "minLength": 1},
		"location": {
			"type": "object",
			"required": ["address", "coordinates"],
			"properties": {
				"address": {
					"type": "object",
					"required": ["addressLine", "city", "country", "postcode"],
					"properties": {
						"addressLine": {"type": "string"},
						"city": {"type": "string"},
						"country": {"type": "string"},
						"postcode": {"type": "string"}
					}
				},
				"coordinates": {
					"type": "object",
					"required": ["latitude", "longitude"],
					"properties": {
						"latitude": {"type": "number", "minimum": -90, "maximum": 90},
						"longitude": {"type": "number", "minimum": -180, "maximum": 180}
					}
				}
			}
		},
		"website": {"type": "string"},
		"phone": {"type": "string"},
		"createdBy": {"type": "string"},
		"rating": {"type": "number", "minimum": 0.5, "maximum": 5, "multipleOf": 0.5}
	}
}`)

func ValidateFilters(data []byte) error {
	return validate(filterSchema, data)
}

func ValidateProperty(data []byte) error {
	return validate(propertySchema, data)
}

func ValidateAmenity(data []byte) error {
	return validate(amenitySchema, data)
}

func validate(schema *jsonschema.Schema, data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}

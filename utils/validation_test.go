package utils

import "testing"

const validFilters = `{
	"priceRange": [0, 5000],
	"bedrooms": 1,
	"propertyType": "any",
	"furnishedType": "any",
	"letType": "any",
	"officeLocation": "",
	"selectedAmenities": ["gym"],
	"customAmenities": {"bakery": 0.5}
}`

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", validFilters, false},
		{"not json", `{`, true},
		{"missing priceRange", `{"bedrooms":1,"propertyType":"any","furnishedType":"any","letType":"any","officeLocation":"","selectedAmenities":[],"customAmenities":{}}`, true},
		{"priceRange wrong arity", `{"priceRange":[0],"bedrooms":1,"propertyType":"any","furnishedType":"any","letType":"any","officeLocation":"","selectedAmenities":[],"customAmenities":{}}`, true},
		{"unknown propertyType", `{"priceRange":[0,100],"bedrooms":1,"propertyType":"castle","furnishedType":"any","letType":"any","officeLocation":"","selectedAmenities":[],"customAmenities":{}}`, true},
		{"fractional bedrooms", `{"priceRange":[0,100],"bedrooms":1.5,"propertyType":"any","furnishedType":"any","letType":"any","officeLocation":"","selectedAmenities":[],"customAmenities":{}}`, true},
		{"negative custom distance", `{"priceRange":[0,100],"bedrooms":1,"propertyType":"any","furnishedType":"any","letType":"any","officeLocation":"","selectedAmenities":[],"customAmenities":{"bakery":-1}}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilters([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilters() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProperty(t *testing.T) {
	valid := `{
		"title": "Test Flat",
		"price": 1500,
		"bedrooms": 2,
		"propertyType": "flat",
		"furnishedType": "furnished",
		"letType": "long_term",
		"location": {"address": "1 Test Street", "latitude": 51.5, "longitude": -0.1},
		"nearbyAmenities": [{"name": "PureGym", "category": "gym", "distance": 0.3}]
	}`
	legacy := `{
		"title": "Legacy Flat",
		"price": 1500,
		"bedrooms": 2,
		"propertyType": "flat",
		"furnishedType": "furnished",
		"letType": "long_term",
		"location": {"address": "2 Old Street"},
		"amenityDistances": {"gym": 0.3}
	}`
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid with fact list", valid, false},
		{"valid with legacy map", legacy, false},
		{"wildcard not storable", `{"title":"T","price":1,"bedrooms":1,"propertyType":"any","furnishedType":"furnished","letType":"long_term","location":{"address":"x"}}`, true},
		{"negative price", `{"title":"T","price":-1,"bedrooms":1,"propertyType":"flat","furnishedType":"furnished","letType":"long_term","location":{"address":"x"}}`, true},
		{"missing location address", `{"title":"T","price":1,"bedrooms":1,"propertyType":"flat","furnishedType":"furnished","letType":"long_term","location":{}}`, true},
		{"negative fact distance", `{"title":"T","price":1,"bedrooms":1,"propertyType":"flat","furnishedType":"furnished","letType":"long_term","location":{"address":"x"},"nearbyAmenities":[{"name":"a","category":"gym","distance":-0.1}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProperty([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProperty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmenity(t *testing.T) {
	valid := `{
		"name": "PureGym Canary Wharf",
		"category": "gym",
		"location": {
			"address": {"addressLine": "17-19 Hertsmere Rd", "city": "London", "country": "UK", "postcode": "E14 4AS"},
			"coordinates": {"latitude": 51.5055, "longitude": -0.0241}
		},
		"website": "https://example.com",
		"createdBy": "tester",
		"rating": 4.5
	}`
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", valid, false},
		{"missing category", `{"name":"X","location":{"address":{"addressLine":"a","city":"b","country":"c","postcode":"d"},"coordinates":{"latitude":0,"longitude":0}}}`, true},
		{"missing coordinates", `{"name":"X","category":"gym","location":{"address":{"addressLine":"a","city":"b","country":"c","postcode":"d"}}}`, true},
		{"rating off the half-step grid", `{"name":"X","category":"gym","location":{"address":{"addressLine":"a","city":"b","country":"c","postcode":"d"},"coordinates":{"latitude":0,"longitude":0}},"rating":4.7}`, true},
		{"rating too low", `{"name":"X","category":"gym","location":{"address":{"addressLine":"a","city":"b","country":"c","postcode":"d"},"coordinates":{"latitude":0,"longitude":0}},"rating":0.4}`, true},
		{"rating at upper bound", `{"name":"X","category":"gym","location":{"address":{"addressLine":"a","city":"b","country":"c","postcode":"d"},"coordinates":{"latitude":0,"longitude":0}},"rating":5}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmenity([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAmenity() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package models

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalCanonicalShape(t *testing.T) {
	payload := `{
		"id": "p1",
		"title": "Test Flat",
		"price": 1500,
		"bedrooms": 2,
		"propertyType": "flat",
		"furnishedType": "furnished",
		"letType": "long_term",
		"location": {"address": "1 Test Street, London", "latitude": 51.5, "longitude": -0.1},
		"nearbyAmenities": [
			{"id": "a1", "name": "PureGym", "category": "gym", "distance": 0.3}
		],
		"officeLocation": "London Central"
	}`

	var p Property
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(p.NearbyAmenities) != 1 {
		t.Fatalf("got %d facts, want 1", len(p.NearbyAmenities))
	}
	if p.NearbyAmenities[0].Category != "gym" || p.NearbyAmenities[0].Distance != 0.3 {
		t.Errorf("fact = %+v", p.NearbyAmenities[0])
	}
}

func TestUnmarshalLegacyDistanceMap(t *testing.T) {
	payload := `{
		"id": "p2",
		"title": "Legacy Flat",
		"price": 1500,
		"bedrooms": 2,
		"propertyType": "flat",
		"furnishedType": "furnished",
		"letType": "long_term",
		"location": {"address": "2 Old Street, London", "latitude": 51.5, "longitude": -0.1},
		"amenityDistances": {"gym": 0.3, "park": 0.5, "school": 0.8}
	}`

	var p Property
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(p.NearbyAmenities) != 3 {
		t.Fatalf("got %d facts, want 3", len(p.NearbyAmenities))
	}
	// Categories come out in sorted order.
	want := []struct {
		category string
		distance float64
	}{
		{"gym", 0.3},
		{"park", 0.5},
		{"school", 0.8},
	}
	for i, w := range want {
		fact := p.NearbyAmenities[i]
		if fact.Category != w.category || fact.Distance != w.distance {
			t.Errorf("fact[%d] = %+v, want %s at %v", i, fact, w.category, w.distance)
		}
		if fact.ID != "legacy-"+w.category {
			t.Errorf("fact[%d].ID = %q", i, fact.ID)
		}
	}
}

func TestUnmarshalFactListWinsOverLegacyMap(t *testing.T) {
	payload := `{
		"id": "p3",
		"title": "Both Shapes",
		"price": 1500,
		"bedrooms": 1,
		"propertyType": "flat",
		"furnishedType": "furnished",
		"letType": "long_term",
		"location": {"address": "3 New Street, London"},
		"nearbyAmenities": [{"id": "a1", "name": "PureGym", "category": "gym", "distance": 0.3}],
		"amenityDistances": {"park": 0.5}
	}`

	var p Property
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(p.NearbyAmenities) != 1 || p.NearbyAmenities[0].Category != "gym" {
		t.Errorf("canonical fact list should win, got %+v", p.NearbyAmenities)
	}
}

func TestFactsFromDistancesEmpty(t *testing.T) {
	if facts := FactsFromDistances(nil); len(facts) != 0 {
		t.Errorf("FactsFromDistances(nil) = %v, want empty", facts)
	}
}

package search

import (
	"strings"
	"testing"

	"CloseByRentals/models"
)

func TestGenerateDistanceBounds(t *testing.T) {
	g := NewGenerator(1)
	for i := 0; i < 200; i++ {
		fact := g.Generate("bakery", 2.5)
		if fact.Distance < 0 || fact.Distance > 2.5 {
			t.Fatalf("distance %v out of [0, 2.5]", fact.Distance)
		}
		// One decimal place.
		scaled := fact.Distance * 10
		if scaled != float64(int(scaled)) {
			t.Fatalf("distance %v not rounded to one decimal", fact.Distance)
		}
	}
}

func TestGenerateNameAndCategory(t *testing.T) {
	g := NewGenerator(42)
	fact := g.Generate("bakery", 1.0)

	if fact.Category != "bakery" {
		t.Errorf("category = %q, want %q", fact.Category, "bakery")
	}
	if !strings.HasSuffix(fact.Name, " bakery") {
		t.Errorf("name %q should end with the category", fact.Name)
	}
	prefix := strings.TrimSuffix(fact.Name, " bakery")
	found := false
	for _, name := range businessNames {
		if prefix == name {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("name prefix %q not in the fixed prefix set", prefix)
	}
	if !strings.HasPrefix(fact.ID, "custom-bakery-") {
		t.Errorf("id = %q, want custom-bakery-* ", fact.ID)
	}
}

func TestAugmentAppendsWithoutMutating(t *testing.T) {
	g := NewGenerator(7)
	original := []models.Property{
		{ID: "p1", NearbyAmenities: []models.AmenityFact{
			{Category: "gym", Distance: 0.3},
		}},
		{ID: "p2"},
	}

	augmented := g.Augment(original, map[string]float64{"bakery": 0.5, "cinema": 1.0})

	if len(original[0].NearbyAmenities) != 1 {
		t.Fatalf("Augment mutated input: %d facts", len(original[0].NearbyAmenities))
	}
	if len(augmented[0].NearbyAmenities) != 3 {
		t.Fatalf("augmented p1 has %d facts, want 3", len(augmented[0].NearbyAmenities))
	}
	if len(augmented[1].NearbyAmenities) != 2 {
		t.Fatalf("augmented p2 has %d facts, want 2", len(augmented[1].NearbyAmenities))
	}

	categories := map[string]bool{}
	for _, fact := range augmented[1].NearbyAmenities {
		categories[fact.Category] = true
	}
	if !categories["bakery"] || !categories["cinema"] {
		t.Errorf("augmented facts missing custom categories: %v", categories)
	}
}

func TestAugmentNoCustomAmenitiesIsNoop(t *testing.T) {
	g := NewGenerator(7)
	original := []models.Property{{ID: "p1"}}
	augmented := g.Augment(original, nil)
	if len(augmented) != 1 || len(augmented[0].NearbyAmenities) != 0 {
		t.Errorf("Augment with no custom amenities should be a no-op")
	}
}

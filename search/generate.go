package search

import (
	"math"
	"math/rand"
	"sort"

	"CloseByRentals/models"

	"github.com/google/uuid"
)

// Display-name prefixes for generated amenities.
var businessNames = []string{
	"The Local", "City Center", "Downtown", "Metropolitan",
	"Central", "Urban", "Community", "District",
}

// Generator manufactures amenity facts standing in for geocoded places data.
// Output is request-scoped decoration: it is appended to copies of property
// records for a single response and never persisted.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces one synthetic fact for a custom amenity category, with a
// distance drawn uniformly from [0, maxDistanceKm) rounded to one decimal.
func (g *Generator) Generate(category string, maxDistanceKm float64) models.AmenityFact {
	distance := math.Round(g.rng.Float64()*maxDistanceKm*10) / 10
	name := businessNames[g.rng.Intn(len(businessNames))] + " " + category
	return models.AmenityFact{
		ID:       "custom-" + category + "-" + uuid.NewString(),
		Name:     name,
		Category: category,
		Distance: distance,
	}
}

// Augment returns property copies with one generated fact appended per
// custom amenity preference. The input properties and their fact slices are
// left untouched, keeping the filter and ranking stages pure.
func (g *Generator) Augment(properties []models.Property, custom map[string]float64) []models.Property {
	if len(custom) == 0 {
		return properties
	}

	categories := make([]string, 0, len(custom))
	for category := range custom {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	augmented := make([]models.Property, len(properties))
	for i, p := range properties {
		facts := make([]models.AmenityFact, len(p.NearbyAmenities), len(p.NearbyAmenities)+len(categories))
		copy(facts, p.NearbyAmenities)
		for _, category := range categories {
			facts = append(facts, g.Generate(category, custom[category]))
		}
		p.NearbyAmenities = facts
		augmented[i] = p
	}
	return augmented
}

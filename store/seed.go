package store

import "CloseByRentals/models"

// SeedProperties is the bundled London demo catalogue used when no durable
// store is configured.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:            "p1",
			Title:         "Modern City Apartment with Balcony",
			Price:         1800,
			Bedrooms:      2,
			PropertyType:  "flat",
			FurnishedType: "furnished",
			LetType:       "long_term",
			Location: models.PropertyLocation{
				Address:   "123 City Road, Shoreditch, London EC1V 2NX",
				Latitude:  51.5274,
				Longitude: -0.0878,
			},
			NearbyAmenities: []models.AmenityFact{
				{ID: "a1", Name: "PureGym Shoreditch", Category: "gym", Distance: 0.3},
				{ID: "a2", Name: "Virgin Active City", Category: "gym", Distance: 0.8},
				{ID: "a3", Name: "Shoreditch Park", Category: "park", Distance: 0.5},
				{ID: "a4", Name: "Old Street Station", Category: "train_station", Distance: 0.2},
			},
			Images:         []string{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688"},
			Description:    "A stunning 2-bedroom apartment in the heart of Shoreditch. Features a modern open-plan kitchen, private balcony, and floor-to-ceiling windows with city views.",
			OfficeLocation: "Old Street Office",
		},
		{
			ID:            "p2",
			Title:         "Victorian Terraced House with Garden",
			Price:         2500,
			Bedrooms:      3,
			PropertyType:  "terraced",
			FurnishedType: "unfurnished",
			LetType:       "long_term",
			Location: models.PropertyLocation{
				Address:   "45 Highbury Grove, Islington, London N5 2AG",
				Latitude:  51.5482,
				Longitude: -0.1026,
			},
			NearbyAmenities: []models.AmenityFact{
				{ID: "b1", Name: "Highbury Fields", Category: "park", Distance: 0.2},
				{ID: "b2", Name: "Nuffield Health Islington", Category: "gym", Distance: 0.7},
				{ID: "b3", Name: "Highbury & Islington Station", Category: "train_station", Distance: 0.4},
				{ID: "b4", Name: "St Marys Primary School", Category: "school", Distance: 0.3},
			},
			Images:         []string{"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9"},
			Description:    "Beautiful Victorian terraced house with original features, high ceilings, and a private garden. Recently renovated kitchen and bathrooms.",
			OfficeLocation: "Islington Office",
		},
		{
			ID:            "p3",
			Title:         "Luxury Riverside Apartment",
			Price:         3200,
			Bedrooms:      2,
			PropertyType:  "flat",
			FurnishedType: "furnished",
			LetType:       "long_term",
			Location: models.PropertyLocation{
				Address:   "10 River Street, Greenwich, London SE10 8JW",
				Latitude:  51.4834,
				Longitude: -0.0098,
			},
			NearbyAmenities: []models.AmenityFact{
				{ID: "c1", Name: "Greenwich Park", Category: "park", Distance: 0.6},
				{ID: "c2", Name: "David Lloyd Greenwich", Category: "gym", Distance: 0.9},
				{ID: "c3", Name: "Cutty Sark DLR", Category: "train_station", Distance: 0.3},
				{ID: "c4", Name: "The Gipsy Moth", Category: "pub", Distance: 0.2},
			},
			Images:         []string{"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00"},
			Description:    "Stunning riverside apartment with panoramic views of the Thames. Features include a winter garden, concierge service, and residents gym.",
			OfficeLocation: "Greenwich Office",
		},
		{
			ID:            "p4",
			Title:         "Modern Garden Flat in Hampstead",
			Price:         2800,
			Bedrooms:      2,
			PropertyType:  "flat",
			FurnishedType: "furnished",
			LetType:       "short_term",
			Location: models.PropertyLocation{
				Address:   "15 Heath Street, Hampstead, London NW3 6TR",
				Latitude:  51.5559,
				Longitude: -0.1780,
			},
			NearbyAmenities: []models.AmenityFact{
				{ID: "d1", Name: "Hampstead Heath", Category: "park", Distance: 0.3},
				{ID: "d2", Name: "Fitness First Hampstead", Category: "gym", Distance: 0.5},
				{ID: "d3", Name: "Hampstead Station", Category: "train_station", Distance: 0.4},
				{ID: "d4", Name: "The Holly Bush", Category: "pub", Distance: 0.2},
			},
			Images:         []string{"https://images.unsplash.com/photo-1512917774080-9991f1c4c750"},
			Description:    "Beautifully presented garden flat in the heart of Hampstead Village. Features include a private garden, modern kitchen, and period features throughout.",
			OfficeLocation: "Hampstead Office",
		},
	}
}

// SeedAmenities is the bundled amenity catalogue.
func SeedAmenities() []models.Amenity {
	return []models.Amenity{
		{
			ID:       "a1",
			Name:     "PureGym Canary Wharf",
			Category: "gym",
			Location: models.AmenityLocation{
				Address:     models.AmenityAddress{AddressLine: "17-19 Hertsmere Rd", City: "London", Country: "UK", Postcode: "E14 4AS"},
				Coordinates: models.Coordinates{Latitude: 51.5055, Longitude: -0.0241},
			},
			Website: "https://www.puregym.com/gyms/london-canary-wharf/",
			Phone:   "+44 20 7515 1234",
		},
		{
			ID:       "a2",
			Name:     "Victoria Park",
			Category: "park",
			Location: models.AmenityLocation{
				Address:     models.AmenityAddress{AddressLine: "Grove Road", City: "London", Country: "UK", Postcode: "E9 7DE"},
				Coordinates: models.Coordinates{Latitude: 51.5362, Longitude: -0.0359},
			},
			Website: "https://www.towerhamlets.gov.uk/victoria-park",
			Phone:   "+44 20 7364 4504",
		},
		{
			ID:       "a3",
			Name:     "St. Mary's Primary School",
			Category: "school",
			Location: models.AmenityLocation{
				Address:     models.AmenityAddress{AddressLine: "6 Amwell Street", City: "London", Country: "UK", Postcode: "EC1R 1UQ"},
				Coordinates: models.Coordinates{Latitude: 51.5275, Longitude: -0.1087},
			},
			Website: "https://www.stmarys.islington.sch.uk",
			Phone:   "+44 20 7837 4844",
		},
		{
			ID:       "a4",
			Name:     "The Royal London Hospital",
			Category: "hospital",
			Location: models.AmenityLocation{
				Address:     models.AmenityAddress{AddressLine: "Whitechapel Road", City: "London", Country: "UK", Postcode: "E1 1BB"},
				Coordinates: models.Coordinates{Latitude: 51.5186, Longitude: -0.0593},
			},
			Website: "https://www.bartshealth.nhs.uk/the-royal-london",
			Phone:   "+44 20 7377 7000",
		},
		{
			ID:       "a5",
			Name:     "Yoga House London",
			Category: "yoga",
			Location: models.AmenityLocation{
				Address:     models.AmenityAddress{AddressLine: "14-16 Bermondsey Square", City: "London", Country: "UK", Postcode: "SE1 3UN"},
				Coordinates: models.Coordinates{Latitude: 51.4977, Longitude: -0.0814},
			},
			Website: "https://www.yogahouselondon.co.uk",
			Phone:   "+44 20 7378 7567",
		},
	}
}

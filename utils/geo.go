package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// Distances are kilometres everywhere inside the service; the remote amenity
// API speaks miles, converted at that boundary only.
const kmPerMile = 1.60934

const earthRadiusKm = 6371

// Geohash precision 6 buckets coordinates into ~0.6 km cells, coarse enough
// that repeated searches around the same spot share a cache entry.
const bucketPrecision = 6

func MilesToKm(miles float64) float64 {
	return miles * kmPerMile
}

func KmToMiles(km float64) float64 {
	return km / kmPerMile
}

// HaversineKm returns the great-circle distance between two coordinates,
// rounded to one decimal place.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ParseCoordinates recognizes a "lat,lng" search term.
func ParseCoordinates(s string) (lat, lng float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

// LocationBucket maps coordinates to a geohash cell for cache keying.
func LocationBucket(lat, lng float64) string {
	return geohash.Encode(lat, lng)[:bucketPrecision]
}

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"CloseByRentals/models"
	"CloseByRentals/resolve"
	"CloseByRentals/store"
	"CloseByRentals/utils"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 20

type AmenityController struct {
	store    store.AmenityStore
	resolver *resolve.Resolver
	remote   *resolve.Client
}

func NewAmenityController(s store.AmenityStore, r *resolve.Resolver, remote *resolve.Client) *AmenityController {
	return &AmenityController{store: s, resolver: r, remote: remote}
}

// ListAmenities returns a plain array, or the paginated envelope when page
// query parameters are present. Best-effort: degrades to empty on total
// source failure.
func (ac *AmenityController) ListAmenities(c echo.Context) error {
	page, pageSize, paged := pageParams(c)

	params := map[string]string{}
	remotePath := "/amenities"
	if paged {
		params["page"] = strconv.Itoa(page)
		params["pageSize"] = strconv.Itoa(pageSize)
		remotePath = fmt.Sprintf("/amenities?page=%d&pageSize=%d", page, pageSize)
	}

	emptyValue := []byte("[]")
	if paged {
		emptyValue, _ = json.Marshal(models.AmenityPage{Page: page, PageSize: pageSize, Data: []models.Amenity{}})
	}

	res, err := ac.resolver.Read(c.Request().Context(), resolve.ReadSpec{
		Operation: "amenities",
		Params:    params,
		Remote: func(ctx context.Context, validator string) ([]byte, string, bool, error) {
			return ac.remote.Get(ctx, remotePath, validator)
		},
		Fallback: func(ctx context.Context) ([]byte, error) {
			return ac.localAmenities(ctx, page, pageSize, paged)
		},
		RequireNonEmpty: !paged,
		BestEffort:      true,
		EmptyValue:      emptyValue,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch amenities"})
	}
	setProvenance(c, res)
	return c.JSONBlob(http.StatusOK, res.Payload)
}

func (ac *AmenityController) CreateAmenity(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amenity data"})
	}
	if err := utils.ValidateAmenity(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amenity data"})
	}
	var amenity models.Amenity
	if err := json.Unmarshal(body, &amenity); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amenity data"})
	}

	created, err := ac.resolver.Write(c.Request().Context(), resolve.WriteSpec{
		Operation: "create_amenity",
		Primary: func(ctx context.Context) ([]byte, error) {
			upstream, err := json.Marshal(upstreamAmenityPayload(amenity))
			if err != nil {
				return nil, err
			}
			return ac.remote.Post(ctx, "/amenities", upstream)
		},
		Fallback: func(ctx context.Context) ([]byte, error) {
			inserted, err := ac.store.Insert(ctx, amenity)
			if err != nil {
				return nil, err
			}
			return json.Marshal(inserted)
		},
		InvalidatePrefixes: []string{"amenities"},
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to create amenity"})
	}
	return c.JSONBlob(http.StatusCreated, created)
}

// AmenitiesNear resolves amenities around an address, postcode or "lat,lng"
// pair. Responses keep the upstream distanceMiles field; this is the only
// place miles cross the boundary. Strict read: both sources failing is an
// error, not an empty list.
func (ac *AmenityController) AmenitiesNear(c echo.Context) error {
	term := c.Param("term")
	if term == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amenity data"})
	}

	params := map[string]string{"term": strings.ToLower(term)}
	if lat, lng, ok := utils.ParseCoordinates(term); ok {
		// Nearby coordinate searches share one cache entry per geohash cell.
		params = map[string]string{"bucket": utils.LocationBucket(lat, lng)}
	}

	res, err := ac.resolver.Read(c.Request().Context(), resolve.ReadSpec{
		Operation: "amenities_near",
		Params:    params,
		Remote: func(ctx context.Context, validator string) ([]byte, string, bool, error) {
			return ac.remote.Get(ctx, "/amenities/"+url.PathEscape(term), validator)
		},
		Fallback: func(ctx context.Context) ([]byte, error) {
			return ac.localAmenitiesNear(ctx, term)
		},
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Amenity search unavailable"})
	}
	setProvenance(c, res)
	return c.JSONBlob(http.StatusOK, res.Payload)
}

func (ac *AmenityController) localAmenities(ctx context.Context, page, pageSize int, paged bool) ([]byte, error) {
	amenities, err := ac.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if amenities == nil {
		amenities = []models.Amenity{}
	}
	if !paged {
		return json.Marshal(amenities)
	}

	total := len(amenities)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return json.Marshal(models.AmenityPage{
		TotalRecords: total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		Data:         amenities[start:end],
	})
}

// localAmenitiesNear serves the fallback for the near-search. Coordinate
// terms get haversine distances against stored amenity coordinates; free-text
// terms match on name or address with no distance information.
func (ac *AmenityController) localAmenitiesNear(ctx context.Context, term string) ([]byte, error) {
	amenities, err := ac.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	lat, lng, hasCoords := utils.ParseCoordinates(term)
	records := make([]models.UpstreamAmenity, 0, len(amenities))
	for i, a := range amenities {
		if !hasCoords && !matchesTerm(a, term) {
			continue
		}
		record := models.UpstreamAmenity{
			ID:          i + 1,
			Name:        a.Name,
			Address:     a.Location.Address.AddressLine,
			Locality:    a.Location.Address.City,
			Latitude:    a.Location.Coordinates.Latitude,
			Longitude:   a.Location.Coordinates.Longitude,
			AmenityType: a.Category,
			AmenityURL:  a.Website,
			Phone:       a.Phone,
			Active:      true,
			Rating:      a.Rating,
			ModifiedBy:  a.CreatedBy,
		}
		if hasCoords {
			km := utils.HaversineKm(lat, lng, a.Location.Coordinates.Latitude, a.Location.Coordinates.Longitude)
			record.DistanceMiles = utils.KmToMiles(km)
		}
		records = append(records, record)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DistanceMiles < records[j].DistanceMiles
	})
	return json.Marshal(records)
}

func matchesTerm(a models.Amenity, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(a.Location.Address.AddressLine), needle) ||
		strings.Contains(strings.ToLower(a.Location.Address.City), needle) ||
		strings.Contains(strings.ToLower(a.Location.Address.Postcode), needle)
}

// upstreamAmenityPayload flattens a submission into the record shape the
// remote amenity API accepts.
func upstreamAmenityPayload(a models.Amenity) map[string]interface{} {
	return map[string]interface{}{
		"name":        a.Name,
		"address":     a.Location.Address.AddressLine,
		"locality":    a.Location.Address.City,
		"latitude":    a.Location.Coordinates.Latitude,
		"longitude":   a.Location.Coordinates.Longitude,
		"amenityType": a.Category,
		"amenityUrl":  a.Website,
		"phone":       a.Phone,
		"active":      true,
		"rating":      a.Rating,
		"modifiedBy":  a.CreatedBy,
	}
}

func pageParams(c echo.Context) (page, pageSize int, paged bool) {
	page, pageSize = 1, defaultPageSize
	if p := c.QueryParam("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
			paged = true
		}
	}
	if s := c.QueryParam("pageSize"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			pageSize = n
			paged = true
		}
	}
	return page, pageSize, paged
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"CloseByRentals/models"
	"CloseByRentals/resolve"
	"CloseByRentals/search"
	"CloseByRentals/store"
	"CloseByRentals/utils"

	"github.com/labstack/echo/v4"
)

type PropertyController struct {
	store     store.PropertyStore
	resolver  *resolve.Resolver
	remote    *resolve.Client
	generator *search.Generator
}

func NewPropertyController(s store.PropertyStore, r *resolve.Resolver, remote *resolve.Client, g *search.Generator) *PropertyController {
	return &PropertyController{store: s, resolver: r, remote: remote, generator: g}
}

// ListProperties is a best-effort list read: when the remote API, the cache
// and the local store are all unavailable it degrades to an empty array.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	res, err := pc.resolver.Read(c.Request().Context(), resolve.ReadSpec{
		Operation: "properties",
		Remote: func(ctx context.Context, validator string) ([]byte, string, bool, error) {
			return pc.remote.Get(ctx, "/properties", validator)
		},
		Fallback:        pc.localProperties,
		RequireNonEmpty: true,
		BestEffort:      true,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	setProvenance(c, res)
	return c.JSONBlob(http.StatusOK, res.Payload)
}

func (pc *PropertyController) SearchProperties(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid filter parameters"})
	}
	if err := utils.ValidateFilters(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid filter parameters"})
	}
	var filters models.SearchFilters
	if err := json.Unmarshal(body, &filters); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid filter parameters"})
	}

	res, err := pc.resolver.Read(c.Request().Context(), resolve.ReadSpec{
		Operation: "properties_search",
		Params:    filterParams(filters),
		Remote: func(ctx context.Context, _ string) ([]byte, string, bool, error) {
			payload, err := pc.remote.Post(ctx, "/properties/search", body)
			return payload, "", false, err
		},
		Fallback: func(ctx context.Context) ([]byte, error) {
			return pc.searchLocal(ctx, filters)
		},
		BestEffort: true,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to search properties"})
	}
	setProvenance(c, res)
	return c.JSONBlob(http.StatusOK, res.Payload)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property data"})
	}
	if err := utils.ValidateProperty(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property data"})
	}
	var property models.Property
	if err := json.Unmarshal(body, &property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property data"})
	}

	created, err := pc.resolver.Write(c.Request().Context(), resolve.WriteSpec{
		Operation: "create_property",
		Primary: func(ctx context.Context) ([]byte, error) {
			return pc.remote.Post(ctx, "/properties", body)
		},
		Fallback: func(ctx context.Context) ([]byte, error) {
			inserted, err := pc.store.Insert(ctx, property)
			if err != nil {
				return nil, err
			}
			return json.Marshal(inserted)
		},
		InvalidatePrefixes: []string{"properties"},
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to create property"})
	}
	return c.JSONBlob(http.StatusCreated, created)
}

// searchLocal runs the local pipeline: filter, augment with synthetic custom
// amenities, then rank. Augmentation happens on copies so the stored records
// stay untouched.
func (pc *PropertyController) searchLocal(ctx context.Context, filters models.SearchFilters) ([]byte, error) {
	properties, err := pc.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := search.Apply(properties, filters)
	matched = pc.generator.Augment(matched, filters.CustomAmenities)
	ranked := search.Rank(matched, search.Preferences(filters))
	if ranked == nil {
		ranked = []models.Property{}
	}
	return json.Marshal(ranked)
}

func (pc *PropertyController) localProperties(ctx context.Context) ([]byte, error) {
	properties, err := pc.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return json.Marshal(properties)
}

// filterParams canonicalizes a filter spec for cache keying. Set-valued
// fields are serialized in sorted order so equivalent filters share a key.
func filterParams(f models.SearchFilters) map[string]string {
	selected := append([]string(nil), f.SelectedAmenities...)
	sort.Strings(selected)

	customNames := make([]string, 0, len(f.CustomAmenities))
	for name := range f.CustomAmenities {
		customNames = append(customNames, name)
	}
	sort.Strings(customNames)
	custom := make([]string, 0, len(customNames))
	for _, name := range customNames {
		custom = append(custom, name+"="+strconv.FormatFloat(f.CustomAmenities[name], 'f', -1, 64))
	}

	return map[string]string{
		"priceMin":       strconv.FormatFloat(f.PriceRange[0], 'f', -1, 64),
		"priceMax":       strconv.FormatFloat(f.PriceRange[1], 'f', -1, 64),
		"bedrooms":       strconv.Itoa(f.Bedrooms),
		"propertyType":   f.PropertyType,
		"furnishedType":  f.FurnishedType,
		"letType":        f.LetType,
		"location":       strings.ToLower(f.Location),
		"officeLocation": strings.ToLower(f.OfficeLocation),
		"selected":       strings.Join(selected, ","),
		"custom":         strings.Join(custom, ","),
	}
}

func setProvenance(c echo.Context, res resolve.Result) {
	c.Response().Header().Set("X-Data-Source", string(res.Source))
	if res.CacheStatus != "" {
		c.Response().Header().Set("X-Cache-Status", string(res.CacheStatus))
	}
}

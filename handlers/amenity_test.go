package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"CloseByRentals/models"
)

func TestListAmenitiesPlainArray(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/amenities", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("X-Data-Source"); got != "fallback" {
		t.Errorf("X-Data-Source = %q, want fallback", got)
	}

	var amenities []models.Amenity
	if err := json.Unmarshal(rec.Body.Bytes(), &amenities); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(amenities) != 5 {
		t.Errorf("len = %d, want 5", len(amenities))
	}
}

func TestListAmenitiesPaginatedEnvelope(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/amenities?page=1&pageSize=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var page models.AmenityPage
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.TotalRecords != 5 || page.TotalPages != 3 {
		t.Errorf("totals = %d records / %d pages, want 5 / 3", page.TotalRecords, page.TotalPages)
	}
	if page.Page != 1 || page.PageSize != 2 {
		t.Errorf("page = %d size %d", page.Page, page.PageSize)
	}
	if len(page.Data) != 2 {
		t.Errorf("data len = %d, want 2", len(page.Data))
	}
}

func TestListAmenitiesLastPageIsShort(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/amenities?page=3&pageSize=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var page models.AmenityPage
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Data) != 1 {
		t.Errorf("last page len = %d, want 1", len(page.Data))
	}
}

func TestCreateAmenityRejectsOffGridRating(t *testing.T) {
	e := newTestServer(t)

	submission := `{
		"name": "Fitness Lab",
		"category": "gym",
		"location": {
			"address": {"addressLine": "1 Test Way", "city": "London", "country": "UK", "postcode": "E1 1AA"},
			"coordinates": {"latitude": 51.51, "longitude": -0.06}
		},
		"rating": 4.7
	}`
	rec := doRequest(e, http.MethodPost, "/amenities", submission)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Invalid amenity data" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestCreateAmenityFallsBackToStore(t *testing.T) {
	e := newTestServer(t)

	submission := `{
		"name": "Fitness Lab",
		"category": "gym",
		"location": {
			"address": {"addressLine": "1 Test Way", "city": "London", "country": "UK", "postcode": "E1 1AA"},
			"coordinates": {"latitude": 51.51, "longitude": -0.06}
		},
		"website": "https://fitnesslab.example.com",
		"createdBy": "tester",
		"rating": 4.5
	}`
	rec := doRequest(e, http.MethodPost, "/amenities", submission)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var created models.Amenity
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "a6" {
		t.Errorf("assigned id = %q, want a6", created.ID)
	}

	list := doRequest(e, http.MethodGet, "/amenities", "")
	var amenities []models.Amenity
	if err := json.Unmarshal(list.Body.Bytes(), &amenities); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(amenities) != 6 {
		t.Errorf("list after create = %d amenities, want 6", len(amenities))
	}
}

func TestAmenitiesNearCoordinates(t *testing.T) {
	e := newTestServer(t)

	// Shoreditch. Every stored amenity should come back with a distance,
	// nearest first.
	rec := doRequest(e, http.MethodGet, "/amenities/51.5274,-0.0878", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var records []models.UpstreamAmenity
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("len = %d, want 5", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].DistanceMiles < records[i-1].DistanceMiles {
			t.Fatalf("records not sorted by distance: %v then %v",
				records[i-1].DistanceMiles, records[i].DistanceMiles)
		}
	}
	for _, r := range records {
		if r.DistanceMiles <= 0 {
			t.Errorf("%s distanceMiles = %v, want > 0", r.Name, r.DistanceMiles)
		}
	}
}

func TestAmenitiesNearTextTerm(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/amenities/puregym", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var records []models.UpstreamAmenity
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Name != "PureGym Canary Wharf" {
		t.Errorf("got %d records, want the one PureGym match", len(records))
	}
	if records[0].DistanceMiles != 0 {
		t.Errorf("text search should carry no distance, got %v", records[0].DistanceMiles)
	}
}

func TestAmenitiesNearNoMatchIsEmptyList(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/amenities/zzzznothing", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var records []models.UpstreamAmenity
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0", len(records))
	}
}

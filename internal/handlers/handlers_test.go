package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventify/internal/models"
	"eventify/internal/repository"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Neighborhood{}, &models.Venue{}, &models.Event{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	router := gin.New()
	RegisterRoutes(router, repository.NewRepository(db), services.NewSearchService(db))
	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	var body map[string]string
	decodeBody(t, recorder, &body)
	return body["error"]
}

func seedHandlerVenue(t *testing.T, db *gorm.DB, name string, coords []float64) *models.Venue {
	venue := &models.Venue{Name: name, Type: "Bar", Coordinates: coords}
	if err := db.Create(venue).Error; err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}
	return venue
}

func TestVenueCRUDStatusCodes(t *testing.T) {
	router, _ := setupRouter(t)

	created := doRequest(t, router, http.MethodPost, "/venues", gin.H{
		"name":        "Bar do Zé",
		"type":        "Bar",
		"coordinates": []float64{-22.9031, -47.0571},
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", created.Code, created.Body.String())
	}

	var venue models.Venue
	decodeBody(t, created, &venue)
	if venue.ID == 0 {
		t.Fatal("created venue has no id")
	}

	got := doRequest(t, router, http.MethodGet, fmt.Sprintf("/venues/%d", venue.ID), nil)
	if got.Code != http.StatusOK {
		t.Errorf("get: expected 200, got %d", got.Code)
	}

	missing := doRequest(t, router, http.MethodGet, "/venues/9999", nil)
	if missing.Code != http.StatusNotFound {
		t.Errorf("get missing: expected 404, got %d", missing.Code)
	}
	if msg := errorMessage(t, missing); msg != "Venue with id 9999 not found" {
		t.Errorf("unexpected 404 message: %q", msg)
	}

	deleted := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/venues/%d", venue.ID), nil)
	if deleted.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", deleted.Code)
	}

	again := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/venues/%d", venue.ID), nil)
	if again.Code != http.StatusNotFound {
		t.Errorf("delete missing: expected 404, got %d", again.Code)
	}
}

func TestVenueCreateValidationErrors(t *testing.T) {
	router, _ := setupRouter(t)

	missingRequired := doRequest(t, router, http.MethodPost, "/venues", gin.H{"name": "Bar"})
	if missingRequired.Code != http.StatusBadRequest {
		t.Errorf("missing fields: expected 400, got %d", missingRequired.Code)
	}

	badPoint := doRequest(t, router, http.MethodPost, "/venues", gin.H{
		"name":        "Bar",
		"type":        "Bar",
		"coordinates": []float64{-22.9},
	})
	if badPoint.Code != http.StatusBadRequest {
		t.Errorf("bad point: expected 400, got %d", badPoint.Code)
	}

	badStars := doRequest(t, router, http.MethodPost, "/venues", gin.H{
		"name":        "Bar",
		"type":        "Bar",
		"coordinates": []float64{-22.9, -47.0},
		"stars":       11,
	})
	if badStars.Code != http.StatusBadRequest {
		t.Errorf("stars out of range: expected 400, got %d", badStars.Code)
	}
}

func TestVenuePartialUpdate(t *testing.T) {
	router, db := setupRouter(t)

	desc := "old description"
	venue := &models.Venue{Name: "Bar do Zé", Type: "Bar", Description: &desc, Coordinates: []float64{-22.9, -47.0}}
	if err := db.Create(venue).Error; err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}

	recorder := doRequest(t, router, http.MethodPut, fmt.Sprintf("/venues/%d", venue.ID),
		json.RawMessage(`{"name": "Bar da Ana", "description": null}`))
	if recorder.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated models.Venue
	decodeBody(t, recorder, &updated)
	if updated.Name != "Bar da Ana" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Description != nil {
		t.Errorf("explicit null should clear description, got %q", *updated.Description)
	}
	if updated.Type != "Bar" {
		t.Errorf("omitted field should be unchanged, got %q", updated.Type)
	}

	notFound := doRequest(t, router, http.MethodPut, "/venues/9999",
		json.RawMessage(`{"name": "x"}`))
	if notFound.Code != http.StatusNotFound {
		t.Errorf("update missing: expected 404, got %d", notFound.Code)
	}

	nullRequired := doRequest(t, router, http.MethodPut, fmt.Sprintf("/venues/%d", venue.ID),
		json.RawMessage(`{"name": null}`))
	if nullRequired.Code != http.StatusBadRequest {
		t.Errorf("null required field: expected 400, got %d", nullRequired.Code)
	}
}

func TestNeighborhoodCRUDAndVenueTypes(t *testing.T) {
	router, db := setupRouter(t)

	created := doRequest(t, router, http.MethodPost, "/neighborhoods", gin.H{
		"description": "Centro",
		"coordinates": [][]float64{{-22.9055, -47.0608}, {-22.9021, -47.0534}},
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var neighborhood models.Neighborhood
	decodeBody(t, created, &neighborhood)

	for _, venueType := range []string{"Bar", "Bar", "Restaurant"} {
		venue := &models.Venue{Name: "V", Type: venueType, Coordinates: []float64{-22.9, -47.0}, NeighborhoodID: &neighborhood.ID}
		if err := db.Create(venue).Error; err != nil {
			t.Fatalf("failed to seed venue: %v", err)
		}
	}

	types := doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/neighborhoods/venue-types?neighborhood_id=%d", neighborhood.ID), nil)
	if types.Code != http.StatusOK {
		t.Fatalf("venue-types: expected 200, got %d: %s", types.Code, types.Body.String())
	}
	var typeList []string
	decodeBody(t, types, &typeList)
	if len(typeList) != 2 {
		t.Errorf("expected 2 distinct types, got %v", typeList)
	}

	noParam := doRequest(t, router, http.MethodGet, "/neighborhoods/venue-types", nil)
	if noParam.Code != http.StatusBadRequest {
		t.Errorf("venue-types without id: expected 400, got %d", noParam.Code)
	}
}

func TestEventCreateAndListFilters(t *testing.T) {
	router, db := setupRouter(t)

	venue := seedHandlerVenue(t, db, "Bar do Zé", []float64{-22.9, -47.0})

	created := doRequest(t, router, http.MethodPost, "/events", gin.H{
		"venue_id":    venue.ID,
		"name":        "Noite de Samba",
		"type":        "Música",
		"category":    "Samba",
		"keywords":    []string{"samba"},
		"price_range": []float64{20, 50},
		"date":        "2025-11-15",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", created.Code, created.Body.String())
	}

	venueless := doRequest(t, router, http.MethodPost, "/events", gin.H{
		"name":     "Feira de Rua",
		"category": "Artesanato",
		"date":     "2025-11-15",
	})
	if venueless.Code != http.StatusCreated {
		t.Fatalf("venue-less create: expected 201, got %d: %s", venueless.Code, venueless.Body.String())
	}

	badRange := doRequest(t, router, http.MethodPost, "/events", gin.H{
		"name":        "Show",
		"category":    "Rock",
		"date":        "2025-11-15",
		"price_range": []float64{10},
	})
	if badRange.Code != http.StatusBadRequest {
		t.Errorf("single-element price_range: expected 400, got %d", badRange.Code)
	}

	byVenue := doRequest(t, router, http.MethodGet, fmt.Sprintf("/events?venue_id=%d", venue.ID), nil)
	if byVenue.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", byVenue.Code)
	}
	var events []models.Event
	decodeBody(t, byVenue, &events)
	if len(events) != 1 || events[0].Name != "Noite de Samba" {
		t.Errorf("expected only the venue's event, got %+v", events)
	}

	byCategory := doRequest(t, router, http.MethodGet, "/events?category=Artesanato", nil)
	decodeBody(t, byCategory, &events)
	if len(events) != 1 || events[0].Name != "Feira de Rua" {
		t.Errorf("expected only the artesanato event, got %+v", events)
	}
}

func TestListPaginationValidation(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		path    string
		message string
	}{
		{"/venues?skip=-1", "skip must be an integer >= 0"},
		{"/venues?skip=abc", "skip must be an integer >= 0"},
		{"/venues?limit=0", "limit must be an integer between 1 and 1000"},
		{"/venues?limit=1001", "limit must be an integer between 1 and 1000"},
	}

	for _, tt := range tests {
		recorder := doRequest(t, router, http.MethodGet, tt.path, nil)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.path, recorder.Code)
			continue
		}
		if msg := errorMessage(t, recorder); msg != tt.message {
			t.Errorf("%s: unexpected message %q", tt.path, msg)
		}
	}
}

func TestMapEndpointsBoundsValidation(t *testing.T) {
	router, db := setupRouter(t)

	seedHandlerVenue(t, db, "Inside", []float64{-22.5, -47.5})
	seedHandlerVenue(t, db, "Outside", []float64{-25.0, -50.0})

	ok := doRequest(t, router, http.MethodGet,
		"/venues/map?min_lat=-23&max_lat=-22&min_lon=-48&max_lon=-47", nil)
	if ok.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ok.Code, ok.Body.String())
	}
	var venues []models.Venue
	decodeBody(t, ok, &venues)
	if len(venues) != 1 || venues[0].Name != "Inside" {
		t.Errorf("expected only the inside venue, got %+v", venues)
	}

	missing := doRequest(t, router, http.MethodGet, "/venues/map", nil)
	if missing.Code != http.StatusBadRequest {
		t.Errorf("no bounds: expected 400, got %d", missing.Code)
	}

	partial := doRequest(t, router, http.MethodGet, "/venues/map?min_lat=-23&max_lat=-22", nil)
	if partial.Code != http.StatusBadRequest {
		t.Errorf("partial bounds: expected 400, got %d", partial.Code)
	}
	if msg := errorMessage(t, partial); msg != "all coordinate bounds must be provided together: min_lat, max_lat, min_lon, max_lon" {
		t.Errorf("unexpected partial-bounds message: %q", msg)
	}

	degenerate := doRequest(t, router, http.MethodGet,
		"/venues/map?min_lat=-22&max_lat=-22&min_lon=-48&max_lon=-47", nil)
	if degenerate.Code != http.StatusBadRequest {
		t.Errorf("min_lat=max_lat: expected 400, got %d", degenerate.Code)
	}
	if msg := errorMessage(t, degenerate); msg != "min_lat must be less than max_lat" {
		t.Errorf("unexpected degenerate-bounds message: %q", msg)
	}

	outOfRange := doRequest(t, router, http.MethodGet,
		"/venues/map?min_lat=-91&max_lat=-22&min_lon=-48&max_lon=-47", nil)
	if outOfRange.Code != http.StatusBadRequest {
		t.Errorf("lat out of range: expected 400, got %d", outOfRange.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	router, db := setupRouter(t)

	venue := seedHandlerVenue(t, db, "Bar do Zé", []float64{-22.9, -47.0})
	eventType := "Música"
	event := &models.Event{VenueID: &venue.ID, Name: "Noite de Samba", Type: &eventType, Category: "Samba", Date: "2025-11-15"}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}

	recorder := doRequest(t, router, http.MethodGet, "/search?event_type=M%C3%BAsica", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result services.SearchResult
	decodeBody(t, recorder, &result)
	if len(result.Venues) != 1 || result.Venues[0].ID != venue.ID {
		t.Errorf("expected the owning venue, got %+v", result.Venues)
	}
	if len(result.Events) != 1 {
		t.Errorf("expected 1 event, got %+v", result.Events)
	}
	if result.Meta.TotalVenues != 1 || result.Meta.TotalEvents != 1 {
		t.Errorf("meta counts wrong: %+v", result.Meta)
	}
}

func TestSearchValidationMatrix(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{
			"no filters",
			"/search",
			"At least one filter must be provided: venue_type, event_type, event_category, start_date, or coordinate bounds",
		},
		{
			"partial bounds",
			"/search?min_lat=-23",
			"all coordinate bounds must be provided together: min_lat, max_lat, min_lon, max_lon",
		},
		{
			"degenerate bounds",
			"/search?min_lat=-22&max_lat=-22&min_lon=-48&max_lon=-47",
			"min_lat must be less than max_lat",
		},
		{
			"malformed start date",
			"/search?start_date=15-11-2025",
			"start_date must be in format 'YYYY-MM-DD' (e.g., '2025-11-15')",
		},
		{
			"malformed end date",
			"/search?start_date=2025-11-15&end_date=soon",
			"end_date must be in format 'YYYY-MM-DD' (e.g., '2025-11-20')",
		},
		{
			"end without start",
			"/search?end_date=2025-11-20",
			"end_date requires start_date to be provided",
		},
		{
			"start after end",
			"/search?start_date=2025-11-20&end_date=2025-11-15",
			"start_date must be less than or equal to end_date",
		},
		{
			"bad return type",
			"/search?venue_type=Bar&return_type=all",
			"return_type must be one of 'both', 'events', 'venues'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodGet, tt.path, nil)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
			}
			if msg := errorMessage(t, recorder); msg != tt.message {
				t.Errorf("unexpected message %q, want %q", msg, tt.message)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if recorder.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

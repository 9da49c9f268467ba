package handlers

import (
	"net/http"
	"time"

	"eventify/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search runs the combined venue/event search. All filters are ANDed;
// at least one must be provided.
// GET /search
func (h *SearchHandler) Search(c *gin.Context) {
	bounds, err := parseOptionalBounds(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate := optionalQuery(c, "start_date")
	endDate := optionalQuery(c, "end_date")

	if startDate != nil {
		start, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be in format 'YYYY-MM-DD' (e.g., '2025-11-15')"})
			return
		}
		if endDate != nil {
			end, err := time.Parse("2006-01-02", *endDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be in format 'YYYY-MM-DD' (e.g., '2025-11-20')"})
				return
			}
			if start.After(end) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be less than or equal to end_date"})
				return
			}
		}
	} else if endDate != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date requires start_date to be provided"})
		return
	}

	venueType := optionalQuery(c, "venue_type")
	eventType := optionalQuery(c, "event_type")
	eventCategory := optionalQuery(c, "event_category")

	if venueType == nil && eventType == nil && eventCategory == nil && startDate == nil && bounds == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one filter must be provided: venue_type, event_type, event_category, start_date, or coordinate bounds"})
		return
	}

	skip, limit, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	returnType, err := services.ParseReturnType(c.DefaultQuery("return_type", string(services.ReturnBoth)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := services.SearchFilters{
		VenueType:     venueType,
		EventType:     eventType,
		EventCategory: eventCategory,
		StartDate:     startDate,
		EndDate:       endDate,
		Bounds:        bounds,
		Skip:          skip,
		Limit:         limit,
		ReturnType:    returnType,
	}

	result, err := h.searchService.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

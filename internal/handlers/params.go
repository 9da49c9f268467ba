package handlers

import (
	"errors"
	"strconv"

	"eventify/internal/geo"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// parsePagination reads skip/limit query params with defaults of 0/100.
// skip must be >= 0, limit must be between 1 and 1000.
func parsePagination(c *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, errors.New("skip must be an integer >= 0")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, errors.New("limit must be an integer between 1 and 1000")
	}

	return skip, limit, nil
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}

// optionalQuery returns nil when the query param is absent or empty.
func optionalQuery(c *gin.Context, key string) *string {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	return &value
}

// parseRequiredBounds reads the four bounding-box params; all must be
// present and each axis must satisfy min < max.
func parseRequiredBounds(c *gin.Context) (*geo.Bounds, error) {
	bounds, err := parseOptionalBounds(c)
	if err != nil {
		return nil, err
	}
	if bounds == nil {
		return nil, errors.New("all coordinate bounds must be provided: min_lat, max_lat, min_lon, max_lon")
	}
	return bounds, nil
}

// parseOptionalBounds returns nil when no bounding-box param is present.
// Providing some but not all four params is an error, as is min >= max
// on either axis or a coordinate outside the valid lat/lon range.
func parseOptionalBounds(c *gin.Context) (*geo.Bounds, error) {
	params := []string{"min_lat", "max_lat", "min_lon", "max_lon"}
	values := make(map[string]float64, len(params))
	present := 0

	for _, key := range params {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New(key + " must be a number")
		}
		values[key] = value
		present++
	}

	if present == 0 {
		return nil, nil
	}
	if present < len(params) {
		return nil, errors.New("all coordinate bounds must be provided together: min_lat, max_lat, min_lon, max_lon")
	}

	bounds := &geo.Bounds{
		MinLat: values["min_lat"],
		MaxLat: values["max_lat"],
		MinLon: values["min_lon"],
		MaxLon: values["max_lon"],
	}

	if bounds.MinLat < -90 || bounds.MaxLat > 90 {
		return nil, errors.New("latitude bounds must be between -90 and 90")
	}
	if bounds.MinLon < -180 || bounds.MaxLon > 180 {
		return nil, errors.New("longitude bounds must be between -180 and 180")
	}
	if bounds.MinLat >= bounds.MaxLat {
		return nil, errors.New("min_lat must be less than max_lat")
	}
	if bounds.MinLon >= bounds.MaxLon {
		return nil, errors.New("min_lon must be less than max_lon")
	}

	return bounds, nil
}

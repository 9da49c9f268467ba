package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"eventify/internal/models"
	"eventify/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VenueHandler struct {
	repo *repository.Repository
}

func NewVenueHandler(repo *repository.Repository) *VenueHandler {
	return &VenueHandler{repo: repo}
}

// List returns all venues with pagination and an optional neighborhood
// filter
// GET /venues
func (h *VenueHandler) List(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var neighborhoodID *uint
	if raw := c.Query("neighborhood_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "neighborhood_id must be a positive integer"})
			return
		}
		id := uint(parsed)
		neighborhoodID = &id
	}

	venues, err := h.repo.ListVenues(c.Request.Context(), skip, limit, neighborhoodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}

	c.JSON(http.StatusOK, venues)
}

// ListByBounds returns venues located inside a bounding box
// GET /venues/map
func (h *VenueHandler) ListByBounds(c *gin.Context) {
	bounds, err := parseRequiredBounds(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skip, limit, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venues, err := h.repo.ListVenuesByBounds(c.Request.Context(), *bounds, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}

	c.JSON(http.StatusOK, venues)
}

// Get returns a venue by ID
// GET /venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.repo.GetVenueByID(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Venue with id %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venue"})
		return
	}

	c.JSON(http.StatusOK, venue)
}

// Create creates a new venue
// POST /venues
func (h *VenueHandler) Create(c *gin.Context) {
	var req models.VenueCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.repo.CreateVenue(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// Update applies a partial update to a venue
// PUT /venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.VenueUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.repo.UpdateVenue(c.Request.Context(), id, &req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Venue with id %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update venue"})
		return
	}

	c.JSON(http.StatusOK, venue)
}

// Delete deletes a venue and, by cascade, its events
// DELETE /venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.repo.DeleteVenue(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete venue"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Venue with id %d not found", id)})
		return
	}

	c.Status(http.StatusNoContent)
}

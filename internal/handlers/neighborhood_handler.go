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

type NeighborhoodHandler struct {
	repo *repository.Repository
}

func NewNeighborhoodHandler(repo *repository.Repository) *NeighborhoodHandler {
	return &NeighborhoodHandler{repo: repo}
}

// List returns all neighborhoods with pagination
// GET /neighborhoods
func (h *NeighborhoodHandler) List(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	neighborhoods, err := h.repo.ListNeighborhoods(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch neighborhoods"})
		return
	}

	c.JSON(http.StatusOK, neighborhoods)
}

// ListByBounds returns neighborhoods intersecting a bounding box
// GET /neighborhoods/map
func (h *NeighborhoodHandler) ListByBounds(c *gin.Context) {
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

	neighborhoods, err := h.repo.ListNeighborhoodsByBounds(c.Request.Context(), *bounds, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch neighborhoods"})
		return
	}

	c.JSON(http.StatusOK, neighborhoods)
}

// VenueTypes returns the distinct venue types within a neighborhood
// GET /neighborhoods/venue-types
func (h *NeighborhoodHandler) VenueTypes(c *gin.Context) {
	raw := c.Query("neighborhood_id")
	neighborhoodID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "neighborhood_id must be a positive integer"})
		return
	}

	types, err := h.repo.VenueTypes(c.Request.Context(), uint(neighborhoodID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venue types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// Get returns a neighborhood by ID
// GET /neighborhoods/:id
func (h *NeighborhoodHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	neighborhood, err := h.repo.GetNeighborhoodByID(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Neighborhood with id %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch neighborhood"})
		return
	}

	c.JSON(http.StatusOK, neighborhood)
}

// Create creates a new neighborhood
// POST /neighborhoods
func (h *NeighborhoodHandler) Create(c *gin.Context) {
	var req models.NeighborhoodCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	neighborhood, err := h.repo.CreateNeighborhood(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create neighborhood"})
		return
	}

	c.JSON(http.StatusCreated, neighborhood)
}

// Update applies a partial update to a neighborhood
// PUT /neighborhoods/:id
func (h *NeighborhoodHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.NeighborhoodUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	neighborhood, err := h.repo.UpdateNeighborhood(c.Request.Context(), id, &req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Neighborhood with id %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update neighborhood"})
		return
	}

	c.JSON(http.StatusOK, neighborhood)
}

// Delete deletes a neighborhood and, by cascade, its venues and their
// events
// DELETE /neighborhoods/:id
func (h *NeighborhoodHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.repo.DeleteNeighborhood(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete neighborhood"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Neighborhood with id %d not found", id)})
		return
	}

	c.Status(http.StatusNoContent)
}

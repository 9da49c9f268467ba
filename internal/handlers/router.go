package handlers

import (
	"eventify/internal/repository"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API routes onto the router. Static segments
// (/map, /venue-types) are registered alongside the :id routes; gin
// resolves them with priority over the parameter.
func RegisterRoutes(router *gin.Engine, repo *repository.Repository, searchService *services.SearchService) {
	neighborhoodHandler := NewNeighborhoodHandler(repo)
	venueHandler := NewVenueHandler(repo)
	eventHandler := NewEventHandler(repo)
	searchHandler := NewSearchHandler(searchService)

	neighborhoods := router.Group("/neighborhoods")
	{
		neighborhoods.GET("", neighborhoodHandler.List)
		neighborhoods.POST("", neighborhoodHandler.Create)
		neighborhoods.GET("/map", neighborhoodHandler.ListByBounds)
		neighborhoods.GET("/venue-types", neighborhoodHandler.VenueTypes)
		neighborhoods.GET("/:id", neighborhoodHandler.Get)
		neighborhoods.PUT("/:id", neighborhoodHandler.Update)
		neighborhoods.DELETE("/:id", neighborhoodHandler.Delete)
	}

	venues := router.Group("/venues")
	{
		venues.GET("", venueHandler.List)
		venues.POST("", venueHandler.Create)
		venues.GET("/map", venueHandler.ListByBounds)
		venues.GET("/:id", venueHandler.Get)
		venues.PUT("/:id", venueHandler.Update)
		venues.DELETE("/:id", venueHandler.Delete)
	}

	events := router.Group("/events")
	{
		events.GET("", eventHandler.List)
		events.POST("", eventHandler.Create)
		events.GET("/map", eventHandler.ListByBounds)
		events.GET("/:id", eventHandler.Get)
		events.PUT("/:id", eventHandler.Update)
		events.DELETE("/:id", eventHandler.Delete)
	}

	router.GET("/search", searchHandler.Search)
}

package repository

import (
	"context"

	"eventify/internal/geo"
	"eventify/internal/models"

	"gorm.io/gorm"
)

// GetEventByID retrieves an event by ID
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents retrieves events with pagination and optional venue and
// category filters
func (r *Repository) ListEvents(ctx context.Context, skip, limit int, venueID *uint, category *string) ([]models.Event, error) {
	query := r.db.WithContext(ctx).Order("id")
	if venueID != nil {
		query = query.Where("venue_id = ?", *venueID)
	}
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	events := []models.Event{}
	if err := query.Offset(skip).Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListEventsByBounds retrieves events whose venue's point lies inside the
// bounding box. Events without a venue are excluded.
func (r *Repository) ListEventsByBounds(ctx context.Context, bounds geo.Bounds, skip, limit int) ([]models.Event, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Find(&venues).Error; err != nil {
		return nil, err
	}

	venueIDs := []uint{}
	for _, venue := range venues {
		if bounds.ContainsPoint(venue.Coordinates) {
			venueIDs = append(venueIDs, venue.ID)
		}
	}

	events := []models.Event{}
	if len(venueIDs) == 0 {
		return events, nil
	}

	err := r.db.WithContext(ctx).
		Where("venue_id IN ?", venueIDs).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates a new event
func (r *Repository) CreateEvent(ctx context.Context, req *models.EventCreate) (*models.Event, error) {
	event := models.Event{
		VenueID:     req.VenueID,
		Name:        req.Name,
		Type:        req.Type,
		Category:    req.Category,
		Keywords:    req.Keywords,
		Description: req.Description,
		PriceRange:  req.PriceRange,
		Date:        req.Date,
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent applies a partial update; only fields present in the
// request body are overwritten
func (r *Repository) UpdateEvent(ctx context.Context, id uint, req *models.EventUpdate) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}

	req.Apply(&event)
	if err := r.db.WithContext(ctx).Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent deletes an event. Returns false when the id does not exist.
func (r *Repository) DeleteEvent(ctx context.Context, id uint) (bool, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).Delete(&event).Error; err != nil {
		return false, err
	}
	return true, nil
}

package repository

import (
	"context"

	"eventify/internal/geo"
	"eventify/internal/models"

	"gorm.io/gorm"
)

// GetVenueByID retrieves a venue by ID
func (r *Repository) GetVenueByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// ListVenues retrieves venues with pagination and an optional
// neighborhood filter
func (r *Repository) ListVenues(ctx context.Context, skip, limit int, neighborhoodID *uint) ([]models.Venue, error) {
	query := r.db.WithContext(ctx).Order("id")
	if neighborhoodID != nil {
		query = query.Where("neighborhood_id = ?", *neighborhoodID)
	}

	venues := []models.Venue{}
	if err := query.Offset(skip).Limit(limit).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// ListVenuesByBounds retrieves venues whose coordinate point lies inside
// the bounding box
func (r *Repository) ListVenuesByBounds(ctx context.Context, bounds geo.Bounds, skip, limit int) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}

	matched := []models.Venue{}
	for _, venue := range venues {
		if bounds.ContainsPoint(venue.Coordinates) {
			matched = append(matched, venue)
		}
	}
	return paginate(matched, skip, limit), nil
}

// VenueTypes retrieves the distinct venue types present in a
// neighborhood. Order is unspecified.
func (r *Repository) VenueTypes(ctx context.Context, neighborhoodID uint) ([]string, error) {
	types := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Venue{}).
		Where("neighborhood_id = ?", neighborhoodID).
		Distinct().
		Pluck("type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// CreateVenue creates a new venue
func (r *Repository) CreateVenue(ctx context.Context, req *models.VenueCreate) (*models.Venue, error) {
	venue := models.Venue{
		Name:           req.Name,
		Type:           req.Type,
		Description:    req.Description,
		Stars:          req.Stars,
		Coordinates:    req.Coordinates,
		Schedule:       req.Schedule,
		NeighborhoodID: req.NeighborhoodID,
	}
	if err := r.db.WithContext(ctx).Create(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// UpdateVenue applies a partial update; only fields present in the
// request body are overwritten
func (r *Repository) UpdateVenue(ctx context.Context, id uint, req *models.VenueUpdate) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}

	req.Apply(&venue)
	if err := r.db.WithContext(ctx).Save(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// DeleteVenue deletes a venue together with its events. Returns false
// when the id does not exist.
func (r *Repository) DeleteVenue(ctx context.Context, id uint) (bool, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, id).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

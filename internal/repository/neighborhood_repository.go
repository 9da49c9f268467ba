package repository

import (
	"context"

	"eventify/internal/geo"
	"eventify/internal/models"

	"gorm.io/gorm"
)

// GetNeighborhoodByID retrieves a neighborhood by ID
func (r *Repository) GetNeighborhoodByID(ctx context.Context, id uint) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	if err := r.db.WithContext(ctx).First(&neighborhood, id).Error; err != nil {
		return nil, err
	}
	return &neighborhood, nil
}

// ListNeighborhoods retrieves neighborhoods with pagination
func (r *Repository) ListNeighborhoods(ctx context.Context, skip, limit int) ([]models.Neighborhood, error) {
	neighborhoods := []models.Neighborhood{}
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&neighborhoods).Error
	if err != nil {
		return nil, err
	}
	return neighborhoods, nil
}

// ListNeighborhoodsByBounds retrieves neighborhoods whose polygon has at
// least one vertex inside the bounding box
func (r *Repository) ListNeighborhoodsByBounds(ctx context.Context, bounds geo.Bounds, skip, limit int) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	if err := r.db.WithContext(ctx).Order("id").Find(&neighborhoods).Error; err != nil {
		return nil, err
	}

	matched := []models.Neighborhood{}
	for _, neighborhood := range neighborhoods {
		if bounds.IntersectsPolygon(neighborhood.Coordinates) {
			matched = append(matched, neighborhood)
		}
	}
	return paginate(matched, skip, limit), nil
}

// CreateNeighborhood creates a new neighborhood
func (r *Repository) CreateNeighborhood(ctx context.Context, req *models.NeighborhoodCreate) (*models.Neighborhood, error) {
	neighborhood := models.Neighborhood{
		Description: req.Description,
		Coordinates: req.Coordinates,
	}
	if err := r.db.WithContext(ctx).Create(&neighborhood).Error; err != nil {
		return nil, err
	}
	return &neighborhood, nil
}

// UpdateNeighborhood applies a partial update; only fields present in the
// request body are overwritten
func (r *Repository) UpdateNeighborhood(ctx context.Context, id uint, req *models.NeighborhoodUpdate) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	if err := r.db.WithContext(ctx).First(&neighborhood, id).Error; err != nil {
		return nil, err
	}

	req.Apply(&neighborhood)
	if err := r.db.WithContext(ctx).Save(&neighborhood).Error; err != nil {
		return nil, err
	}
	return &neighborhood, nil
}

// DeleteNeighborhood deletes a neighborhood together with its venues and
// their events. Returns false when the id does not exist.
func (r *Repository) DeleteNeighborhood(ctx context.Context, id uint) (bool, error) {
	var neighborhood models.Neighborhood
	err := r.db.WithContext(ctx).First(&neighborhood, id).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venueIDs []uint
		if err := tx.Model(&models.Venue{}).
			Where("neighborhood_id = ?", id).
			Pluck("id", &venueIDs).Error; err != nil {
			return err
		}
		if len(venueIDs) > 0 {
			if err := tx.Where("venue_id IN ?", venueIDs).Delete(&models.Event{}).Error; err != nil {
				return err
			}
			if err := tx.Where("neighborhood_id = ?", id).Delete(&models.Venue{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&neighborhood).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

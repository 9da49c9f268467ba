package models

import (
	"errors"
	"time"
)

// Neighborhood is a city region bounded by a polygon of [lat, lon] pairs.
// Deleting a neighborhood deletes its venues (and their events).
type Neighborhood struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Coordinates [][]float64 `gorm:"serializer:json;not null" json:"coordinates"`
	CreatedAt   time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Neighborhood) TableName() string {
	return "neighborhoods"
}

// NeighborhoodCreate is the request body for creating a neighborhood
type NeighborhoodCreate struct {
	Description string      `json:"description" binding:"required"`
	Coordinates [][]float64 `json:"coordinates" binding:"required"`
}

func (r *NeighborhoodCreate) Validate() error {
	return validatePolygon(r.Coordinates)
}

// NeighborhoodUpdate is the request body for a partial update. Omitted
// fields keep their stored values.
type NeighborhoodUpdate struct {
	Description Optional[string]      `json:"description"`
	Coordinates Optional[[][]float64] `json:"coordinates"`
}

func (r *NeighborhoodUpdate) Validate() error {
	if r.Description.Set {
		if r.Description.Value == nil || *r.Description.Value == "" {
			return errors.New("description cannot be empty")
		}
	}
	if r.Coordinates.Set {
		if r.Coordinates.Value == nil {
			return ErrInvalidPolygon
		}
		if err := validatePolygon(*r.Coordinates.Value); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes the supplied fields onto the stored entity. The request
// must have been validated first.
func (r *NeighborhoodUpdate) Apply(neighborhood *Neighborhood) {
	if r.Description.Set {
		neighborhood.Description = *r.Description.Value
	}
	if r.Coordinates.Set {
		neighborhood.Coordinates = *r.Coordinates.Value
	}
}

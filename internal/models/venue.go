package models

import (
	"errors"
	"time"
)

// Venue is a point-located place (bar, restaurant, club) that may belong
// to a neighborhood and may host events. Deleting a venue deletes its
// events.
type Venue struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null;index" json:"name"`
	Type           string    `gorm:"size:50;not null" json:"type"`
	Description    *string   `gorm:"type:text" json:"description"`
	Stars          *float64  `json:"stars"` // rating out of 10
	Coordinates    []float64 `gorm:"serializer:json;not null" json:"coordinates"` // [latitude, longitude]
	Schedule       *string   `gorm:"size:20" json:"schedule"`
	NeighborhoodID *uint     `gorm:"index" json:"neighborhood_id"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// VenueCreate is the request body for creating a venue
type VenueCreate struct {
	Name           string    `json:"name" binding:"required"`
	Type           string    `json:"type" binding:"required"`
	Description    *string   `json:"description"`
	Stars          *float64  `json:"stars"`
	Coordinates    []float64 `json:"coordinates" binding:"required"`
	Schedule       *string   `json:"schedule"`
	NeighborhoodID *uint     `json:"neighborhood_id"`
}

func (r *VenueCreate) Validate() error {
	if err := validatePoint(r.Coordinates); err != nil {
		return err
	}
	if r.Stars != nil {
		if err := validateStars(*r.Stars); err != nil {
			return err
		}
	}
	if r.Schedule != nil {
		if err := validateSchedule(*r.Schedule); err != nil {
			return err
		}
	}
	return nil
}

// VenueUpdate is the request body for a partial update. Omitted fields
// keep their stored values; nullable fields may be cleared with an
// explicit null.
type VenueUpdate struct {
	Name           Optional[string]    `json:"name"`
	Type           Optional[string]    `json:"type"`
	Description    Optional[string]    `json:"description"`
	Stars          Optional[float64]   `json:"stars"`
	Coordinates    Optional[[]float64] `json:"coordinates"`
	Schedule       Optional[string]    `json:"schedule"`
	NeighborhoodID Optional[uint]      `json:"neighborhood_id"`
}

func (r *VenueUpdate) Validate() error {
	if r.Name.Set && (r.Name.Value == nil || *r.Name.Value == "") {
		return errors.New("name cannot be empty")
	}
	if r.Type.Set && (r.Type.Value == nil || *r.Type.Value == "") {
		return errors.New("type cannot be empty")
	}
	if r.Stars.Set && r.Stars.Value != nil {
		if err := validateStars(*r.Stars.Value); err != nil {
			return err
		}
	}
	if r.Coordinates.Set {
		if r.Coordinates.Value == nil {
			return ErrInvalidPoint
		}
		if err := validatePoint(*r.Coordinates.Value); err != nil {
			return err
		}
	}
	if r.Schedule.Set && r.Schedule.Value != nil {
		if err := validateSchedule(*r.Schedule.Value); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes the supplied fields onto the stored entity. The request
// must have been validated first.
func (r *VenueUpdate) Apply(venue *Venue) {
	if r.Name.Set {
		venue.Name = *r.Name.Value
	}
	if r.Type.Set {
		venue.Type = *r.Type.Value
	}
	if r.Description.Set {
		venue.Description = r.Description.Value
	}
	if r.Stars.Set {
		venue.Stars = r.Stars.Value
	}
	if r.Coordinates.Set {
		venue.Coordinates = *r.Coordinates.Value
	}
	if r.Schedule.Set {
		venue.Schedule = r.Schedule.Value
	}
	if r.NeighborhoodID.Set {
		venue.NeighborhoodID = r.NeighborhoodID.Value
	}
}

package models

import (
	"errors"
	"time"
)

// Event is something happening on a date, optionally hosted by a venue.
// The date is stored as a 'YYYY-MM-DD' string; the data layer does not
// enforce the format.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VenueID     *uint     `gorm:"index" json:"venue_id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Type        *string   `gorm:"size:50" json:"type"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Keywords    []string  `gorm:"serializer:json" json:"keywords"`
	Description *string   `gorm:"type:text" json:"description"`
	PriceRange  []float64 `gorm:"serializer:json" json:"price_range"` // [min_price, max_price]
	Date        string    `gorm:"size:50;not null" json:"date"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// EventCreate is the request body for creating an event
type EventCreate struct {
	VenueID     *uint     `json:"venue_id"`
	Name        string    `json:"name" binding:"required"`
	Type        *string   `json:"type"`
	Category    string    `json:"category" binding:"required"`
	Keywords    []string  `json:"keywords"`
	Description *string   `json:"description"`
	PriceRange  []float64 `json:"price_range"`
	Date        string    `json:"date" binding:"required"`
}

// Validate also normalizes an empty price_range list to "absent".
func (r *EventCreate) Validate() error {
	normalized, err := normalizePriceRange(r.PriceRange)
	if err != nil {
		return err
	}
	r.PriceRange = normalized
	return nil
}

// EventUpdate is the request body for a partial update. Omitted fields
// keep their stored values; nullable fields may be cleared with an
// explicit null.
type EventUpdate struct {
	VenueID     Optional[uint]      `json:"venue_id"`
	Name        Optional[string]    `json:"name"`
	Type        Optional[string]    `json:"type"`
	Category    Optional[string]    `json:"category"`
	Keywords    Optional[[]string]  `json:"keywords"`
	Description Optional[string]    `json:"description"`
	PriceRange  Optional[[]float64] `json:"price_range"`
	Date        Optional[string]    `json:"date"`
}

func (r *EventUpdate) Validate() error {
	if r.Name.Set && (r.Name.Value == nil || *r.Name.Value == "") {
		return errors.New("name cannot be empty")
	}
	if r.Category.Set && (r.Category.Value == nil || *r.Category.Value == "") {
		return errors.New("category cannot be empty")
	}
	if r.Date.Set && (r.Date.Value == nil || *r.Date.Value == "") {
		return errors.New("date cannot be empty")
	}
	if r.PriceRange.Set && r.PriceRange.Value != nil {
		if _, err := normalizePriceRange(*r.PriceRange.Value); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes the supplied fields onto the stored entity. The request
// must have been validated first.
func (r *EventUpdate) Apply(event *Event) {
	if r.VenueID.Set {
		event.VenueID = r.VenueID.Value
	}
	if r.Name.Set {
		event.Name = *r.Name.Value
	}
	if r.Type.Set {
		event.Type = r.Type.Value
	}
	if r.Category.Set {
		event.Category = *r.Category.Value
	}
	if r.Keywords.Set {
		if r.Keywords.Value == nil {
			event.Keywords = nil
		} else {
			event.Keywords = *r.Keywords.Value
		}
	}
	if r.Description.Set {
		event.Description = r.Description.Value
	}
	if r.PriceRange.Set {
		if r.PriceRange.Value == nil {
			event.PriceRange = nil
		} else {
			normalized, _ := normalizePriceRange(*r.PriceRange.Value)
			event.PriceRange = normalized
		}
	}
	if r.Date.Set {
		event.Date = *r.Date.Value
	}
}

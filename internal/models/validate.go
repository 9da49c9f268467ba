package models

import (
	"errors"
	"time"
)

var (
	ErrInvalidPoint      = errors.New("coordinates must contain exactly [latitude, longitude]")
	ErrInvalidPolygon    = errors.New("coordinates must contain at least one [latitude, longitude] pair")
	ErrInvalidPriceRange = errors.New("price_range must contain exactly [min_price, max_price]")
	ErrInvalidStars      = errors.New("stars must be between 0 and 10")
	ErrInvalidSchedule   = errors.New("schedule must be in format 'HH:MM:SS'")
)

// validatePoint checks a single [lat, lon] pair.
func validatePoint(point []float64) error {
	if len(point) != 2 {
		return ErrInvalidPoint
	}
	return nil
}

// validatePolygon checks an ordered list of [lat, lon] pairs. Order
// defines the boundary; self-intersection is not checked.
func validatePolygon(polygon [][]float64) error {
	if len(polygon) == 0 {
		return ErrInvalidPolygon
	}
	for _, pair := range polygon {
		if len(pair) != 2 {
			return ErrInvalidPolygon
		}
	}
	return nil
}

func validateStars(stars float64) error {
	if stars < 0 || stars > 10 {
		return ErrInvalidStars
	}
	return nil
}

func validateSchedule(schedule string) error {
	if _, err := time.Parse("15:04:05", schedule); err != nil {
		return ErrInvalidSchedule
	}
	return nil
}

// normalizePriceRange maps an empty list to "absent" and requires
// exactly two entries otherwise. The min <= max convention is not
// enforced at this layer.
func normalizePriceRange(priceRange []float64) ([]float64, error) {
	if len(priceRange) == 0 {
		return nil, nil
	}
	if len(priceRange) != 2 {
		return nil, ErrInvalidPriceRange
	}
	return priceRange, nil
}

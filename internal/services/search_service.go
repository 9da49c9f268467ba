package services

import (
	"context"
	"fmt"

	"eventify/internal/geo"
	"eventify/internal/models"

	"gorm.io/gorm"
)

// noMatchingVenueID is an impossible venue id used when event filters
// matched nothing: filtering on it keeps the venue query composition
// uniform while guaranteeing an empty result.
const noMatchingVenueID = -1

// ReturnType selects which entity lists a search returns.
type ReturnType string

const (
	ReturnBoth   ReturnType = "both"
	ReturnEvents ReturnType = "events"
	ReturnVenues ReturnType = "venues"
)

func ParseReturnType(value string) (ReturnType, error) {
	switch ReturnType(value) {
	case ReturnBoth, ReturnEvents, ReturnVenues:
		return ReturnType(value), nil
	}
	return "", fmt.Errorf("return_type must be one of 'both', 'events', 'venues'")
}

// SearchFilters carries the combined search criteria. All filters are
// ANDed together. The caller validates bounds and dates before invoking
// the service.
type SearchFilters struct {
	VenueType     *string
	EventType     *string
	EventCategory *string
	StartDate     *string
	EndDate       *string
	Bounds        *geo.Bounds
	Skip          int
	Limit         int
	ReturnType    ReturnType
}

// HasEventFilters reports whether any event-side filter is set.
func (f *SearchFilters) HasEventFilters() bool {
	return f.EventType != nil || f.EventCategory != nil || f.StartDate != nil
}

// HasVenueFilters reports whether any venue-side filter is set.
func (f *SearchFilters) HasVenueFilters() bool {
	return f.VenueType != nil
}

// FiltersApplied echoes the filters back in the search metadata.
type FiltersApplied struct {
	VenueType     *string `json:"venue_type"`
	EventType     *string `json:"event_type"`
	EventCategory *string `json:"event_category"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	ReturnType    string  `json:"return_type"`
}

type SearchMeta struct {
	TotalVenues    int            `json:"total_venues"`
	TotalEvents    int            `json:"total_events"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

type SearchResult struct {
	Venues []models.Venue `json:"venues"`
	Events []models.Event `json:"events"`
	Meta   SearchMeta     `json:"meta"`
}

// SearchService composes venue and event predicates across both tables:
// event filters constrain which venues qualify (a venue qualifies when it
// has at least one matching event), venue filters and bounds then narrow
// the venue set.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Search runs the combined search and assembles the result according to
// the requested return type. In "both" mode pagination applies to the
// venue page; the events returned are the full matching set for exactly
// that page of venues.
func (s *SearchService) Search(ctx context.Context, filters SearchFilters) (*SearchResult, error) {
	venues := []models.Venue{}
	events := []models.Event{}
	var err error

	switch filters.ReturnType {
	case ReturnEvents:
		err = s.buildEventQuery(ctx, filters).
			Order("id").
			Offset(filters.Skip).
			Limit(filters.Limit).
			Find(&events).Error
		if err != nil {
			return nil, err
		}
	case ReturnVenues:
		venues, err = s.findVenues(ctx, filters)
		if err != nil {
			return nil, err
		}
	default:
		venues, err = s.findVenues(ctx, filters)
		if err != nil {
			return nil, err
		}
		events, err = s.eventsForVenues(ctx, venues, filters)
		if err != nil {
			return nil, err
		}
	}

	return &SearchResult{
		Venues: venues,
		Events: events,
		Meta: SearchMeta{
			TotalVenues: len(venues),
			TotalEvents: len(events),
			FiltersApplied: FiltersApplied{
				VenueType:     filters.VenueType,
				EventType:     filters.EventType,
				EventCategory: filters.EventCategory,
				StartDate:     filters.StartDate,
				EndDate:       filters.EndDate,
				ReturnType:    string(filters.ReturnType),
			},
		},
	}, nil
}

// buildEventQuery composes the event-side predicate: type, category and
// date filters ANDed together.
func (s *SearchService) buildEventQuery(ctx context.Context, filters SearchFilters) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Event{})

	if filters.EventType != nil {
		query = query.Where("type = ?", *filters.EventType)
	}
	if filters.EventCategory != nil {
		query = query.Where("category = ?", *filters.EventCategory)
	}
	query = s.applyDateFilter(query, filters)

	return query
}

// applyDateFilter narrows events to an exact date, or to an inclusive
// range when end_date is also set. String comparison on 'YYYY-MM-DD' is
// chronological for well-formed dates.
func (s *SearchService) applyDateFilter(query *gorm.DB, filters SearchFilters) *gorm.DB {
	if filters.StartDate == nil {
		return query
	}
	if filters.EndDate != nil {
		return query.Where("date >= ? AND date <= ?", *filters.StartDate, *filters.EndDate)
	}
	return query.Where("date = ?", *filters.StartDate)
}

// findVenues derives the venue candidate set and applies venue-side
// filters. When event filters are set, only venues owning at least one
// matching event qualify; the full matching event set is fetched first
// because venue eligibility cannot be decided from a venue-side query
// alone.
func (s *SearchService) findVenues(ctx context.Context, filters SearchFilters) ([]models.Venue, error) {
	query := s.db.WithContext(ctx).Model(&models.Venue{}).Order("id")

	if filters.HasEventFilters() {
		var matchingEvents []models.Event
		if err := s.buildEventQuery(ctx, filters).Find(&matchingEvents).Error; err != nil {
			return nil, err
		}

		venueIDs := venueIDsFromEvents(matchingEvents)
		if len(venueIDs) == 0 {
			query = query.Where("id = ?", noMatchingVenueID)
		} else {
			query = query.Where("id IN ?", venueIDs)
		}
	}

	if filters.VenueType != nil {
		query = query.Where("type = ?", *filters.VenueType)
	}

	venues := []models.Venue{}
	if filters.Bounds == nil {
		if err := query.Offset(filters.Skip).Limit(filters.Limit).Find(&venues).Error; err != nil {
			return nil, err
		}
		return venues, nil
	}

	// The point predicate runs in memory, so pagination must wait until
	// after the bounds filter.
	var candidates []models.Venue
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	for _, venue := range candidates {
		if filters.Bounds.ContainsPoint(venue.Coordinates) {
			venues = append(venues, venue)
		}
	}
	return paginate(venues, filters.Skip, filters.Limit), nil
}

// eventsForVenues fetches the events belonging to the given venue page,
// re-applying the event predicate when event filters are set. The event
// list is not independently paginated here.
func (s *SearchService) eventsForVenues(ctx context.Context, venues []models.Venue, filters SearchFilters) ([]models.Event, error) {
	events := []models.Event{}
	if len(venues) == 0 {
		return events, nil
	}

	venueIDs := make([]uint, 0, len(venues))
	for _, venue := range venues {
		venueIDs = append(venueIDs, venue.ID)
	}

	query := s.db.WithContext(ctx).Model(&models.Event{})
	if filters.HasEventFilters() {
		query = s.buildEventQuery(ctx, filters)
	}

	if err := query.Where("venue_id IN ?", venueIDs).Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// venueIDsFromEvents extracts the distinct non-null venue ids.
func venueIDsFromEvents(events []models.Event) []uint {
	seen := map[uint]bool{}
	ids := []uint{}
	for _, event := range events {
		if event.VenueID == nil || seen[*event.VenueID] {
			continue
		}
		seen[*event.VenueID] = true
		ids = append(ids, *event.VenueID)
	}
	return ids
}

// paginate applies skip/limit to venues filtered in memory.
func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
	"igrejaconnect/internal/ports/output"
)

// CatalogService lists events and applies the in-memory filters the app
// offers: free-text search, category chips and the temporal bucket.
type CatalogService struct {
	eventRepo output.EventRepository
	userRepo  output.UserRepository
	loc       *time.Location
	now       func() time.Time
}

func NewCatalogService(
	eventRepo output.EventRepository,
	userRepo output.UserRepository,
	loc *time.Location,
) *CatalogService {
	return &CatalogService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *CatalogService) ListEvents(ctx context.Context, filter input.EventFilter) ([]entities.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return filterEvents(events, filter, s.now().In(s.loc)), nil
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *CatalogService) CreateEvent(ctx context.Context, actorID string, event *entities.Event) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if strings.TrimSpace(event.Title) == "" || event.Date.IsZero() {
		return domain.ErrMissingFields
	}
	if !domain.ValidCategory(event.Category) {
		return domain.ErrInvalidCategory
	}
	return s.eventRepo.Create(ctx, event)
}

func (s *CatalogService) UpdateEvent(ctx context.Context, actorID, id string, patch entities.EventPatch) (*entities.Event, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		return nil, domain.ErrInvalidCategory
	}
	return s.eventRepo.Update(ctx, id, patch)
}

func (s *CatalogService) requireAdmin(ctx context.Context, actorID string) error {
	if actorID == "" {
		return domain.ErrAuthRequired
	}
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.ErrNotAdmin
	}
	return nil
}

// filterEvents applies search, category and bucket filters, then sorts by
// date: ascending, except descending for the past bucket so the most recent
// past event comes first. The bucket cutoff is the start of now's day; an
// event dated today is upcoming regardless of its time-of-day fields.
func filterEvents(events []entities.Event, filter input.EventFilter, now time.Time) []entities.Event {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	out := make([]entities.Event, 0, len(events))
	for _, e := range events {
		if query != "" && !matchesQuery(&e, query) {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		switch filter.Bucket {
		case domain.BucketUpcoming:
			if e.Date.Before(today) {
				continue
			}
		case domain.BucketPast:
			if !e.Date.Before(today) {
				continue
			}
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if filter.Bucket == domain.BucketPast {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func matchesQuery(e *entities.Event, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Description), query) ||
		strings.Contains(strings.ToLower(e.Location), query)
}

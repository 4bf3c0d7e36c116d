package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
	"igrejaconnect/internal/ports/output"
)

const prayerListLimit = 100

// PrayerService handles prayer request submission and listing.
type PrayerService struct {
	prayerRepo output.PrayerRequestRepository
	userRepo   output.UserRepository
}

func NewPrayerService(
	prayerRepo output.PrayerRequestRepository,
	userRepo output.UserRepository,
) *PrayerService {
	return &PrayerService{prayerRepo: prayerRepo, userRepo: userRepo}
}

func (s *PrayerService) Submit(ctx context.Context, authorID string, in input.PrayerInput) (*entities.PrayerRequest, error) {
	if authorID == "" {
		return nil, domain.ErrAuthRequired
	}
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" || body == "" {
		return nil, domain.ErrMissingFields
	}
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("fetch author: %w", err)
	}
	request := &entities.PrayerRequest{
		AuthorID:   authorID,
		AuthorName: author.DisplayName,
		Title:      title,
		Body:       body,
		Anonymous:  in.Anonymous,
		CreatedAt:  time.Now(),
	}
	if err := s.prayerRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create prayer request: %w", err)
	}
	return request, nil
}

// List returns the latest requests with author names blanked on anonymous
// entries.
func (s *PrayerService) List(ctx context.Context) ([]entities.PrayerRequest, error) {
	requests, err := s.prayerRepo.List(ctx, prayerListLimit)
	if err != nil {
		return nil, fmt.Errorf("list prayer requests: %w", err)
	}
	for i := range requests {
		if requests[i].Anonymous {
			requests[i].AuthorName = ""
		}
	}
	return requests, nil
}

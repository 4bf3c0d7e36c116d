package application

import (
	"context"
	"fmt"
	"time"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/ports/input"
	"igrejaconnect/internal/ports/output"
)

// ParticipationService flips a user's RSVP on an event, keeping the event's
// participant set/count and the user's subscribed-event set in agreement.
// The two writes form a saga without a shared transaction: when the second
// write fails the first stays applied and the caller gets a
// domain.PartialWriteError to prompt a retry.
type ParticipationService struct {
	eventRepo output.EventRepository
	userRepo  output.UserRepository
	loc       *time.Location
	now       func() time.Time
}

func NewParticipationService(
	eventRepo output.EventRepository,
	userRepo output.UserRepository,
	loc *time.Location,
) *ParticipationService {
	return &ParticipationService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *ParticipationService) Toggle(ctx context.Context, userID, eventID string) (input.ToggleResult, error) {
	var res input.ToggleResult
	if userID == "" {
		return res, domain.ErrAuthRequired
	}

	// Membership is decided on a fresh read of the event, never on state a
	// client cached earlier.
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return res, err
	}
	if event.IsPast(s.now().In(s.loc)) {
		return res, domain.ErrEventClosed
	}

	if event.HasParticipant(userID) {
		count, err := s.eventRepo.RemoveParticipant(ctx, eventID, userID)
		if err != nil {
			return res, fmt.Errorf("remove participant: %w", err)
		}
		if err := s.userRepo.RemoveSubscribedEvent(ctx, userID, eventID); err != nil {
			return res, &domain.PartialWriteError{Applied: "event", Failed: "user", Err: err}
		}
		return input.ToggleResult{Joined: false, ParticipantCount: count}, nil
	}

	count, err := s.eventRepo.AddParticipant(ctx, eventID, userID)
	if err != nil {
		return res, fmt.Errorf("add participant: %w", err)
	}
	if err := s.userRepo.AddSubscribedEvent(ctx, userID, eventID); err != nil {
		return res, &domain.PartialWriteError{Applied: "event", Failed: "user", Err: err}
	}
	return input.ToggleResult{Joined: true, ParticipantCount: count}, nil
}

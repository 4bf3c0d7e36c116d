package output

import (
	"context"
	"time"

	"igrejaconnect/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// List returns all events ordered by date ascending.
	List(ctx context.Context) ([]entities.Event, error)
	// FindByDateRange returns events with from <= date < to, ascending.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error)
	Update(ctx context.Context, id string, patch entities.EventPatch) (*entities.Event, error)
	// AddParticipant adds userID to the participant set if absent and bumps
	// the counter, as one atomic remote operation. It returns the counter
	// after the write and is a no-op (same return) when already present.
	AddParticipant(ctx context.Context, eventID, userID string) (int, error)
	// RemoveParticipant removes userID from the participant set if present
	// and decrements the counter, clamped at zero. Same contract as
	// AddParticipant otherwise.
	RemoveParticipant(ctx context.Context, eventID, userID string) (int, error)
}

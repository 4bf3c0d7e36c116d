package input

import (
	"context"

	"igrejaconnect/internal/domain/entities"
)

// EventFilter narrows a catalog listing in memory. Zero values mean "no
// filtering" for that dimension; Bucket defaults to all.
type EventFilter struct {
	Query    string // case-insensitive substring over title/description/location
	Category string
	Bucket   string // domain.BucketAll / BucketUpcoming / BucketPast
}

type CatalogUseCase interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	// CreateEvent and UpdateEvent are the administrative surface; actorID
	// must belong to an admin.
	CreateEvent(ctx context.Context, actorID string, event *entities.Event) error
	UpdateEvent(ctx context.Context, actorID, id string, patch entities.EventPatch) (*entities.Event, error)
}

package output

import (
	"context"

	"igrejaconnect/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	// Update merges the non-nil patch fields and stamps UpdatedAt.
	Update(ctx context.Context, id string, patch entities.ProfilePatch) (*entities.User, error)
	// AddSubscribedEvent and RemoveSubscribedEvent are idempotent single
	// remote operations on the subscribed-event set.
	AddSubscribedEvent(ctx context.Context, userID, eventID string) error
	RemoveSubscribedEvent(ctx context.Context, userID, eventID string) error
	SetPushToken(ctx context.Context, userID, token string) error
}

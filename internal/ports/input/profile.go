package input

import (
	"context"

	"igrejaconnect/internal/domain/entities"
)

type ProfileUseCase interface {
	Get(ctx context.Context, userID string) (*entities.User, error)
	Update(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.User, error)
}

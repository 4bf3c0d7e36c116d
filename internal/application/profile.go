package application

import (
	"context"
	"fmt"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/output"
)

// ProfileService reads and partially updates profile documents. A display
// name change is also pushed to the identity provider so both copies agree.
type ProfileService struct {
	userRepo output.UserRepository
	provider output.IdentityProvider
	state    *AuthState
}

func NewProfileService(
	userRepo output.UserRepository,
	provider output.IdentityProvider,
	state *AuthState,
) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		provider: provider,
		state:    state,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*entities.User, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	return s.userRepo.FindByID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.User, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	if patch.IsZero() {
		return nil, domain.ErrMissingFields
	}
	user, err := s.userRepo.Update(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if patch.DisplayName != nil {
		if err := s.provider.UpdateDisplayName(ctx, userID, *patch.DisplayName); err != nil {
			return nil, fmt.Errorf("sync display name: %w", err)
		}
	}
	if s.state.Current() == userID {
		s.state.Set(userID, user)
	}
	return user, nil
}

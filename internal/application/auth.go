package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
	"igrejaconnect/internal/ports/output"
)

// AuthService is the identity provider adapter: it orchestrates the hosted
// provider, the profile store, the push gateway and the shared auth state.
type AuthService struct {
	provider output.IdentityProvider
	userRepo output.UserRepository
	push     output.PushGateway
	state    *AuthState
}

func NewAuthService(
	provider output.IdentityProvider,
	userRepo output.UserRepository,
	push output.PushGateway,
	state *AuthState,
) *AuthService {
	s := &AuthService{
		provider: provider,
		userRepo: userRepo,
		push:     push,
		state:    state,
	}
	// Remote sign-outs (account disabled, session revoked) must reach the
	// same observable the presentation layer watches.
	provider.OnSessionRevoked(state.Clear)
	return s
}

func (s *AuthService) Register(ctx context.Context, in input.RegisterInput) (*entities.User, string, error) {
	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		return nil, "", domain.ErrMissingFields
	}

	uid, err := s.provider.Register(ctx, in.Email, in.Password)
	if err != nil {
		return nil, "", err
	}
	if err := s.provider.UpdateDisplayName(ctx, uid, displayName); err != nil {
		return nil, "", fmt.Errorf("update display name: %w", err)
	}

	now := time.Now()
	user := &entities.User{
		ID:          uid,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		DisplayName: displayName,
		Phone:       in.Phone,
		Address:     in.Address,
		Role:        domain.RoleMember,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create profile: %w", err)
	}

	s.registerPushToken(ctx, uid, in.PushToken)

	token, err := s.provider.IssueToken(uid)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.state.Set(uid, user)
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password, pushToken string) (*entities.User, string, error) {
	uid, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, "", fmt.Errorf("fetch profile: %w", err)
	}

	s.registerPushToken(ctx, uid, pushToken)

	token, err := s.provider.IssueToken(uid)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.state.Set(uid, user)
	return user, token, nil
}

// Logout invalidates the local session and drops the cached profile.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrAuthRequired
	}
	s.state.Clear(userID)
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	return s.provider.SendPasswordReset(ctx, email)
}

// registerPushToken stores the device token on the profile. Best-effort:
// a missing or invalid token, or a store failure, never fails the caller.
func (s *AuthService) registerPushToken(ctx context.Context, userID, token string) {
	if token == "" {
		return
	}
	if !s.push.ValidToken(token) {
		log.Printf("push: token inválido ignorado (user=%s)", userID)
		return
	}
	if err := s.userRepo.SetPushToken(ctx, userID, token); err != nil {
		log.Printf("push: falha ao registrar token (user=%s): %v", userID, err)
	}
}

package input

import (
	"context"

	"igrejaconnect/internal/domain/entities"
)

// RegisterInput carries everything the sign-up form collects. PushToken is
// optional and best-effort.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Phone       string
	Address     string
	PushToken   string
}

type AuthUseCase interface {
	// Register creates an identity plus its profile and returns the profile
	// and a session token.
	Register(ctx context.Context, in RegisterInput) (*entities.User, string, error)
	Login(ctx context.Context, email, password, pushToken string) (*entities.User, string, error)
	Logout(ctx context.Context, userID string) error
	ResetPassword(ctx context.Context, email string) error
}

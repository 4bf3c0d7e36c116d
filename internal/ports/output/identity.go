package output

import "context"

// IdentityProvider is the hosted auth provider behind the adapter: credential
// storage, session tokens, and password-reset dispatch. Implementations map
// their own failures onto the domain error taxonomy.
type IdentityProvider interface {
	// Register creates a new identity and returns its id.
	Register(ctx context.Context, email, password string) (string, error)
	// Authenticate verifies credentials and returns the identity id.
	Authenticate(ctx context.Context, email, password string) (string, error)
	UpdateDisplayName(ctx context.Context, userID, displayName string) error
	// SendPasswordReset dispatches an out-of-band reset e-mail.
	SendPasswordReset(ctx context.Context, email string) error
	IssueToken(userID string) (string, error)
	// VerifyToken returns the identity id carried by a session token.
	VerifyToken(token string) (string, error)
	// OnSessionRevoked registers a callback fired when the provider revokes a
	// session remotely (e.g. account disabled).
	OnSessionRevoked(fn func(userID string))
}

// Package identity implements the email/password auth provider: credential
// storage in PostgreSQL, bcrypt hashes, JWT session tokens and password
// reset dispatch. Failures are mapped onto the domain error taxonomy.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/ports/output"
)

const (
	minPasswordLength = 6
	maxLoginAttempts  = 5
	attemptWindow     = 15 * time.Minute
	uniqueViolation   = "23505"
)

var _ output.IdentityProvider = (*Provider)(nil)

type Provider struct {
	db       *pgxpool.Pool
	secret   []byte
	tokenTTL time.Duration

	mu         sync.Mutex
	attempts   map[string][]time.Time
	revokeSubs []func(userID string)
}

func NewProvider(db *pgxpool.Pool, secret string, tokenTTL time.Duration) *Provider {
	return &Provider{
		db:       db,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		attempts: make(map[string][]time.Time),
	}
}

func (p *Provider) Register(ctx context.Context, email, password string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if len(password) < minPasswordLength {
		return "", domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	_, err = p.db.Exec(ctx,
		`INSERT INTO identities (id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, now())`,
		id, email, string(hash),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", domain.ErrDuplicateEmail
		}
		return "", fmt.Errorf("insert identity: %w", err)
	}
	return id, nil
}

func (p *Provider) Authenticate(ctx context.Context, email, password string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if p.rateLimited(email) {
		return "", domain.ErrRateLimited
	}

	var (
		id       string
		hash     string
		disabled bool
	)
	err = p.db.QueryRow(ctx,
		`SELECT id, password_hash, disabled FROM identities WHERE email = $1`,
		email,
	).Scan(&id, &hash, &disabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get identity: %w", err)
	}
	if disabled {
		return "", domain.ErrDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		p.recordFailure(email)
		return "", domain.ErrWrongCredentials
	}
	p.clearFailures(email)
	return id, nil
}

func (p *Provider) UpdateDisplayName(ctx context.Context, userID, displayName string) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE identities SET display_name = $2 WHERE id = $1`,
		userID, displayName,
	)
	if err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SendPasswordReset dispatches a reset e-mail out of band. The provider
// reveals whether the e-mail is registered, matching the hosted provider's
// default behavior; the HTTP layer decides what to expose to clients.
func (p *Provider) SendPasswordReset(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	var id string
	err = p.db.QueryRow(ctx, `SELECT id FROM identities WHERE email = $1`, email).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get identity: %w", err)
	}

	token, err := p.signToken(id, "reset", time.Hour)
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}
	// TODO: hook a real mailer; for now the delivery channel is the log.
	log.Printf("📧 Redefinição de senha solicitada (email=%s token=%s)", email, token)
	return nil
}

func (p *Provider) IssueToken(userID string) (string, error) {
	return p.signToken(userID, "session", p.tokenTTL)
}

func (p *Provider) VerifyToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrAuthRequired
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrAuthRequired
	}
	if purpose, _ := claims["purpose"].(string); purpose != "session" {
		return "", domain.ErrAuthRequired
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrAuthRequired
	}
	return sub, nil
}

func (p *Provider) OnSessionRevoked(fn func(userID string)) {
	p.mu.Lock()
	p.revokeSubs = append(p.revokeSubs, fn)
	p.mu.Unlock()
}

// Disable deactivates an account and revokes its sessions.
func (p *Provider) Disable(ctx context.Context, userID string) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE identities SET disabled = true WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("disable identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	p.mu.Lock()
	subs := append([]func(string){}, p.revokeSubs...)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(userID)
	}
	return nil
}

func (p *Provider) signToken(userID, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     userID,
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString(p.secret)
}

func (p *Provider) rateLimited(email string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	cutoff := time.Now().Add(-attemptWindow)
	recent := p.attempts[email][:0]
	for _, at := range p.attempts[email] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	p.attempts[email] = recent
	return len(recent) >= maxLoginAttempts
}

func (p *Provider) recordFailure(email string) {
	p.mu.Lock()
	p.attempts[email] = append(p.attempts[email], time.Now())
	p.mu.Unlock()
}

func (p *Provider) clearFailures(email string) {
	p.mu.Lock()
	delete(p.attempts, email)
	p.mu.Unlock()
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.ErrInvalidEmail
	}
	return email, nil
}

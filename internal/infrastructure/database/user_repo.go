package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository persists profile documents in the users table. The
// subscribed-event relation is a text[] column mutated with idempotent
// single-statement set operations.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, display_name, phone, address, role,
	subscribed_event_ids, push_token, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, display_name, phone, address, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.DisplayName, user.Phone, user.Address, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update merges the non-nil patch fields and stamps updated_at. Nil fields
// arrive as NULL and COALESCE keeps the stored value.
func (r *UserRepository) Update(ctx context.Context, id string, patch entities.ProfilePatch) (*entities.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET
			display_name = COALESCE($2, display_name),
			phone        = COALESCE($3, phone),
			address      = COALESCE($4, address),
			updated_at   = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, patch.DisplayName, patch.Phone, patch.Address,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) AddSubscribedEvent(ctx context.Context, userID, eventID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET
			subscribed_event_ids = CASE
				WHEN $2 = ANY(subscribed_event_ids) THEN subscribed_event_ids
				ELSE array_append(subscribed_event_ids, $2)
			END,
			updated_at = now()
		 WHERE id = $1`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("add subscribed event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) RemoveSubscribedEvent(ctx context.Context, userID, eventID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET
			subscribed_event_ids = array_remove(subscribed_event_ids, $2),
			updated_at = now()
		 WHERE id = $1`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("remove subscribed event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetPushToken(ctx context.Context, userID, token string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET push_token = $2, updated_at = now() WHERE id = $1`,
		userID, token,
	)
	if err != nil {
		return fmt.Errorf("set push token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.Phone, &u.Address, &u.Role,
		&u.SubscribedEventIDs, &u.PushToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository persists event documents. The participant relation lives
// in a text[] column next to its denormalized counter; both are mutated
// together in a single UPDATE so the pair never drifts within one write.
type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, date, start_time, end_time,
	location, address, category, image_url, participant_count,
	participant_ids, responsible, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	responsible, err := json.Marshal(event.Responsible)
	if err != nil {
		return fmt.Errorf("marshal responsible: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO events (id, title, description, date, start_time, end_time,
			location, address, category, image_url, responsible, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		event.ID, event.Title, event.Description, event.Date, event.StartTime,
		event.EndTime, event.Location, event.Address, event.Category,
		event.ImageURL, responsible, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE date >= $1 AND date < $2
		 ORDER BY date ASC`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list events by date range: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) Update(ctx context.Context, id string, patch entities.EventPatch) (*entities.Event, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE events SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			date        = COALESCE($4, date),
			start_time  = COALESCE($5, start_time),
			end_time    = COALESCE($6, end_time),
			location    = COALESCE($7, location),
			address     = COALESCE($8, address),
			category    = COALESCE($9, category),
			image_url   = COALESCE($10, image_url),
			updated_at  = now()
		 WHERE id = $1
		 RETURNING `+eventColumns,
		id, patch.Title, patch.Description, patch.Date, patch.StartTime,
		patch.EndTime, patch.Location, patch.Address, patch.Category,
		patch.ImageURL,
	)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// AddParticipant appends userID to the participant set and bumps the counter
// in one statement. Already a member: no change, current counter returned,
// so a retried toggle converges instead of double-counting.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`UPDATE events SET
			participant_ids = CASE
				WHEN $2 = ANY(participant_ids) THEN participant_ids
				ELSE array_append(participant_ids, $2)
			END,
			participant_count = CASE
				WHEN $2 = ANY(participant_ids) THEN participant_count
				ELSE participant_count + 1
			END,
			updated_at = now()
		 WHERE id = $1
		 RETURNING participant_count`,
		eventID, userID,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("add participant: %w", err)
	}
	return count, nil
}

// RemoveParticipant removes userID and decrements the counter, clamped at
// zero in case a prior inconsistency left it low. Not a member: no change.
func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`UPDATE events SET
			participant_count = CASE
				WHEN $2 = ANY(participant_ids) THEN GREATEST(participant_count - 1, 0)
				ELSE participant_count
			END,
			participant_ids = array_remove(participant_ids, $2),
			updated_at = now()
		 WHERE id = $1
		 RETURNING participant_count`,
		eventID, userID,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("remove participant: %w", err)
	}
	return count, nil
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	var responsible []byte
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.Location, &e.Address, &e.Category, &e.ImageURL,
		&e.ParticipantCount, &e.ParticipantIDs, &responsible,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(responsible) > 0 {
		if err := json.Unmarshal(responsible, &e.Responsible); err != nil {
			return nil, fmt.Errorf("unmarshal responsible: %w", err)
		}
	}
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	var events []entities.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

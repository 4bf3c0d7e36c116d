package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/output"
)

var _ output.PrayerRequestRepository = (*PrayerRequestRepository)(nil)

type PrayerRequestRepository struct {
	db *pgxpool.Pool
}

func NewPrayerRequestRepository(db *pgxpool.Pool) *PrayerRequestRepository {
	return &PrayerRequestRepository{db: db}
}

func (r *PrayerRequestRepository) Create(ctx context.Context, request *entities.PrayerRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO prayer_requests (id, author_id, author_name, title, body, anonymous, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		request.ID, request.AuthorID, request.AuthorName, request.Title,
		request.Body, request.Anonymous, request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prayer request: %w", err)
	}
	return nil
}

func (r *PrayerRequestRepository) List(ctx context.Context, limit int) ([]entities.PrayerRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, author_id, author_name, title, body, anonymous, created_at
		 FROM prayer_requests
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list prayer requests: %w", err)
	}
	defer rows.Close()

	var requests []entities.PrayerRequest
	for rows.Next() {
		var p entities.PrayerRequest
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Body, &p.Anonymous, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prayer request: %w", err)
		}
		requests = append(requests, p)
	}
	return requests, rows.Err()
}

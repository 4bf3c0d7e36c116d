package output

import (
	"context"

	"igrejaconnect/internal/domain/entities"
)

type PrayerRequestRepository interface {
	Create(ctx context.Context, request *entities.PrayerRequest) error
	// List returns the newest requests first, at most limit entries.
	List(ctx context.Context, limit int) ([]entities.PrayerRequest, error)
}

package input

import (
	"context"

	"igrejaconnect/internal/domain/entities"
)

type PrayerInput struct {
	Title     string
	Body      string
	Anonymous bool
}

type PrayerUseCase interface {
	Submit(ctx context.Context, authorID string, in PrayerInput) (*entities.PrayerRequest, error)
	List(ctx context.Context) ([]entities.PrayerRequest, error)
}

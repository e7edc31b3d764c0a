package port

import (
	"context"
	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingEventsPort публикует события об изменениях объявлений для
// внешних потребителей. Публикация best-effort: ошибки логируются
// вызывающим, но не отменяют уже выполненную операцию.
type ListingEventsPort interface {
	ListingCreated(ctx context.Context, listing domain.Listing) error
	ListingUpdated(ctx context.Context, id uuid.UUID, fields []domain.Field) error
	StatusChanged(ctx context.Context, id uuid.UUID, status domain.Status) error
	ListingDeleted(ctx context.Context, id uuid.UUID) error
}

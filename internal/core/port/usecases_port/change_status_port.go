package usecases_port

import (
	"context"
	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
)

type ChangeListingStatusUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, status domain.Status) error
}

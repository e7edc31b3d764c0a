package usecases_port

import (
	"context"
	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
)

type UpdateListingUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, patch domain.ListingPatch) (domain.Listing, error)
}

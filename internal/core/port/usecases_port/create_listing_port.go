package usecases_port

import (
	"context"
	"listing-admin-service/internal/core/domain"
)

type CreateListingUseCase interface {
	Execute(ctx context.Context, form domain.ListingForm) (domain.Listing, error)
}

package usecases_port

import (
	"context"
	"listing-admin-service/internal/core/domain"
)

type FindListingsUseCase interface {
	Execute(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
}

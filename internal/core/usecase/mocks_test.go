package usecase_test

import (
	"context"

	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
)

// mockListingStorage - мок ListingStoragePort на функциональных полях.
type mockListingStorage struct {
	FindFunc         func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	InsertFunc       func(ctx context.Context, listing domain.Listing) (domain.Listing, error)
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, values map[domain.Field]any) error
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.Status) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockListingStorage) Find(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockListingStorage) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.Listing{}, nil
}

func (m *mockListingStorage) Insert(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, listing)
	}
	return listing, nil
}

func (m *mockListingStorage) UpdateFields(ctx context.Context, id uuid.UUID, values map[domain.Field]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, values)
	}
	return nil
}

func (m *mockListingStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockListingStorage) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockListingEvents - мок ListingEventsPort, считает вызовы.
type mockListingEvents struct {
	CreatedCalls []domain.Listing
	UpdatedCalls []uuid.UUID
	StatusCalls  []domain.Status
	DeletedCalls []uuid.UUID

	Err error
}

func (m *mockListingEvents) ListingCreated(ctx context.Context, listing domain.Listing) error {
	m.CreatedCalls = append(m.CreatedCalls, listing)
	return m.Err
}

func (m *mockListingEvents) ListingUpdated(ctx context.Context, id uuid.UUID, fields []domain.Field) error {
	m.UpdatedCalls = append(m.UpdatedCalls, id)
	return m.Err
}

func (m *mockListingEvents) StatusChanged(ctx context.Context, id uuid.UUID, status domain.Status) error {
	m.StatusCalls = append(m.StatusCalls, status)
	return m.Err
}

func (m *mockListingEvents) ListingDeleted(ctx context.Context, id uuid.UUID) error {
	m.DeletedCalls = append(m.DeletedCalls, id)
	return m.Err
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/session"
	"listing-admin-service/internal/core/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeListingStatusUseCase_Execute(t *testing.T) {
	t.Parallel()

	listingID := uuid.New()

	t.Run("success: status written and cache patched", func(t *testing.T) {
		t.Parallel()

		listSession := session.NewListSession()
		reqID := listSession.BeginLoad()
		require.True(t, listSession.CompleteLoad(reqID, []domain.Listing{
			{ID: listingID, Status: domain.StatusInProgress},
		}))

		storage := &mockListingStorage{}
		events := &mockListingEvents{}
		uc := usecase.NewChangeListingStatusUseCase(storage, events, listSession)

		err := uc.Execute(context.Background(), listingID, domain.StatusContractCompleted)
		require.NoError(t, err)

		snapshot := listSession.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, domain.StatusContractCompleted, snapshot[0].Status)
		assert.Equal(t, []domain.Status{domain.StatusContractCompleted}, events.StatusCalls)
	})

	t.Run("failure: illegal status rejected before storage", func(t *testing.T) {
		t.Parallel()

		storageCalled := false
		storage := &mockListingStorage{
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.Status) error {
				storageCalled = true
				return nil
			},
		}
		uc := usecase.NewChangeListingStatusUseCase(storage, &mockListingEvents{}, session.NewListSession())

		err := uc.Execute(context.Background(), listingID, "sold-out")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.False(t, storageCalled)
	})

	t.Run("failure: storage error leaves cache untouched", func(t *testing.T) {
		t.Parallel()

		listSession := session.NewListSession()
		reqID := listSession.BeginLoad()
		require.True(t, listSession.CompleteLoad(reqID, []domain.Listing{
			{ID: listingID, Status: domain.StatusInProgress},
		}))

		storage := &mockListingStorage{
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.Status) error {
				return errors.New("write failed")
			},
		}
		uc := usecase.NewChangeListingStatusUseCase(storage, &mockListingEvents{}, listSession)

		err := uc.Execute(context.Background(), listingID, domain.StatusContractCompleted)
		require.Error(t, err)

		snapshot := listSession.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, domain.StatusInProgress, snapshot[0].Status)
	})
}

func TestDeleteListingUseCase_Execute(t *testing.T) {
	t.Parallel()

	listingID := uuid.New()

	t.Run("success: row removed from cache, event published", func(t *testing.T) {
		t.Parallel()

		listSession := session.NewListSession()
		reqID := listSession.BeginLoad()
		require.True(t, listSession.CompleteLoad(reqID, []domain.Listing{{ID: listingID}}))

		events := &mockListingEvents{}
		uc := usecase.NewDeleteListingUseCase(&mockListingStorage{}, events, listSession)

		err := uc.Execute(context.Background(), listingID)
		require.NoError(t, err)
		assert.Empty(t, listSession.Snapshot())
		assert.Equal(t, []uuid.UUID{listingID}, events.DeletedCalls)
	})

	t.Run("failure: storage error keeps the row cached", func(t *testing.T) {
		t.Parallel()

		listSession := session.NewListSession()
		reqID := listSession.BeginLoad()
		require.True(t, listSession.CompleteLoad(reqID, []domain.Listing{{ID: listingID}}))

		storage := &mockListingStorage{
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				return domain.ErrListingNotFound
			},
		}
		uc := usecase.NewDeleteListingUseCase(storage, &mockListingEvents{}, listSession)

		err := uc.Execute(context.Background(), listingID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
		assert.Len(t, listSession.Snapshot(), 1)
	})
}

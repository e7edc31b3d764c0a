package usecase

import (
	"context"
	"fmt"

	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/port"
	"listing-admin-service/internal/core/session"

	"github.com/google/uuid"
)

// DeleteListingUseCase - окончательное удаление записи. Подтверждение
// пользователя - забота вызывающей стороны: сюда запрос приходит уже
// подтвержденным.
type DeleteListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	session *session.ListSession
}

func NewDeleteListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort, listSession *session.ListSession) *DeleteListingUseCase {
	return &DeleteListingUseCase{
		storage: storage,
		events:  events,
		session: listSession,
	}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": id.String(),
	})

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error during delete", err, nil)
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}

	uc.session.Remove(id)

	if uc.events != nil {
		if err := uc.events.ListingDeleted(ctx, id); err != nil {
			ucLogger.Error("Failed to publish listing deleted event", err, nil)
		}
	}

	ucLogger.Info("Use case finished: listing deleted", nil)
	return nil
}

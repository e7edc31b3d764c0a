package usecase

import (
	"context"
	"fmt"

	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"
	"listing-admin-service/internal/core/session"

	"github.com/google/uuid"
)

// ChangeListingStatusUseCase - переключение статуса одной записи.
// Допустимы ровно два значения статуса.
type ChangeListingStatusUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	session *session.ListSession
}

func NewChangeListingStatusUseCase(storage port.ListingStoragePort, events port.ListingEventsPort, listSession *session.ListSession) *ChangeListingStatusUseCase {
	return &ChangeListingStatusUseCase{
		storage: storage,
		events:  events,
		session: listSession,
	}
}

func (uc *ChangeListingStatusUseCase) Execute(ctx context.Context, id uuid.UUID, status domain.Status) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ChangeListingStatus",
		"listing_id": id.String(),
		"status":     string(status),
	})

	if !status.IsValid() {
		ucLogger.Warn("Rejected illegal status value", nil)
		return domain.ErrInvalidStatus
	}

	if err := uc.storage.UpdateStatus(ctx, id, status); err != nil {
		ucLogger.Error("Storage returned an error during status update", err, nil)
		return fmt.Errorf("failed to change status of listing %s: %w", id, err)
	}

	uc.session.SetStatus(id, status)

	if uc.events != nil {
		if err := uc.events.StatusChanged(ctx, id, status); err != nil {
			ucLogger.Error("Failed to publish status changed event", err, nil)
		}
	}

	ucLogger.Info("Use case finished: status changed", nil)
	return nil
}

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

// UpdateListingUseCase - инлайн-редактирование: к присутствующим в
// частичной форме полям применяются те же правила коэрции/NULL, что и
// при создании; остальные поля хранилище не трогает.
type UpdateListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	session *session.ListSession
}

func NewUpdateListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort, listSession *session.ListSession) *UpdateListingUseCase {
	return &UpdateListingUseCase{
		storage: storage,
		events:  events,
		session: listSession,
	}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, id uuid.UUID, patch domain.ListingPatch) (domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id.String(),
		"fields":     len(patch),
	})

	// Переходы editing(id) -> saving -> idle. Слот один: новое
	// редактирование просто заменяет предыдущее.
	uc.session.BeginEdit(id)
	defer uc.session.FinishEdit()

	// Категория записи неизменна и нужна для правил подавления полей.
	current, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load listing before update", err, nil)
		return domain.Listing{}, fmt.Errorf("failed to load listing %s: %w", id, err)
	}

	values, err := domain.NormalizeForUpdate(current.Category, patch)
	if err != nil {
		ucLogger.Warn("Update form rejected", port.Fields{"error": err.Error()})
		return domain.Listing{}, err
	}
	if len(values) == 0 {
		ucLogger.Debug("Nothing to update, patch is empty", nil)
		return current, nil
	}

	if err := uc.storage.UpdateFields(ctx, id, values); err != nil {
		// Локальный кэш не трогаем: операция провалилась целиком.
		ucLogger.Error("Storage returned an error during update", err, nil)
		return domain.Listing{}, fmt.Errorf("failed to update listing %s: %w", id, err)
	}

	uc.session.Merge(id, values)
	domain.ApplyValues(&current, values)

	if uc.events != nil {
		fields := make([]domain.Field, 0, len(values))
		for f := range values {
			fields = append(fields, f)
		}
		if err := uc.events.ListingUpdated(ctx, id, fields); err != nil {
			ucLogger.Error("Failed to publish listing updated event", err, nil)
		}
	}

	ucLogger.Info("Use case finished: listing updated", nil)
	return current, nil
}

package usecase

import (
	"context"
	"fmt"

	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"
	"listing-admin-service/internal/core/session"
)

// CreateListingUseCase - создание объявления: валидация обязательных
// полей, нормализация по схеме категории, вставка, патч кэша.
type CreateListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	session *session.ListSession
}

func NewCreateListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort, listSession *session.ListSession) *CreateListingUseCase {
	return &CreateListingUseCase{
		storage: storage,
		events:  events,
		session: listSession,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, form domain.ListingForm) (domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateListing",
		"category": form.Category,
	})

	// Валидация и нормализация до любого обращения к хранилищу:
	// подавленные схемой поля уходят в NULL, числа коэрцируются терпимо.
	listing, err := domain.NormalizeForCreate(form)
	if err != nil {
		ucLogger.Warn("Create form rejected", port.Fields{"error": err.Error()})
		return domain.Listing{}, err
	}

	saved, err := uc.storage.Insert(ctx, listing)
	if err != nil {
		ucLogger.Error("Storage returned an error during insert", err, nil)
		return domain.Listing{}, fmt.Errorf("failed to insert listing: %w", err)
	}

	// Локальное состояние меняем только после успеха хранилища.
	uc.session.Prepend(saved)

	if uc.events != nil {
		if err := uc.events.ListingCreated(ctx, saved); err != nil {
			// Запись уже сохранена - ошибку публикации не возвращаем.
			ucLogger.Error("Failed to publish listing created event", err, nil)
		}
	}

	ucLogger.Info("Use case finished: listing created", port.Fields{"listing_id": saved.ID.String()})
	return saved, nil
}

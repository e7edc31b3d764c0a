package usecase

import (
	"context"
	"fmt"

	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"
	"listing-admin-service/internal/core/session"
)

// FindListingsUseCase инкапсулирует загрузку списка объявлений по
// фильтру (категория / ключевое слово) с обновлением сессионного кэша.
type FindListingsUseCase struct {
	storage port.ListingStoragePort
	session *session.ListSession
}

func NewFindListingsUseCase(storage port.ListingStoragePort, listSession *session.ListSession) *FindListingsUseCase {
	return &FindListingsUseCase{
		storage: storage,
		session: listSession,
	}
}

// Execute выполняет один запрос к хранилищу (без ретраев). При ошибке
// кэш очищается: прежний список под новым фильтром вводил бы в
// заблуждение. Поздний ответ на устаревший запрос отбрасывается.
func (uc *FindListingsUseCase) Execute(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	filter = filter.Normalized()
	ucLogger := logger.WithFields(port.Fields{
		"use_case":       "FindListings",
		"category":       string(filter.Category),
		"keyword_search": filter.IsKeywordSearch(),
	})

	requestID := uc.session.BeginLoad()
	ucLogger.Debug("Use case started: loading listings", port.Fields{"request_id": requestID})

	rows, err := uc.storage.Find(ctx, filter)
	if err != nil {
		if uc.session.FailLoad(requestID) {
			ucLogger.Error("Storage returned an error, cache cleared", err, nil)
		} else {
			ucLogger.Warn("Stale failed load discarded", port.Fields{"request_id": requestID})
		}
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}

	if !uc.session.CompleteLoad(requestID, rows) {
		ucLogger.Warn("Stale load response discarded, newer request in flight", port.Fields{
			"request_id": requestID,
		})
		return rows, nil
	}

	ucLogger.Info("Use case finished: listings loaded", port.Fields{"total": len(rows)})
	return rows, nil
}

package port

import (
	"context"
	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingStoragePort - контракт хранилища записей объявлений.
// Все операции выполняются ровно один раз, без ретраев: ошибка
// хранилища возвращается вызывающему как есть.
type ListingStoragePort interface {
	// Find возвращает записи по фильтру, всегда упорядоченные по
	// убыванию created_at.
	Find(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)

	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)

	// Insert сохраняет новую запись и возвращает ее с назначенными
	// хранилищем id и created_at.
	Insert(ctx context.Context, listing domain.Listing) (domain.Listing, error)

	// UpdateFields пишет только перечисленные поля; значение nil
	// означает NULL. Отсутствующие в карте поля не трогаются.
	UpdateFields(ctx context.Context, id uuid.UUID, values map[domain.Field]any) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error

	Delete(ctx context.Context, id uuid.UUID) error
}

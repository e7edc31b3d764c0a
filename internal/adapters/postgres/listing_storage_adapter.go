package postgres

import (
	"context"
	"errors"
	"fmt"

	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// listingColumns - полный набор колонок таблицы listings в порядке,
// который ожидает scanListing.
const listingColumns = `
	id, category, address, land_area_m2, gross_area_m2, price_manwon,
	floor, maintenance, options, premium, bldg_use, contact, note,
	contract_date, expiry_date, status, created_at`

// ListingStorageAdapter реализует ListingStoragePort для PostgreSQL.
type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

// NewListingStorageAdapter создает новый экземпляр адаптера.
func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

// Find возвращает записи по фильтру, всегда по убыванию created_at.
func (a *ListingStorageAdapter) Find(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	whereClause, args := applyListingFilter(filter)

	sql := fmt.Sprintf(`
		SELECT %s
		FROM listings
		%s
		ORDER BY created_at DESC`, listingColumns, whereClause)

	rows, err := a.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listing rows: %w", err)
	}

	return listings, nil
}

func (a *ListingStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE id = $1`, listingColumns)

	row := a.pool.QueryRow(ctx, sql, id)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, domain.ErrListingNotFound
		}
		return domain.Listing{}, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	return listing, nil
}

// Insert сохраняет запись; id и created_at назначает база.
func (a *ListingStorageAdapter) Insert(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	sql := `
		INSERT INTO listings (
			category, address, land_area_m2, gross_area_m2, price_manwon,
			floor, maintenance, options, premium, bldg_use, contact, note,
			contract_date, expiry_date, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING id, created_at`

	err := a.pool.QueryRow(ctx, sql,
		listing.Category, listing.Address, listing.LandAreaM2, listing.GrossAreaM2,
		listing.PriceManwon, listing.Floor, listing.Maintenance, listing.Options,
		listing.Premium, listing.BldgUse, listing.Contact, listing.Note,
		listing.ContractDate, listing.ExpiryDate, listing.Status,
	).Scan(&listing.ID, &listing.CreatedAt)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("failed to insert listing: %w", err)
	}

	return listing, nil
}

// UpdateFields пишет только перечисленные поля (nil -> NULL).
func (a *ListingStorageAdapter) UpdateFields(ctx context.Context, id uuid.UUID, values map[domain.Field]any) error {
	if len(values) == 0 {
		return nil
	}

	setClause, args := applyUpdateValues(values)
	sql := fmt.Sprintf(`UPDATE listings SET %s WHERE id = $%d`, setClause, len(args)+1)
	args = append(args, id)

	tag, err := a.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	tag, err := a.pool.Exec(ctx, `UPDATE listings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status of listing %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// scanListing читает одну строку в доменную запись.
func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.Category, &l.Address, &l.LandAreaM2, &l.GrossAreaM2,
		&l.PriceManwon, &l.Floor, &l.Maintenance, &l.Options, &l.Premium,
		&l.BldgUse, &l.Contact, &l.Note, &l.ContractDate, &l.ExpiryDate,
		&l.Status, &l.CreatedAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}
	return l, nil
}

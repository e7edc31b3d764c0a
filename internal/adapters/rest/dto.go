package rest

import (
	"time"

	"listing-admin-service/internal/core/domain"
)

// LoginRequest - тело POST /api/v1/login
type LoginRequest struct {
	Password string `json:"password"`
}

// CategoryResponse - описание одной категории для клиента:
// тег плюс разрешенные схемой списки полей.
type CategoryResponse struct {
	ID             string   `json:"id"`
	CreationFields []string `json:"creation_fields"`
	DisplayColumns []string `json:"display_columns"`
}

// CategoriesResponse - тело GET /api/v1/categories
type CategoriesResponse struct {
	Data []CategoryResponse `json:"data"`
}

// CreateListingRequest - тело POST /api/v1/listings. Все значения
// приходят как строки (так их отдает форма), коэрцией занимается ядро.
type CreateListingRequest struct {
	Category     string `json:"category"`
	Address      string `json:"address"`
	PriceManwon  string `json:"price_manwon"`
	LandAreaM2   string `json:"land_area_m2"`
	GrossAreaM2  string `json:"gross_area_m2"`
	Floor        string `json:"floor"`
	Maintenance  string `json:"maintenance"`
	Options      string `json:"options"`
	Premium      string `json:"premium"`
	BldgUse      string `json:"bldg_use"`
	Contact      string `json:"contact"`
	Note         string `json:"note"`
	ContractDate string `json:"contract_date"`
	ExpiryDate   string `json:"expiry_date"`
}

func (r CreateListingRequest) toForm() domain.ListingForm {
	return domain.ListingForm{
		Category:     r.Category,
		Address:      r.Address,
		PriceManwon:  r.PriceManwon,
		LandAreaM2:   r.LandAreaM2,
		GrossAreaM2:  r.GrossAreaM2,
		Floor:        r.Floor,
		Maintenance:  r.Maintenance,
		Options:      r.Options,
		Premium:      r.Premium,
		BldgUse:      r.BldgUse,
		Contact:      r.Contact,
		Note:         r.Note,
		ContractDate: r.ContractDate,
		ExpiryDate:   r.ExpiryDate,
	}
}

// ChangeStatusRequest - тело PUT /api/v1/listings/{id}/status
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ListingResponse - одна запись в ответах. Неприменимые поля - null,
// price_per_pyeong всегда присутствует ("-" если не вычислим).
type ListingResponse struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Address        string   `json:"address"`
	LandAreaM2     *float64 `json:"land_area_m2"`
	GrossAreaM2    *float64 `json:"gross_area_m2"`
	PriceManwon    *string  `json:"price_manwon"`
	PricePerPyeong string   `json:"price_per_pyeong"`
	Floor          *string  `json:"floor"`
	Maintenance    *string  `json:"maintenance"`
	Options        *string  `json:"options"`
	Premium        *string  `json:"premium"`
	BldgUse        *string  `json:"bldg_use"`
	Contact        *string  `json:"contact"`
	Note           *string  `json:"note"`
	ContractDate   *string  `json:"contract_date"`
	ExpiryDate     *string  `json:"expiry_date"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
}

// FindListingsResponse - тело GET /api/v1/listings: записи плюс
// разрешенный набор колонок для активного режима.
type FindListingsResponse struct {
	Columns []string          `json:"columns"`
	Total   int               `json:"total"`
	Data    []ListingResponse `json:"data"`
}

func toListingResponse(l domain.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID.String(),
		Category:       string(l.Category),
		Address:        l.Address,
		LandAreaM2:     l.LandAreaM2,
		GrossAreaM2:    l.GrossAreaM2,
		PriceManwon:    l.PriceManwon,
		PricePerPyeong: domain.PricePerPyeong(l.LandAreaM2, l.PriceManwon),
		Floor:          l.Floor,
		Maintenance:    l.Maintenance,
		Options:        l.Options,
		Premium:        l.Premium,
		BldgUse:        l.BldgUse,
		Contact:        l.Contact,
		Note:           l.Note,
		ContractDate:   formatDate(l.ContractDate),
		ExpiryDate:     formatDate(l.ExpiryDate),
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func fieldNames(fields []domain.Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return names
}

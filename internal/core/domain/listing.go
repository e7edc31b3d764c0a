package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status объявления: ровно два допустимых значения.
type Status string

const (
	StatusInProgress        Status = "in-progress"
	StatusContractCompleted Status = "contract-completed"
)

// IsValid проверяет значение статуса.
func (s Status) IsValid() bool {
	return s == StatusInProgress || s == StatusContractCompleted
}

// Listing - запись объявления. Неприменимые для категории поля всегда
// nil (NULL в хранилище), никогда не пустая строка: так отображение
// "значение или тире" и семантика категорий остаются согласованными.
type Listing struct {
	ID       uuid.UUID
	Category Category
	Address  string

	LandAreaM2  *float64
	GrossAreaM2 *float64

	// PriceManwon хранится как текст: принимает форматированные строки
	// с разделителями и составные значения вида "5000/120".
	PriceManwon *string

	// Floor - свободный текст: бывают значения вроде "반지하" (полуподвал).
	Floor       *string
	Maintenance *string
	Options     *string
	Premium     *string
	BldgUse     *string
	Contact     *string
	Note        *string

	ContractDate *time.Time
	ExpiryDate   *time.Time

	Status Status

	// CreatedAt назначается хранилищем при вставке, неизменяемо.
	// Дефолтный порядок выдачи - по убыванию этого поля.
	CreatedAt time.Time
}

// ListingForm - сырая форма создания: все значения как ввел пользователь.
type ListingForm struct {
	Category     string
	Address      string
	PriceManwon  string
	LandAreaM2   string
	GrossAreaM2  string
	Floor        string
	Maintenance  string
	Options      string
	Premium      string
	BldgUse      string
	Contact      string
	Note         string
	ContractDate string
	ExpiryDate   string
}

// ListingPatch - частичная форма инлайн-редактирования. Присутствие
// ключа означает "поле было в форме"; отсутствующие поля хранилище
// не трогает. Пустое значение присутствующего поля становится NULL.
type ListingPatch map[Field]string

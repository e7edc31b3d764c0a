package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate - терпимый парсинг календарной даты формы. Как и у чисел,
// ошибка парсинга деградирует поле в nil.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func textOrNil(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeForCreate валидирует форму создания и строит запись с учетом
// схемы категории: каждое поле, помеченное Suppressed, принудительно
// NULL - что бы ни пришло в форме. Статус по умолчанию in-progress.
func NormalizeForCreate(form ListingForm) (Listing, error) {
	category := Category(strings.TrimSpace(form.Category))
	if category == "" {
		return Listing{}, ValidationError{Field: FieldCategory}
	}
	profile, err := SchemaFor(category)
	if err != nil {
		return Listing{}, err
	}
	if strings.TrimSpace(form.Address) == "" {
		return Listing{}, ValidationError{Field: FieldAddress}
	}

	listing := Listing{
		Category: category,
		Address:  strings.TrimSpace(form.Address),
		Status:   StatusInProgress,

		PriceManwon:  textOrNil(form.PriceManwon),
		Contact:      textOrNil(form.Contact),
		Note:         textOrNil(form.Note),
		ContractDate: ParseDate(form.ContractDate),
		ExpiryDate:   ParseDate(form.ExpiryDate),
	}

	if !profile.IsSuppressed(FieldLandAreaM2) {
		listing.LandAreaM2 = ParseNumeric(form.LandAreaM2)
	}
	if !profile.IsSuppressed(FieldGrossAreaM2) {
		listing.GrossAreaM2 = ParseNumeric(form.GrossAreaM2)
	}
	if !profile.IsSuppressed(FieldFloor) {
		listing.Floor = textOrNil(form.Floor)
	}
	if !profile.IsSuppressed(FieldMaintenance) {
		listing.Maintenance = textOrNil(form.Maintenance)
	}
	if !profile.IsSuppressed(FieldOptions) {
		listing.Options = textOrNil(form.Options)
	}
	if !profile.IsSuppressed(FieldPremium) {
		listing.Premium = textOrNil(form.Premium)
	}
	if !profile.IsSuppressed(FieldBldgUse) {
		listing.BldgUse = textOrNil(form.BldgUse)
	}

	return listing, nil
}

// patchableFields - поля, которые инлайн-редактирование вообще может
// менять. Категория и статус меняются отдельными операциями.
var patchableFields = map[Field]bool{
	FieldAddress:      true,
	FieldLandAreaM2:   true,
	FieldGrossAreaM2:  true,
	FieldPriceManwon:  true,
	FieldFloor:        true,
	FieldMaintenance:  true,
	FieldOptions:      true,
	FieldPremium:      true,
	FieldBldgUse:      true,
	FieldContact:      true,
	FieldNote:         true,
	FieldContractDate: true,
	FieldExpiryDate:   true,
}

// NormalizeForUpdate применяет те же правила коэрции к полям,
// присутствующим в частичной форме. Результат - значения для SET:
// nil означает запись NULL. Поля, подавленные схемой категории,
// пишутся как NULL независимо от присланного значения.
func NormalizeForUpdate(category Category, patch ListingPatch) (map[Field]any, error) {
	profile, err := SchemaFor(category)
	if err != nil {
		return nil, err
	}

	values := make(map[Field]any, len(patch))
	for field, raw := range patch {
		if !patchableFields[field] {
			continue
		}
		if profile.IsSuppressed(field) {
			values[field] = nil
			continue
		}
		switch field {
		case FieldAddress:
			// Адрес обязателен: пустое значение в форме отклоняем.
			if strings.TrimSpace(raw) == "" {
				return nil, ValidationError{Field: FieldAddress}
			}
			values[field] = strings.TrimSpace(raw)
		case FieldLandAreaM2, FieldGrossAreaM2:
			values[field] = numericOrNil(raw)
		case FieldContractDate, FieldExpiryDate:
			values[field] = dateOrNil(raw)
		default:
			values[field] = textValueOrNil(raw)
		}
	}
	return values, nil
}

// Обертки ниже приводят типизированные указатели к any так, чтобы
// nil-указатель стал настоящим nil-интерфейсом (NULL для хранилища).

func numericOrNil(raw string) any {
	if v := ParseNumeric(raw); v != nil {
		return *v
	}
	return nil
}

func dateOrNil(raw string) any {
	if v := ParseDate(raw); v != nil {
		return *v
	}
	return nil
}

func textValueOrNil(raw string) any {
	if v := textOrNil(raw); v != nil {
		return *v
	}
	return nil
}

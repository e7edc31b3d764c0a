package domain

import "time"

// ApplyValues накладывает значения частичного обновления (результат
// NormalizeForUpdate) на запись. Используется локальным кэшем, чтобы
// UI отражал изменение без полной перезагрузки списка.
func ApplyValues(l *Listing, values map[Field]any) {
	for field, value := range values {
		switch field {
		case FieldAddress:
			if s, ok := value.(string); ok {
				l.Address = s
			}
		case FieldLandAreaM2:
			l.LandAreaM2 = asFloatPtr(value)
		case FieldGrossAreaM2:
			l.GrossAreaM2 = asFloatPtr(value)
		case FieldPriceManwon:
			l.PriceManwon = asStringPtr(value)
		case FieldFloor:
			l.Floor = asStringPtr(value)
		case FieldMaintenance:
			l.Maintenance = asStringPtr(value)
		case FieldOptions:
			l.Options = asStringPtr(value)
		case FieldPremium:
			l.Premium = asStringPtr(value)
		case FieldBldgUse:
			l.BldgUse = asStringPtr(value)
		case FieldContact:
			l.Contact = asStringPtr(value)
		case FieldNote:
			l.Note = asStringPtr(value)
		case FieldContractDate:
			l.ContractDate = asTimePtr(value)
		case FieldExpiryDate:
			l.ExpiryDate = asTimePtr(value)
		}
	}
}

func asFloatPtr(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

func asStringPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func asTimePtr(v any) *time.Time {
	if t, ok := v.(time.Time); ok {
		return &t
	}
	return nil
}

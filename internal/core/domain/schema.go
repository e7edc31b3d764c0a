package domain

// Field - идентификатор поля объявления. Используется схемой,
// билдером запросов и REST-слоем как единый словарь имен.
type Field string

const (
	FieldCategory     Field = "category"
	FieldAddress      Field = "address"
	FieldLandAreaM2   Field = "land_area_m2"
	FieldGrossAreaM2  Field = "gross_area_m2"
	FieldPriceManwon  Field = "price_manwon"
	FieldFloor        Field = "floor"
	FieldMaintenance  Field = "maintenance"
	FieldOptions      Field = "options"
	FieldPremium      Field = "premium"
	FieldBldgUse      Field = "bldg_use"
	FieldContact      Field = "contact"
	FieldNote         Field = "note"
	FieldContractDate Field = "contract_date"
	FieldExpiryDate   Field = "expiry_date"
	FieldStatus       Field = "status"

	// FieldPricePerPyeong - вычисляемая колонка (평당가), не хранится.
	FieldPricePerPyeong Field = "price_per_pyeong"
)

// Presence - роль поля в схеме категории.
type Presence int8

const (
	// Suppressed - поле неприменимо: при сохранении всегда NULL.
	Suppressed Presence = iota
	// Optional - поле видимо и редактируемо, но не обязательно.
	Optional
	// Required - поле обязательно при создании.
	Required
)

// CategoryProfile объявляет роль каждого поля для одной категории.
// Получается только через SchemaFor.
type CategoryProfile struct {
	Category Category
	presence map[Field]Presence
}

// Presence возвращает роль поля. Для неизвестного поля - Suppressed.
func (p CategoryProfile) Presence(f Field) Presence {
	return p.presence[f]
}

// IsSuppressed сообщает, что поле неприменимо к категории профиля.
func (p CategoryProfile) IsSuppressed(f Field) bool {
	return p.presence[f] == Suppressed
}

// SchemaFor - чистая, тотальная функция над закрытым множеством категорий.
// Для тега вне множества возвращает ErrUnknownCategory.
func SchemaFor(c Category) (CategoryProfile, error) {
	if !c.IsValid() {
		return CategoryProfile{}, ErrUnknownCategory{Category: c}
	}

	p := map[Field]Presence{
		FieldCategory:     Required,
		FieldAddress:      Required,
		FieldPriceManwon:  Optional,
		FieldContact:      Optional,
		FieldNote:         Optional,
		FieldContractDate: Optional,
		FieldExpiryDate:   Optional,
		FieldStatus:       Optional,
	}

	switch {
	case c.IsLandSale():
		// Продажа земли/зданий: площадь участка и цена, никакой
		// аренды-специфики. Этажность есть у зданий, но не у участка.
		p[FieldLandAreaM2] = Optional
		if !c.IsLandOnly() {
			p[FieldGrossAreaM2] = Optional
			p[FieldFloor] = Optional
		}
	case c.IsVillaSale():
		// Вилла: обе площади (전용 + 대지지분), этаж, управление и опции.
		p[FieldGrossAreaM2] = Optional
		p[FieldLandAreaM2] = Optional
		p[FieldFloor] = Optional
		p[FieldMaintenance] = Optional
		p[FieldOptions] = Optional
	default: // аренда и прочее
		p[FieldGrossAreaM2] = Optional
		p[FieldFloor] = Optional
		p[FieldMaintenance] = Optional
		// Опции и премия взаимоисключающие: премия только у shop/office.
		if c.IsBusiness() {
			p[FieldPremium] = Optional
		} else {
			p[FieldOptions] = Optional
		}
		// Назначение здания скрыто именно для apartment.
		if c != CategoryApartment {
			p[FieldBldgUse] = Optional
		}
	}

	return CategoryProfile{Category: c, presence: p}, nil
}

// FieldContext - контекст, для которого резолвится список видимых полей.
type FieldContext int8

const (
	// ContextCreation - форма добавления объявления.
	ContextCreation FieldContext = iota
	// ContextDisplay - набор колонок таблицы для категории.
	ContextDisplay
	// ContextSearchSummary - компактная таблица результатов поиска
	// по ключевому слову (общая для всех категорий).
	ContextSearchSummary
)

// SearchSummaryFields - фиксированный набор колонок для режима поиска.
// Межкатегорийные результаты показываются в одной форме таблицы.
var searchSummaryFields = []Field{
	FieldCategory, FieldAddress, FieldFloor, FieldPriceManwon, FieldBldgUse, FieldStatus,
}

// VisibleFields возвращает упорядоченный список видимых/редактируемых
// полей для категории в заданном контексте. Идемпотентна, без побочных
// эффектов.
func VisibleFields(c Category, ctx FieldContext) ([]Field, error) {
	if ctx == ContextSearchSummary {
		out := make([]Field, len(searchSummaryFields))
		copy(out, searchSummaryFields)
		return out, nil
	}

	profile, err := SchemaFor(c)
	if err != nil {
		return nil, err
	}

	var order []Field
	switch ctx {
	case ContextCreation:
		order = creationOrder(profile)
	case ContextDisplay:
		order = displayOrder(profile)
	}

	fields := make([]Field, 0, len(order))
	for _, f := range order {
		if f == FieldPricePerPyeong || !profile.IsSuppressed(f) {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

// creationOrder - порядок полей формы добавления (как в диалоге админки).
func creationOrder(p CategoryProfile) []Field {
	c := p.Category
	order := []Field{FieldCategory, FieldAddress, FieldPriceManwon}
	switch {
	case c.IsLandSale():
		order = append(order, FieldLandAreaM2, FieldGrossAreaM2)
	case c.IsVillaSale():
		order = append(order, FieldGrossAreaM2, FieldLandAreaM2)
	default:
		order = append(order, FieldGrossAreaM2)
	}
	order = append(order,
		FieldFloor, FieldMaintenance, FieldOptions, FieldPremium, FieldBldgUse,
		FieldContact, FieldContractDate, FieldExpiryDate, FieldNote,
	)
	return order
}

// displayOrder - набор колонок таблицы; свой для каждого семейства.
func displayOrder(p CategoryProfile) []Field {
	c := p.Category
	switch {
	case c.IsLandSale():
		return []Field{
			FieldAddress, FieldLandAreaM2, FieldPriceManwon, FieldPricePerPyeong,
			FieldContact, FieldNote, FieldContractDate, FieldStatus,
		}
	case c.IsVillaSale():
		return []Field{
			FieldAddress, FieldGrossAreaM2, FieldLandAreaM2, FieldFloor,
			FieldPriceManwon, FieldMaintenance, FieldOptions,
			FieldContact, FieldNote, FieldContractDate, FieldStatus,
		}
	default:
		return []Field{
			FieldAddress, FieldGrossAreaM2, FieldFloor, FieldPriceManwon,
			FieldMaintenance, FieldOptions, FieldPremium, FieldBldgUse,
			FieldContact, FieldNote, FieldContractDate, FieldExpiryDate, FieldStatus,
		}
	}
}

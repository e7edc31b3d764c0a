package domain

import "fmt"

// Category - фиксированный тег вида объявления. Закрытое множество,
// определяет применимую схему полей (см. schema.go).
type Category string

const (
	CategoryStudio       Category = "studio"
	CategoryOneBedroom   Category = "one-bedroom"
	CategoryThreeRoom    Category = "three-room"
	CategoryApartment    Category = "apartment"
	CategoryShop         Category = "shop"
	CategoryOffice       Category = "office"
	CategoryBuildingSale Category = "building-sale"
	CategoryHouseSale    Category = "house-sale"
	CategoryVillaSale    Category = "villa-sale"
	CategoryLand         Category = "land"
)

// AllCategories возвращает полный список категорий в порядке вкладок
// админки. Единственное место, где перечислено множество целиком.
func AllCategories() []Category {
	return []Category{
		CategoryStudio,
		CategoryOneBedroom,
		CategoryThreeRoom,
		CategoryApartment,
		CategoryShop,
		CategoryOffice,
		CategoryBuildingSale,
		CategoryHouseSale,
		CategoryVillaSale,
		CategoryLand,
	}
}

// ErrUnknownCategory возвращается для тега вне закрытого множества.
type ErrUnknownCategory struct {
	Category Category
}

func (e ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown listing category: %q", string(e.Category))
}

// IsValid проверяет принадлежность тега закрытому множеству.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStudio, CategoryOneBedroom, CategoryThreeRoom, CategoryApartment,
		CategoryShop, CategoryOffice, CategoryBuildingSale, CategoryHouseSale,
		CategoryVillaSale, CategoryLand:
		return true
	}
	return false
}

// --- Семейства схем ---
// Предикаты ниже - единственный источник истины о членстве категорий
// в семействах. Никакой другой код не должен перечислять категории.

// IsLandSale - семейство "продажа земли/зданий": building-sale, house-sale, land.
func (c Category) IsLandSale() bool {
	return c == CategoryBuildingSale || c == CategoryHouseSale || c == CategoryLand
}

// IsVillaSale - отдельное семейство для продажи вилл.
func (c Category) IsVillaSale() bool {
	return c == CategoryVillaSale
}

// IsLease - семейство аренды и прочего (все, что не продажа земли и не вилла).
func (c Category) IsLease() bool {
	return c.IsValid() && !c.IsLandSale() && !c.IsVillaSale()
}

// IsBusiness - коммерческая аренда: вместо опций у нее премия (권리금).
func (c Category) IsBusiness() bool {
	return c == CategoryShop || c == CategoryOffice
}

// IsLandOnly - голый участок: единственная категория без этажности.
func (c Category) IsLandOnly() bool {
	return c == CategoryLand
}

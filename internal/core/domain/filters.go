package domain

import "strings"

// ListingFilter - выбор (категория, ключевое слово) для поиска записей.
type ListingFilter struct {
	Category Category
	Keyword  string
}

// Normalized возвращает фильтр с обрезанным ключевым словом.
func (f ListingFilter) Normalized() ListingFilter {
	f.Keyword = strings.TrimSpace(f.Keyword)
	return f
}

// IsKeywordSearch: непустое ключевое слово всегда имеет приоритет над
// категорией - поиск идет по всем категориям сразу.
func (f ListingFilter) IsKeywordSearch() bool {
	return f.Normalized().Keyword != ""
}

// keywordSearchFields - текстовые поля, по которым идет OR-поиск
// подстроки без учета регистра.
var keywordSearchFields = []Field{FieldAddress, FieldNote, FieldContact}

// KeywordSearchFields возвращает поля OR-поиска (копию).
func KeywordSearchFields() []Field {
	out := make([]Field, len(keywordSearchFields))
	copy(out, keywordSearchFields)
	return out
}

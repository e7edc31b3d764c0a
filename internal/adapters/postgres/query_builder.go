package postgres

import (
	"fmt"
	"sort"
	"strings"

	"listing-admin-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyListingFilter строит WHERE по правилу приоритета: непустое
// ключевое слово - OR-поиск подстроки (ILIKE) по текстовым полям всех
// категорий; иначе - точное совпадение категории.
func applyListingFilter(filter domain.ListingFilter) (string, []interface{}) {
	qb := newQueryBuilder()
	filter = filter.Normalized()

	if filter.IsKeywordSearch() {
		pattern := "%" + filter.Keyword + "%"
		parts := make([]string, 0, 3)
		for _, field := range domain.KeywordSearchFields() {
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", string(field), qb.argId))
		}
		qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
		qb.args = append(qb.args, pattern)
		qb.argId++
	} else if filter.Category != "" {
		qb.addCondition("%s = $%d", string(domain.FieldCategory), string(filter.Category))
	}

	return qb.build()
}

// applyUpdateValues строит SET-часть частичного обновления.
// Порядок полей детерминированный, nil-значение пишет NULL.
func applyUpdateValues(values map[domain.Field]any) (string, []interface{}) {
	fields := make([]string, 0, len(values))
	for field := range values {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)

	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))
	for i, field := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, i+1))
		args = append(args, values[domain.Field(field)])
	}
	return strings.Join(setClauses, ", "), args
}

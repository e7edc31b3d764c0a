package rest

import (
	"net/http"

	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"
)

// CategoryHandler отдает реестр категорий с разрешенными схемой полями.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories обрабатывает GET /api/v1/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	categories := domain.AllCategories()
	response := CategoriesResponse{
		Data: make([]CategoryResponse, 0, len(categories)),
	}

	for _, c := range categories {
		creation, err := domain.VisibleFields(c, domain.ContextCreation)
		if err != nil {
			logger.Error("Failed to resolve creation fields", err, port.Fields{"category": string(c)})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to resolve category schema")
			return
		}
		display, err := domain.VisibleFields(c, domain.ContextDisplay)
		if err != nil {
			logger.Error("Failed to resolve display columns", err, port.Fields{"category": string(c)})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to resolve category schema")
			return
		}

		response.Data = append(response.Data, CategoryResponse{
			ID:             string(c),
			CreationFields: fieldNames(creation),
			DisplayColumns: fieldNames(display),
		})
	}

	RespondWithJSON(w, http.StatusOK, response)
}

package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"listing-admin-service/internal/contracts"
	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"
	"listing-admin-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ListingHandler struct {
	findListingsUC  usecases_port.FindListingsUseCase
	createListingUC usecases_port.CreateListingUseCase
	updateListingUC usecases_port.UpdateListingUseCase
	changeStatusUC  usecases_port.ChangeListingStatusUseCase
	deleteListingUC usecases_port.DeleteListingUseCase
}

func NewListingHandler(
	findListingsUC usecases_port.FindListingsUseCase,
	createListingUC usecases_port.CreateListingUseCase,
	updateListingUC usecases_port.UpdateListingUseCase,
	changeStatusUC usecases_port.ChangeListingStatusUseCase,
	deleteListingUC usecases_port.DeleteListingUseCase,
) *ListingHandler {
	return &ListingHandler{
		findListingsUC:  findListingsUC,
		createListingUC: createListingUC,
		updateListingUC: updateListingUC,
		changeStatusUC:  changeStatusUC,
		deleteListingUC: deleteListingUC,
	}
}

// FindListings обрабатывает GET /api/v1/listings
func (h *ListingHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	filter := domain.ListingFilter{
		Category: domain.Category(query.Get("category")),
		Keyword:  query.Get("keyword"),
	}.Normalized()

	// Без ключевого слова категория обязана быть известной
	if !filter.IsKeywordSearch() && !filter.Category.IsValid() {
		logger.Warn("Unknown category requested", port.Fields{"category": string(filter.Category)})
		WriteJSONError(w, http.StatusBadRequest, "Unknown category")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "FindListings",
		"category": string(filter.Category),
		"keyword":  filter.Keyword,
	})
	handlerLogger.Debug("Processing request to find listings", nil)

	listings, err := h.findListingsUC.Execute(r.Context(), filter)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	// Набор колонок зависит от режима: общий поисковый или категорийный
	var columns []domain.Field
	if filter.IsKeywordSearch() {
		columns, _ = domain.VisibleFields("", domain.ContextSearchSummary)
	} else {
		columns, _ = domain.VisibleFields(filter.Category, domain.ContextDisplay)
	}

	response := FindListingsResponse{
		Columns: fieldNames(columns),
		Total:   len(listings),
		Data:    make([]ListingResponse, len(listings)),
	}
	for i, l := range listings {
		response.Data[i] = toListingResponse(l)
	}

	handlerLogger.Info("Successfully found listings", port.Fields{
		"total_found": response.Total,
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateListing обрабатывает POST /api/v1/listings
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest("ListingCreateRequest", "1.0.0", body); err != nil {
		logger.Warn("Create request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req CreateListingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "CreateListing",
		"category": req.Category,
	})
	handlerLogger.Debug("Processing request to create listing", nil)

	listing, err := h.createListingUC.Execute(r.Context(), req.toForm())
	if err != nil {
		if domain.IsValidationError(err) || errors.As(err, &domain.ErrUnknownCategory{}) {
			handlerLogger.Warn("Create listing rejected", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	handlerLogger.Info("Successfully created listing", port.Fields{"listing_id": listing.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toListingResponse(listing))
}

// UpdateListing обрабатывает PATCH /api/v1/listings/{listingID}
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID, ok := parseListingID(w, r, logger)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest("ListingUpdateRequest", "1.0.0", body); err != nil {
		logger.Warn("Update request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Присутствие ключа в JSON означает "поле было в форме"
	var raw map[string]string
	if err := json.Unmarshal(body, &raw); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	patch := make(domain.ListingPatch, len(raw))
	for name, value := range raw {
		patch[domain.Field(name)] = value
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "UpdateListing",
		"listing_id": listingID.String(),
		"fields":     len(patch),
	})
	handlerLogger.Debug("Processing request to update listing", nil)

	listing, err := h.updateListingUC.Execute(r.Context(), listingID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
		case domain.IsValidationError(err):
			handlerLogger.Warn("Update listing rejected", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update listing")
		}
		return
	}

	handlerLogger.Info("Successfully updated listing", nil)
	RespondWithJSON(w, http.StatusOK, toListingResponse(listing))
}

// ChangeStatus обрабатывает PUT /api/v1/listings/{listingID}/status
func (h *ListingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID, ok := parseListingID(w, r, logger)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "ChangeStatus",
		"listing_id": listingID.String(),
		"status":     req.Status,
	})
	handlerLogger.Debug("Processing request to change listing status", nil)

	err := h.changeStatusUC.Execute(r.Context(), listingID, domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, domain.ErrListingNotFound):
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to change status")
		}
		return
	}

	handlerLogger.Info("Successfully changed listing status", nil)
	RespondWithJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// DeleteListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID, ok := parseListingID(w, r, logger)
	if !ok {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "DeleteListing",
		"listing_id": listingID.String(),
	})
	handlerLogger.Debug("Processing request to delete listing", nil)

	err := h.deleteListingUC.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete listing")
		return
	}

	handlerLogger.Info("Successfully deleted listing", nil)
	w.WriteHeader(http.StatusNoContent)
}

func parseListingID(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "listingID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid listing ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID format")
		return uuid.Nil, false
	}
	return id, true
}

package rest

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/port"
)

// accessCookieName - флаг доступа админки. Кука постоянная: админка
// остается открытой между перезапусками браузера, пока куку не удалят.
const accessCookieName = "listing_admin_access"

const accessCookieValue = "granted"

// accessCookieMaxAge - год в секундах.
const accessCookieMaxAge = 365 * 24 * 60 * 60

// AuthHandler обслуживает вход по общему паролю админки.
type AuthHandler struct {
	adminPassword string
}

func NewAuthHandler(adminPassword string) *AuthHandler {
	return &AuthHandler{adminPassword: adminPassword}
}

// Login обрабатывает POST /api/v1/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		logger.Warn("Login attempt with wrong password", nil)
		WriteJSONError(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessCookieName,
		Value:    accessCookieValue,
		Path:     "/",
		MaxAge:   accessCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("Admin logged in", nil)
	RespondWithJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// AccessGateMiddleware пускает дальше только запросы с валидной кукой
// доступа. Проверка выполняется на каждом входе.
func AccessGateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(accessCookieName)
		if err != nil || cookie.Value != accessCookieValue {
			WriteJSONError(w, http.StatusUnauthorized, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

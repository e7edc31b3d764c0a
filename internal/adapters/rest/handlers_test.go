package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listing-admin-service/internal/adapters/rest"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Моки use-case портов на функциональных полях ---

type mockFindListingsUC struct {
	ExecuteFunc func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
}

func (m *mockFindListingsUC) Execute(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, filter)
	}
	return nil, nil
}

type mockCreateListingUC struct {
	ExecuteFunc func(ctx context.Context, form domain.ListingForm) (domain.Listing, error)
}

func (m *mockCreateListingUC) Execute(ctx context.Context, form domain.ListingForm) (domain.Listing, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, form)
	}
	return domain.Listing{}, nil
}

type mockUpdateListingUC struct {
	ExecuteFunc func(ctx context.Context, id uuid.UUID, patch domain.ListingPatch) (domain.Listing, error)
}

func (m *mockUpdateListingUC) Execute(ctx context.Context, id uuid.UUID, patch domain.ListingPatch) (domain.Listing, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, id, patch)
	}
	return domain.Listing{}, nil
}

type mockChangeStatusUC struct {
	ExecuteFunc func(ctx context.Context, id uuid.UUID, status domain.Status) error
}

func (m *mockChangeStatusUC) Execute(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, id, status)
	}
	return nil
}

type mockDeleteListingUC struct {
	ExecuteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDeleteListingUC) Execute(ctx context.Context, id uuid.UUID) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, id)
	}
	return nil
}

// noopLogger позволяет гонять сервер в тестах без вывода.
type noopLogger struct{}

func (noopLogger) Info(string, port.Fields)         {}
func (noopLogger) Warn(string, port.Fields)         {}
func (noopLogger) Error(string, error, port.Fields) {}
func (noopLogger) Debug(string, port.Fields)        {}
func (l noopLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

const testPassword = "secret-admin-password"

func newTestServer(
	findUC *mockFindListingsUC,
	createUC *mockCreateListingUC,
	updateUC *mockUpdateListingUC,
	statusUC *mockChangeStatusUC,
	deleteUC *mockDeleteListingUC,
) *httptest.Server {
	if findUC == nil {
		findUC = &mockFindListingsUC{}
	}
	if createUC == nil {
		createUC = &mockCreateListingUC{}
	}
	if updateUC == nil {
		updateUC = &mockUpdateListingUC{}
	}
	if statusUC == nil {
		statusUC = &mockChangeStatusUC{}
	}
	if deleteUC == nil {
		deleteUC = &mockDeleteListingUC{}
	}

	authHandler := rest.NewAuthHandler(testPassword)
	categoryHandler := rest.NewCategoryHandler()
	listingHandler := rest.NewListingHandler(findUC, createUC, updateUC, statusUC, deleteUC)

	server := rest.NewServer("0", []string{"http://localhost:5173"},
		authHandler, categoryHandler, listingHandler, noopLogger{})
	return httptest.NewServer(server.Handler())
}

// login выполняет вход и возвращает куку доступа.
func login(t *testing.T, ts *httptest.Server) *http.Cookie {
	t.Helper()

	body := strings.NewReader(`{"password":"` + testPassword + `"}`)
	resp, err := http.Post(ts.URL+"/api/v1/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "listing_admin_access" {
			return c
		}
	}
	t.Fatal("access cookie was not set")
	return nil
}

func authedRequest(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(login(t, ts))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	t.Run("wrong password is rejected", func(t *testing.T) {
		body := strings.NewReader(`{"password":"guess"}`)
		resp, err := http.Post(ts.URL+"/api/v1/login", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, resp.Cookies())
	})

	t.Run("correct password sets persistent cookie", func(t *testing.T) {
		cookie := login(t, ts)
		assert.Equal(t, "granted", cookie.Value)
		assert.Greater(t, cookie.MaxAge, 0)
	})
}

func TestAccessGate(t *testing.T) {
	t.Parallel()

	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	t.Run("request without cookie is rejected", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/categories")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("request with cookie passes", func(t *testing.T) {
		resp := authedRequest(t, ts, http.MethodGet, "/api/v1/categories", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestGetCategories(t *testing.T) {
	t.Parallel()

	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	resp := authedRequest(t, ts, http.MethodGet, "/api/v1/categories", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data []struct {
			ID             string   `json:"id"`
			CreationFields []string `json:"creation_fields"`
			DisplayColumns []string `json:"display_columns"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 10)

	byID := make(map[string][]string)
	displays := make(map[string][]string)
	for _, c := range payload.Data {
		byID[c.ID] = c.CreationFields
		displays[c.ID] = c.DisplayColumns
	}

	assert.Contains(t, byID["shop"], "premium")
	assert.NotContains(t, byID["shop"], "options")
	assert.NotContains(t, byID["apartment"], "bldg_use")
	assert.NotContains(t, byID["land"], "floor")
	assert.Contains(t, displays["land"], "price_per_pyeong")
}

func TestFindListings(t *testing.T) {
	t.Parallel()

	priceStr := "30,000"
	area := 330.58
	sample := domain.Listing{
		ID:          uuid.New(),
		Category:    domain.CategoryLand,
		Address:     "경기도 양평군",
		LandAreaM2:  &area,
		PriceManwon: &priceStr,
		Status:      domain.StatusInProgress,
	}

	t.Run("category mode returns display columns and derived price", func(t *testing.T) {
		t.Parallel()

		findUC := &mockFindListingsUC{
			ExecuteFunc: func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
				assert.Equal(t, domain.CategoryLand, filter.Category)
				return []domain.Listing{sample}, nil
			},
		}
		ts := newTestServer(findUC, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodGet, "/api/v1/listings?category=land", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			Columns []string `json:"columns"`
			Total   int      `json:"total"`
			Data    []struct {
				Address        string `json:"address"`
				PricePerPyeong string `json:"price_per_pyeong"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, 1, payload.Total)
		assert.Contains(t, payload.Columns, "price_per_pyeong")
		require.Len(t, payload.Data, 1)
		// 330.58 m2 = 100 평, 30000 / 100 = 300
		assert.Equal(t, "300", payload.Data[0].PricePerPyeong)
	})

	t.Run("keyword mode returns the search summary columns", func(t *testing.T) {
		t.Parallel()

		findUC := &mockFindListingsUC{
			ExecuteFunc: func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
				assert.True(t, filter.IsKeywordSearch())
				return []domain.Listing{sample}, nil
			},
		}
		ts := newTestServer(findUC, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodGet, "/api/v1/listings?keyword=%EC%96%91%ED%8F%89", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			Columns []string `json:"columns"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, []string{"category", "address", "floor", "price_manwon", "bldg_use", "status"}, payload.Columns)
	})

	t.Run("unknown category without keyword is a bad request", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(nil, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodGet, "/api/v1/listings?category=warehouse", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateListing(t *testing.T) {
	t.Parallel()

	t.Run("valid body creates listing", func(t *testing.T) {
		t.Parallel()

		createUC := &mockCreateListingUC{
			ExecuteFunc: func(ctx context.Context, form domain.ListingForm) (domain.Listing, error) {
				assert.Equal(t, "studio", form.Category)
				return domain.Listing{
					ID:       uuid.New(),
					Category: domain.CategoryStudio,
					Address:  form.Address,
					Status:   domain.StatusInProgress,
				}, nil
			},
		}
		ts := newTestServer(nil, createUC, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPost, "/api/v1/listings",
			`{"category":"studio","address":"서울시 마포구","price_manwon":"500/40"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("schema rejects missing category", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(nil, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPost, "/api/v1/listings",
			`{"address":"somewhere"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("schema rejects unknown category value", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(nil, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPost, "/api/v1/listings",
			`{"category":"castle","address":"somewhere"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("schema rejects unknown extra fields", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(nil, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPost, "/api/v1/listings",
			`{"category":"studio","address":"somewhere","rooms":"3"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateListing(t *testing.T) {
	t.Parallel()

	listingID := uuid.New()

	t.Run("patch forwards only present fields", func(t *testing.T) {
		t.Parallel()

		updateUC := &mockUpdateListingUC{
			ExecuteFunc: func(ctx context.Context, id uuid.UUID, patch domain.ListingPatch) (domain.Listing, error) {
				assert.Equal(t, listingID, id)
				assert.Len(t, patch, 1)
				assert.Equal(t, "2000/100", patch[domain.FieldPriceManwon])
				return domain.Listing{ID: id, Category: domain.CategoryStudio, Status: domain.StatusInProgress}, nil
			},
		}
		ts := newTestServer(nil, nil, updateUC, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPatch, "/api/v1/listings/"+listingID.String(),
			`{"price_manwon":"2000/100"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing listing maps to 404", func(t *testing.T) {
		t.Parallel()

		updateUC := &mockUpdateListingUC{
			ExecuteFunc: func(ctx context.Context, id uuid.UUID, patch domain.ListingPatch) (domain.Listing, error) {
				return domain.Listing{}, domain.ErrListingNotFound
			},
		}
		ts := newTestServer(nil, nil, updateUC, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPatch, "/api/v1/listings/"+listingID.String(),
			`{"note":"x"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(nil, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPatch, "/api/v1/listings/not-a-uuid", `{"note":"x"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty patch rejected by schema", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(nil, nil, nil, nil, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPatch, "/api/v1/listings/"+listingID.String(), `{}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()

	listingID := uuid.New()

	t.Run("valid status accepted", func(t *testing.T) {
		t.Parallel()

		statusUC := &mockChangeStatusUC{
			ExecuteFunc: func(ctx context.Context, id uuid.UUID, status domain.Status) error {
				assert.Equal(t, domain.StatusContractCompleted, status)
				return nil
			},
		}
		ts := newTestServer(nil, nil, nil, statusUC, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPut, "/api/v1/listings/"+listingID.String()+"/status",
			`{"status":"contract-completed"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("illegal status maps to 400", func(t *testing.T) {
		t.Parallel()

		statusUC := &mockChangeStatusUC{
			ExecuteFunc: func(ctx context.Context, id uuid.UUID, status domain.Status) error {
				return domain.ErrInvalidStatus
			},
		}
		ts := newTestServer(nil, nil, nil, statusUC, nil)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodPut, "/api/v1/listings/"+listingID.String()+"/status",
			`{"status":"sold-out"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteListing(t *testing.T) {
	t.Parallel()

	listingID := uuid.New()

	t.Run("delete returns no content", func(t *testing.T) {
		t.Parallel()

		deleted := false
		deleteUC := &mockDeleteListingUC{
			ExecuteFunc: func(ctx context.Context, id uuid.UUID) error {
				deleted = true
				assert.Equal(t, listingID, id)
				return nil
			},
		}
		ts := newTestServer(nil, nil, nil, nil, deleteUC)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodDelete, "/api/v1/listings/"+listingID.String(), "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.True(t, deleted)
	})

	t.Run("missing listing maps to 404", func(t *testing.T) {
		t.Parallel()

		deleteUC := &mockDeleteListingUC{
			ExecuteFunc: func(ctx context.Context, id uuid.UUID) error {
				return domain.ErrListingNotFound
			},
		}
		ts := newTestServer(nil, nil, nil, nil, deleteUC)
		defer ts.Close()

		resp := authedRequest(t, ts, http.MethodDelete, "/api/v1/listings/"+listingID.String(), "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

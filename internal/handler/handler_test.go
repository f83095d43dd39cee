package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/handler"
	"github.com/sakif/go-examples/internal/mockapi"
	"github.com/sakif/go-examples/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newRouter mounts both handlers under /api the way the server does, so
// chi URL parameters are populated.
func newRouter() (http.Handler, *mockapi.ProductAPI) {
	logger := testLogger()
	products := mockapi.NewProductAPI()

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.NewUserHandler(mockapi.NewUserAPI(), logger).Routes(r)
		handler.NewProductHandler(products, logger).Routes(r)
	})
	return r, products
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = &bytes.Buffer{}
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) model.Response[T] {
	t.Helper()
	var res model.Response[T]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	return res
}

func TestUserHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodGet, "/api/users", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		res := decode[[]model.Contact](t, rr)
		assert.True(t, res.Success)
		assert.Len(t, res.Data, 3)
	})

	t.Run("get by id", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodGet, "/api/users/1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decode[model.Contact](t, rr)
		assert.Equal(t, "John Doe", res.Data.Name)
	})

	t.Run("get missing user", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodGet, "/api/users/99", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		res := decode[any](t, rr)
		assert.False(t, res.Success)
		assert.Equal(t, "User not found", res.Error)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodGet, "/api/users/abc", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("create", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodPost, "/api/users", `{"name":"Alice","email":"alice@example.com"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		res := decode[model.Contact](t, rr)
		assert.Equal(t, 4, res.Data.ID)
		assert.Equal(t, model.RoleUser, res.Data.Role)
	})

	t.Run("create with missing fields", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodPost, "/api/users", `{"name":"Alice"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Name and email are required", decode[any](t, rr).Error)
	})

	t.Run("invalid request body", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodPost, "/api/users", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid JSON body", decode[any](t, rr).Error)
	})

	t.Run("update", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodPut, "/api/users/2", `{"role":"moderator"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decode[model.Contact](t, rr)
		assert.Equal(t, model.RoleModerator, res.Data.Role)
		assert.Equal(t, "Jane Smith", res.Data.Name)
	})

	t.Run("delete then get", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodDelete, "/api/users/3", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = do(t, h, http.MethodGet, "/api/users/3", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProductHandler(t *testing.T) {
	t.Run("list with filters", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodGet, "/api/products?category=ELECTRONICS&minPrice=50&maxPrice=300", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decode[[]model.Product](t, rr)
		require.Len(t, res.Data, 2)
		assert.Equal(t, "Keyboard", res.Data[0].Name)
		assert.Equal(t, "Monitor", res.Data[1].Name)
	})

	t.Run("bad price parameter", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodGet, "/api/products?minPrice=cheap", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get by id", func(t *testing.T) {
		h, products := newRouter()
		id := products.All(mockapi.ProductFilter{}).Data[0].ID

		rr := do(t, h, http.MethodGet, "/api/products/"+id, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Laptop", decode[model.Product](t, rr).Data.Name)

		rr = do(t, h, http.MethodGet, "/api/products/missing", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("create", func(t *testing.T) {
		h, _ := newRouter()
		rr := do(t, h, http.MethodPost, "/api/products", `{"name":"Webcam","price":49.5,"stock":3}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		res := decode[model.Product](t, rr)
		assert.Equal(t, "Uncategorized", res.Data.Category)
		assert.True(t, res.Data.InStock)
	})

	t.Run("update stock", func(t *testing.T) {
		h, products := newRouter()
		id := products.All(mockapi.ProductFilter{}).Data[0].ID
		path := fmt.Sprintf("/api/products/%s/stock", id)

		rr := do(t, h, http.MethodPut, path, `{"quantity":-5}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 10, decode[model.Product](t, rr).Data.Stock)

		rr = do(t, h, http.MethodPut, path, `{"quantity":-100}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = do(t, h, http.MethodPut, path, `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// Domain errors from the service layer map to HTTP statuses, including when
// wrapped with %w.
func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperror.ValidationFailed("field", "bad input"), http.StatusBadRequest, "bad input"},
		{"not found", apperror.NotFound("user", "1"), http.StatusNotFound, "user not found with id 1"},
		{"conflict", apperror.DuplicateUsername("alice"), http.StatusConflict, `username "alice" already exists`},
		{"wrapped conflict", fmt.Errorf("creating: %w", apperror.DuplicateUsername("alice")), http.StatusConflict, `username "alice" already exists`},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "An internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.WriteError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			res := decode[any](t, rr)
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantMsg, res.Error)
		})
	}
}

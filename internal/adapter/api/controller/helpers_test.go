package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/hugohenrick/toko-digital/pkg/auth"
	"github.com/hugohenrick/toko-digital/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter simula os middlewares de autenticação e tenant
func newTestRouter(storeID string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(auth.KeyUserID, "u1")
		c.Set(auth.KeyUserRole, "STORE_OWNER")
		c.Set(tenant.GinKey, &tenant.Context{UserID: "u1", StoreID: storeID, Role: "STORE_OWNER"})
		c.Next()
	})
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

func boolPtr(v bool) *bool { return &v }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{repository.ErrProductNotFound, http.StatusNotFound},
		{fmt.Errorf("buscar: %w", repository.ErrStoreNotFound), http.StatusNotFound},
		{service.ErrEmailTaken, http.StatusConflict},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{store.ErrStoreNotVerified, http.StatusForbidden},
		{order.ErrInvalidTransition, http.StatusBadRequest},
		{fmt.Errorf("%w: x", service.ErrInvalidAction), http.StatusBadRequest},
		{errors.New("falha no banco"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestRespondErrorHidesInternalMessage(t *testing.T) {
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		respondError(c, errors.New("pq: connection refused"), "Erro ao listar produtos")
	})
	router.GET("/missing", func(c *gin.Context) {
		respondError(c, repository.ErrOrderNotFound, "Erro ao buscar pedido")
	})

	w := performJSON(router, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao listar produtos")

	w = performJSON(router, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), repository.ErrOrderNotFound.Error())
}

func TestParseBool(t *testing.T) {
	assert.Nil(t, parseBool(""))
	assert.Nil(t, parseBool("talvez"))
	assert.True(t, *parseBool("true"))
	assert.False(t, *parseBool("0"))
}

package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/pkg/auth"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticResolver map[string]error

func (s staticResolver) Resolve(_ context.Context, userID string) (*Context, error) {
	if err, ok := s[userID]; ok {
		return nil, err
	}
	storeID := ""
	if userID == "owner" {
		storeID = "store-1"
	}
	return &Context{UserID: userID, StoreID: storeID, Role: "STORE_OWNER"}, nil
}

func setupTenantRouter(userID string, extra ...gin.HandlerFunc) *gin.Engine {
	resolver := staticResolver{
		"suspended": ErrUserSuspended,
		"closed":    ErrStoreNotActive,
		"ghost":     ErrNotAuthenticated,
	}

	handlers := []gin.HandlerFunc{
		func(c *gin.Context) {
			if userID != "" {
				c.Set(auth.KeyUserID, userID)
			}
			c.Next()
		},
		Middleware(resolver),
	}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		t, _ := FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"storeId": GetStoreID(c), "fromRequest": t.StoreID})
	})

	router := gin.New()
	router.GET("/scoped", handlers...)
	return router
}

func doScoped(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/scoped", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware(t *testing.T) {
	w := doScoped(setupTenantRouter("owner"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"storeId":"store-1","fromRequest":"store-1"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, doScoped(setupTenantRouter("")).Code)
	assert.Equal(t, http.StatusUnauthorized, doScoped(setupTenantRouter("ghost")).Code)
	assert.Equal(t, http.StatusForbidden, doScoped(setupTenantRouter("suspended")).Code)
	assert.Equal(t, http.StatusForbidden, doScoped(setupTenantRouter("closed")).Code)
}

func TestRequireStore(t *testing.T) {
	assert.Equal(t, http.StatusOK, doScoped(setupTenantRouter("owner", RequireStore())).Code)
	assert.Equal(t, http.StatusForbidden, doScoped(setupTenantRouter("admin", RequireStore())).Code)
}

func TestGetStoreID_FromRequestContext(t *testing.T) {
	ctx := WithContext(context.Background(), &Context{UserID: "u", StoreID: "s"})
	assert.Equal(t, "s", GetStoreID(ctx))
	assert.Equal(t, "", GetStoreID(context.Background()))
}

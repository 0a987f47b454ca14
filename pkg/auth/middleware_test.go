package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthRouter(svc *JWTService, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(svc)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _, _, role := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role, "storeId": c.GetString(KeyStoreID)})
	})
	router.GET("/private", handlers...)
	return router
}

func doGet(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWT(t)
	router := setupAuthRouter(svc)

	assert.Equal(t, http.StatusUnauthorized, doGet(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Bearer abc").Code)

	refresh, _, err := svc.GenerateRefreshToken(testUser(), "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Bearer "+refresh).Code)

	token, err := svc.GenerateToken(testUser(), "store-1")
	require.NoError(t, err)
	w := doGet(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storeId":"store-1"`)
}

func TestRoleMiddlewares(t *testing.T) {
	svc := newTestJWT(t)

	owner, err := svc.GenerateToken(testUser(), "")
	require.NoError(t, err)
	admin, err := svc.GenerateToken(&user.User{ID: "a", Role: user.RoleAdmin}, "")
	require.NoError(t, err)
	super, err := svc.GenerateToken(&user.User{ID: "s", Role: user.RoleSuperAdmin}, "")
	require.NoError(t, err)

	adminRouter := setupAuthRouter(svc, AdminMiddleware())
	assert.Equal(t, http.StatusForbidden, doGet(adminRouter, "Bearer "+owner).Code)
	assert.Equal(t, http.StatusOK, doGet(adminRouter, "Bearer "+admin).Code)
	assert.Equal(t, http.StatusOK, doGet(adminRouter, "Bearer "+super).Code)

	superRouter := setupAuthRouter(svc, SuperAdminMiddleware())
	assert.Equal(t, http.StatusForbidden, doGet(superRouter, "Bearer "+admin).Code)
	assert.Equal(t, http.StatusOK, doGet(superRouter, "Bearer "+super).Code)
}

func TestRoleAuthMiddleware_Unauthenticated(t *testing.T) {
	router := gin.New()
	router.GET("/private", RoleAuthMiddleware(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/pkg/auth"
)

// Resolver monta o Context de um usuário autenticado
type Resolver interface {
	Resolve(ctx context.Context, userID string) (*Context, error)
}

// Middleware resolve a loja do usuário autenticado e restringe a requisição a ela.
// Deve rodar depois de auth.JWTAuthMiddleware.
func Middleware(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.KeyUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				ErrNotAuthenticated.Error(),
			))
			return
		}

		t, err := resolver.Resolve(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotAuthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
					http.StatusUnauthorized,
					"Autenticação requerida",
					err.Error(),
				))
			case errors.Is(err, ErrUserSuspended):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
					http.StatusForbidden,
					"Conta suspensa",
					err.Error(),
				))
			case errors.Is(err, ErrStoreNotFound), errors.Is(err, ErrStoreNotActive):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
					http.StatusForbidden,
					"Loja indisponível",
					err.Error(),
				))
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					http.StatusInternalServerError,
					"Erro ao validar tenant",
					err.Error(),
				))
			}
			return
		}

		// O papel do banco substitui o do token
		c.Set(auth.KeyUserRole, t.Role)
		c.Set(auth.KeyStoreID, t.StoreID)
		c.Set(GinKey, t)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), t))

		c.Next()
	}
}

// RequireStore bloqueia rotas de lojista para quem não tem loja (ex.: administradores)
func RequireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetStoreID(c) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Loja indisponível",
				ErrStoreNotFound.Error(),
			))
			return
		}
		c.Next()
	}
}

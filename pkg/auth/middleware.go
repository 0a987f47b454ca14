package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// Chaves usadas no contexto do gin
const (
	KeyUserID    = "user_id"
	KeyUserEmail = "user_email"
	KeyUserName  = "user_name"
	KeyUserRole  = "user_role"
	KeyStoreID   = "store_id"
)

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obter o token do cabeçalho Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		// Verificar o formato "Bearer <token>"
		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateAccessToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Armazenar as claims no contexto
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserEmail, claims.Email)
		c.Set(KeyUserName, claims.Name)
		c.Set(KeyUserRole, claims.Role)
		c.Set(KeyStoreID, claims.StoreID)

		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação de papel/função do usuário
func RoleAuthMiddleware(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Verificar se o usuário está autenticado
		userRole := c.GetString(KeyUserRole)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		for _, r := range roles {
			if userRole == string(r) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acesso negado",
			"Você não tem permissão para acessar este recurso",
		))
	}
}

// AdminMiddleware libera apenas administradores da plataforma
func AdminMiddleware() gin.HandlerFunc {
	return RoleAuthMiddleware(user.RoleAdmin, user.RoleSuperAdmin)
}

// SuperAdminMiddleware libera apenas super administradores
func SuperAdminMiddleware() gin.HandlerFunc {
	return RoleAuthMiddleware(user.RoleSuperAdmin)
}

// GetCurrentUser obtém as informações do usuário atual do contexto
func GetCurrentUser(c *gin.Context) (userID, email, name, role string) {
	return c.GetString(KeyUserID), c.GetString(KeyUserEmail), c.GetString(KeyUserName), c.GetString(KeyUserRole)
}

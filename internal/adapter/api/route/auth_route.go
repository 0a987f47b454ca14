package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas de autenticação.
// authenticated é a cadeia de middlewares que valida o token e resolve a loja.
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, authenticated ...gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh", authController.RefreshToken)
		authRouter.POST("/logout", authController.Logout)

		me := append(append([]gin.HandlerFunc{}, authenticated...), authController.Me)
		authRouter.GET("/me", me...)
	}
}

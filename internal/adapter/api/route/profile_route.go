package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
)

// SetupProfileRoutes configura o perfil do usuário autenticado, com ou sem loja
func SetupProfileRoutes(router *gin.RouterGroup, profileController *controller.ProfileController) {
	profile := router.Group("/user")
	{
		profile.GET("/profile", profileController.Get)
		profile.PUT("/profile", profileController.Update)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
)

// SetupStorefrontRoutes configura a vitrine pública (sem autenticação)
func SetupStorefrontRoutes(router *gin.RouterGroup, storefrontController *controller.StorefrontController) {
	storefront := router.Group("/storefront")
	{
		storefront.GET("/:subdomain", storefrontController.Show)
		storefront.POST("/:subdomain/views", storefrontController.RecordView)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
)

// SetupCustomerRoutes registra as rotas de clientes da loja
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := router.Group("/customers")
	{
		customers.GET("", customerController.List)
		customers.POST("", customerController.Create)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
	}
}

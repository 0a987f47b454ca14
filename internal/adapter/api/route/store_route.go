package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
)

// StoreControllers agrupa os controllers do painel do lojista
type StoreControllers struct {
	Dashboard *controller.DashboardController
	Products  *controller.ProductController
	Orders    *controller.OrderController
	Store     *controller.StoreController
	Chats     *controller.ChatController
}

// SetupStoreRoutes configura as rotas do lojista. O grupo já deve exigir uma loja resolvida.
func SetupStoreRoutes(router *gin.RouterGroup, c StoreControllers) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", c.Dashboard.Stats)
		dashboard.POST("/stats", c.Dashboard.StatsFor)
		dashboard.GET("/analytics", c.Dashboard.Analytics)
		dashboard.GET("/finance", c.Dashboard.Finance)
	}

	products := router.Group("/products")
	{
		products.GET("", c.Products.List)
		products.POST("", c.Products.Create)
		products.POST("/bulk", c.Products.Bulk)
		products.GET("/:id", c.Products.Get)
		products.PUT("/:id", c.Products.Update)
		products.DELETE("/:id", c.Products.Delete)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", c.Orders.List)
		orders.POST("", c.Orders.Create)
		orders.GET("/:id", c.Orders.Get)
		orders.PUT("/:id/status", c.Orders.UpdateStatus)
	}

	storeRouter := router.Group("/store")
	{
		storeRouter.GET("/template", c.Store.Template)
		storeRouter.POST("/template", c.Store.Customize)
		storeRouter.GET("/templates", c.Store.Templates)
		storeRouter.POST("/templates", c.Store.ApplyTemplate)

		storeRouter.GET("/whatsapp", c.Store.WhatsApp)
		storeRouter.PUT("/whatsapp", c.Store.SaveWhatsApp)

		storeRouter.GET("/chats", c.Chats.List)
		storeRouter.POST("/chats", c.Chats.Create)
		storeRouter.GET("/chats/:id/messages", c.Chats.History)
		storeRouter.POST("/chats/:id/messages", c.Chats.Send)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
	"github.com/hugohenrick/toko-digital/pkg/auth"
)

// SetupAdminRoutes configura as rotas da administração da plataforma
func SetupAdminRoutes(router *gin.RouterGroup, adminController *controller.AdminController) {
	adminRouter := router.Group("/admin")
	adminRouter.Use(auth.AdminMiddleware())
	{
		adminRouter.GET("/stats", adminController.Stats)

		adminRouter.GET("/users", adminController.ListUsers)
		adminRouter.POST("/users", adminController.UserAction)

		adminRouter.GET("/stores", adminController.ListStores)
		adminRouter.POST("/stores", adminController.StoreAction)

		adminRouter.GET("/billing", adminController.Billing)
		adminRouter.GET("/reports", adminController.Report)

		adminRouter.GET("/settings", adminController.GetSettings)
		adminRouter.PUT("/settings", adminController.UpdateSettings)
		adminRouter.POST("/settings", adminController.SettingsAction)

		adminRouter.GET("/notifications", adminController.ListNotifications)
		adminRouter.POST("/notifications", adminController.CreateNotification)
		adminRouter.PUT("/notifications/:id/read", adminController.MarkNotificationRead)

		adminRouter.GET("/activity", adminController.ListActivity)
	}
}

// SetupSuperAdminRoutes configura os relatórios consolidados da plataforma
func SetupSuperAdminRoutes(router *gin.RouterGroup, superAdminController *controller.SuperAdminController) {
	superRouter := router.Group("/superadmin")
	superRouter.Use(auth.SuperAdminMiddleware())
	{
		superRouter.GET("/analytics", superAdminController.Analytics)
		superRouter.GET("/finance", superAdminController.Finance)
		superRouter.GET("/finance/transactions", superAdminController.ListTransactions)
		superRouter.POST("/finance/transactions", superAdminController.CreateTransaction)
	}
}

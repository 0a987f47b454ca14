package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
)

// recentOrdersLimit é a quantidade de pedidos exibida no painel
const recentOrdersLimit = 5

// DashboardController gerencia o painel do lojista
type DashboardController struct {
	reports Reports
	orders  order.Repository
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(reports Reports, orders order.Repository) *DashboardController {
	return &DashboardController{reports: reports, orders: orders}
}

// Stats retorna os indicadores da loja
// @Summary Painel do lojista
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}
	c.respond(ctx, period)
}

// StatsFor retorna os indicadores para o período informado no corpo
// @Summary Painel do lojista por período
// @Tags dashboard
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.DashboardRequest true "Período"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [post]
func (c *DashboardController) StatsFor(ctx *gin.Context) {
	var request dto.DashboardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	period, ok := periodFrom(ctx, request.Period)
	if !ok {
		return
	}
	c.respond(ctx, period)
}

func (c *DashboardController) respond(ctx *gin.Context, period report.Period) {
	storeID := currentStoreID(ctx)

	stats, err := c.reports.DashboardStats(ctx.Request.Context(), storeID, period)
	if err != nil {
		respondError(ctx, err, "Erro ao calcular indicadores")
		return
	}

	recent, err := c.orders.RecentByStore(ctx.Request.Context(), storeID, recentOrdersLimit)
	if err != nil {
		respondError(ctx, err, "Erro ao buscar pedidos recentes")
		return
	}
	if recent == nil {
		recent = []*order.Order{}
	}

	byStatus, err := c.orders.CountByStatus(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err, "Erro ao contar pedidos")
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{Stats: stats, RecentOrders: recent, OrdersByStatus: byStatus})
}

// Analytics retorna o tráfego e a conversão da loja
// @Summary Tráfego da loja
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Success 200 {object} report.AnalyticsSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/analytics [get]
func (c *DashboardController) Analytics(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}

	summary, err := c.reports.AnalyticsSummary(ctx.Request.Context(), currentStoreID(ctx), period)
	if err != nil {
		respondError(ctx, err, "Erro ao calcular tráfego")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// Finance retorna o painel financeiro da loja
// @Summary Painel financeiro da loja
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Success 200 {object} report.FinancialDashboardStats
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/finance [get]
func (c *DashboardController) Finance(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}

	stats, err := c.reports.FinancialStats(ctx.Request.Context(), currentStoreID(ctx), period)
	if err != nil {
		respondError(ctx, err, "Erro ao calcular painel financeiro")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
)

// SuperAdminController gerencia os relatórios financeiros e de tráfego da plataforma
type SuperAdminController struct {
	reports Reports
	ledger  finance.Repository
	stores  store.Repository
}

// NewSuperAdminController cria uma nova instância de SuperAdminController
func NewSuperAdminController(reports Reports, ledger finance.Repository, stores store.Repository) *SuperAdminController {
	return &SuperAdminController{reports: reports, ledger: ledger, stores: stores}
}

// Analytics retorna o tráfego consolidado; storeId restringe a uma loja
// @Summary Tráfego da plataforma
// @Tags superadmin
// @Produce json
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Param storeId query string false "Loja"
// @Success 200 {object} report.AnalyticsSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /superadmin/analytics [get]
func (c *SuperAdminController) Analytics(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}

	summary, err := c.reports.AnalyticsSummary(ctx.Request.Context(), ctx.Query("storeId"), period)
	if err != nil {
		respondError(ctx, err, "Erro ao calcular tráfego")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// Finance retorna o painel financeiro consolidado; storeId restringe a uma loja
// @Summary Painel financeiro da plataforma
// @Tags superadmin
// @Produce json
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Param storeId query string false "Loja"
// @Success 200 {object} report.FinancialDashboardStats
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /superadmin/finance [get]
func (c *SuperAdminController) Finance(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}

	stats, err := c.reports.FinancialStats(ctx.Request.Context(), ctx.Query("storeId"), period)
	if err != nil {
		respondError(ctx, err, "Erro ao calcular painel financeiro")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListTransactions lista os lançamentos financeiros
// @Summary Lista lançamentos
// @Tags superadmin
// @Produce json
// @Security Bearer
// @Param storeId query string false "Loja"
// @Param type query string false "INCOME ou EXPENSE"
// @Param category query string false "Categoria"
// @Param from query string false "Início (YYYY-MM-DD)"
// @Param to query string false "Fim exclusivo (YYYY-MM-DD)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /superadmin/finance/transactions [get]
func (c *SuperAdminController) ListTransactions(ctx *gin.Context) {
	filter := finance.Filter{
		StoreID:  ctx.Query("storeId"),
		Type:     finance.Type(ctx.Query("type")),
		Category: finance.Category(ctx.Query("category")),
	}
	for param, dest := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		raw := ctx.Query(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(ctx, err)
			return
		}
		*dest = &t
	}
	page := paginationFrom(ctx)

	items, err := c.ledger.List(ctx.Request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar lançamentos")
		return
	}
	total, err := c.ledger.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err, "Erro ao contar lançamentos")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

// CreateTransaction registra um lançamento manual. O livro é somente de inclusão.
// @Summary Registra um lançamento
// @Tags superadmin
// @Accept json
// @Produce json
// @Security Bearer
// @Param transaction body dto.TransactionRequest true "Lançamento"
// @Success 201 {object} finance.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /superadmin/finance/transactions [post]
func (c *SuperAdminController) CreateTransaction(ctx *gin.Context) {
	var request dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	if _, err := c.stores.FindByID(ctx.Request.Context(), request.StoreID); err != nil {
		respondError(ctx, err, "Erro ao buscar loja")
		return
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}
	t, err := finance.NewTransaction(request.StoreID, request.OrderID, request.Type, request.Category, request.Amount, request.Description, date)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.ledger.Create(ctx.Request.Context(), t); err != nil {
		respondError(ctx, err, "Erro ao registrar lançamento")
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

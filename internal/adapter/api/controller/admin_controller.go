package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/activitylog"
	"github.com/hugohenrick/toko-digital/internal/domain/notification"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// AdminDeps agrupa as dependências do AdminController
type AdminDeps struct {
	Admin         AdminService
	Reports       Reports
	Accounts      AccountService
	Relations     Relations
	Users         user.Repository
	Stores        store.Repository
	Subscriptions subscription.Repository
	Notifications notification.Repository
	Activity      activitylog.Repository
	Logger        logger.Logger
}

// AdminController gerencia o painel administrativo da plataforma
type AdminController struct {
	AdminDeps
}

// NewAdminController cria uma nova instância de AdminController
func NewAdminController(deps AdminDeps) *AdminController {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &AdminController{AdminDeps: deps}
}

// Stats retorna os contadores gerais da plataforma
// @Summary Visão geral da plataforma
// @Tags admin
// @Produce json
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Success 200 {object} report.SuperAdminStats
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}

	stats, err := c.Reports.SuperAdminStats(ctx.Request.Context(), period)
	if err != nil {
		respondError(ctx, err, "Erro ao calcular estatísticas")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListUsers lista os usuários da plataforma
// @Summary Lista usuários
// @Tags admin
// @Produce json
// @Security Bearer
// @Param search query string false "Busca por nome ou email"
// @Param role query string false "Papel"
// @Param active query bool false "Somente ativos ou suspensos"
// @Param include query string false "Relacionamentos (store,subscription)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	filter := user.Filter{
		Search: ctx.Query("search"),
		Role:   user.Role(ctx.Query("role")),
		Active: parseBool(ctx.Query("active")),
	}
	page := paginationFrom(ctx)
	inc := relation.ParseInclude(ctx.Query("include"))

	users, err := c.Users.List(ctx.Request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar usuários")
		return
	}
	total, err := c.Users.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err, "Erro ao contar usuários")
		return
	}

	items := make([]*relation.UserWithRelations, 0, len(users))
	for _, u := range users {
		item, err := c.Relations.User(ctx.Request.Context(), u, inc)
		if err != nil {
			respondError(ctx, err, "Erro ao carregar relacionamentos do usuário")
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

// UserAction ativa ou suspende um usuário
// @Summary Ativa ou suspende um usuário
// @Description Repetir uma ação não tem efeito; apenas ações efetivas geram registro de atividade
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param action body dto.ActionRequest true "Usuário e ação (activate, suspend)"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users [post]
func (c *AdminController) UserAction(ctx *gin.Context) {
	var request dto.ActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, changed, err := c.Admin.UserAction(ctx.Request.Context(), actorFrom(ctx), request.ID, request.Action)
	if err != nil {
		respondError(ctx, err, "Erro ao executar ação no usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ActionResponse{Action: request.Action, Changed: changed, Item: u})
}

// ListStores lista as lojas da plataforma com a contagem de produtos, pedidos e clientes
// @Summary Lista lojas
// @Tags admin
// @Produce json
// @Security Bearer
// @Param search query string false "Busca por nome ou subdomínio"
// @Param active query bool false "Somente ativas ou suspensas"
// @Param verified query bool false "Somente verificadas ou não"
// @Param include query string false "Relacionamentos (owner,subscription,whatsapp)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/stores [get]
func (c *AdminController) ListStores(ctx *gin.Context) {
	filter := store.Filter{
		Search:   ctx.Query("search"),
		Active:   parseBool(ctx.Query("active")),
		Verified: parseBool(ctx.Query("verified")),
	}
	page := paginationFrom(ctx)
	inc := relation.ParseInclude(ctx.Query("include"))

	stores, err := c.Stores.List(ctx.Request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar lojas")
		return
	}
	total, err := c.Stores.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err, "Erro ao contar lojas")
		return
	}

	items := make([]*relation.StoreWithRelations, 0, len(stores))
	for _, s := range stores {
		item, err := c.Relations.Store(ctx.Request.Context(), s, inc)
		if err != nil {
			respondError(ctx, err, "Erro ao carregar relacionamentos da loja")
			return
		}
		if item.Counts, err = c.Relations.StoreCounts(ctx.Request.Context(), s.ID); err != nil {
			respondError(ctx, err, "Erro ao contar registros da loja")
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

// StoreAction ativa, suspende ou verifica uma loja
// @Summary Ativa, suspende ou verifica uma loja
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param action body dto.ActionRequest true "Loja e ação (activate, suspend, verify)"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/stores [post]
func (c *AdminController) StoreAction(ctx *gin.Context) {
	var request dto.ActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	s, changed, err := c.Admin.StoreAction(ctx.Request.Context(), actorFrom(ctx), request.ID, request.Action)
	if err != nil {
		respondError(ctx, err, "Erro ao executar ação na loja")
		return
	}

	ctx.JSON(http.StatusOK, dto.ActionResponse{Action: request.Action, Changed: changed, Item: s})
}

// Billing retorna o resumo de cobrança e as assinaturas
// @Summary Resumo de cobrança
// @Tags admin
// @Produce json
// @Security Bearer
// @Param status query string false "Status da assinatura (TRIAL, ACTIVE, EXPIRED, CANCELLED)"
// @Param include query string false "Relacionamentos (user,store)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.BillingResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/billing [get]
func (c *AdminController) Billing(ctx *gin.Context) {
	status := subscription.Status(ctx.Query("status"))
	page := paginationFrom(ctx)
	inc := relation.ParseInclude(ctx.Query("include"))

	summary, err := c.Reports.BillingSummary(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Erro ao calcular cobrança")
		return
	}

	subs, err := c.Subscriptions.List(ctx.Request.Context(), status, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar assinaturas")
		return
	}
	total, err := c.Subscriptions.Count(ctx.Request.Context(), status)
	if err != nil {
		respondError(ctx, err, "Erro ao contar assinaturas")
		return
	}

	items := make([]*relation.SubscriptionWithRelations, 0, len(subs))
	for _, sub := range subs {
		item, err := c.Relations.Subscription(ctx.Request.Context(), sub, inc)
		if err != nil {
			respondError(ctx, err, "Erro ao carregar relacionamentos da assinatura")
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.BillingResponse{
		Summary:       summary,
		Subscriptions: items,
		Pagination:    page.WithTotal(total),
	})
}

// Report retorna o relatório por período em JSON ou CSV (format=csv)
// @Summary Relatório por período
// @Tags admin
// @Produce json,text/csv
// @Security Bearer
// @Param period query string false "Período (7d, 30d, 90d, 1y)"
// @Param format query string false "json (padrão) ou csv"
// @Success 200 {object} report.AdminReport
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/reports [get]
func (c *AdminController) Report(ctx *gin.Context) {
	period, ok := periodFrom(ctx, "")
	if !ok {
		return
	}

	r, err := c.Reports.AdminReport(ctx.Request.Context(), period)
	if err != nil {
		respondError(ctx, err, "Erro ao gerar relatório")
		return
	}

	if ctx.Query("format") != "csv" {
		ctx.JSON(http.StatusOK, r)
		return
	}

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename="report-`+string(period)+`.csv"`)
	ctx.Status(http.StatusOK)
	if err := report.WriteCSV(ctx.Writer, report.ReportHeader, r.CSVRows()); err != nil {
		c.Logger.Error("Erro ao escrever CSV do relatório", "period", period, "error", err)
	}
}

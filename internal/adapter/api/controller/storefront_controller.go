package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// StorefrontController expõe a vitrine pública das lojas
type StorefrontController struct {
	stores     store.Repository
	products   product.Repository
	traffic    TrafficRecorder
	baseDomain string
	log        logger.Logger
}

// NewStorefrontController cria uma nova instância de StorefrontController
func NewStorefrontController(stores store.Repository, products product.Repository, traffic TrafficRecorder, baseDomain string, log logger.Logger) *StorefrontController {
	return &StorefrontController{stores: stores, products: products, traffic: traffic, baseDomain: baseDomain, log: log}
}

// findPublished busca a loja pelo subdomínio; lojas suspensas não existem para o público
func (c *StorefrontController) findPublished(ctx *gin.Context) (*store.Store, bool) {
	s, err := c.stores.FindBySubdomain(ctx.Request.Context(), ctx.Param("subdomain"))
	if err == nil && !s.IsActive {
		err = repository.ErrStoreNotFound
	}
	if err != nil {
		respondError(ctx, err, "Erro ao buscar loja")
		return nil, false
	}
	return s, true
}

// Show retorna a loja e seus produtos públicos
// @Summary Vitrine da loja
// @Tags storefront
// @Produce json
// @Param subdomain path string true "Subdomínio"
// @Param search query string false "Busca"
// @Param category query string false "Categoria"
// @Param featured query bool false "Somente destaques"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.StorefrontResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /storefront/{subdomain} [get]
func (c *StorefrontController) Show(ctx *gin.Context) {
	s, ok := c.findPublished(ctx)
	if !ok {
		return
	}

	active := true
	filter := product.Filter{
		Search:     ctx.Query("search"),
		Category:   ctx.Query("category"),
		Active:     &active,
		Featured:   parseBool(ctx.Query("featured")),
		Visibility: product.VisibilityPublic,
	}
	page := paginationFrom(ctx)

	resp := dto.StorefrontResponse{Store: s, URL: s.StorefrontURL(c.baseDomain), Products: []*product.Product{}}

	// Loja não verificada aparece sem catálogo
	if s.CanPublish() == nil {
		products, err := c.products.List(ctx.Request.Context(), s.ID, filter, page.Limit, page.Offset())
		if err != nil {
			respondError(ctx, err, "Erro ao listar produtos")
			return
		}
		total, err := c.products.Count(ctx.Request.Context(), s.ID, filter)
		if err != nil {
			respondError(ctx, err, "Erro ao contar produtos")
			return
		}
		if products != nil {
			resp.Products = products
		}
		resp.Total = total
	}

	ctx.JSON(http.StatusOK, resp)
}

// RecordView registra uma visita à vitrine. Falhas no contador não chegam ao visitante.
// @Summary Registra uma visita
// @Tags storefront
// @Accept json
// @Param subdomain path string true "Subdomínio"
// @Param request body dto.ViewRequest false "Visitante"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /storefront/{subdomain}/views [post]
func (c *StorefrontController) RecordView(ctx *gin.Context) {
	var request dto.ViewRequest
	_ = ctx.ShouldBindJSON(&request)

	s, ok := c.findPublished(ctx)
	if !ok {
		return
	}

	visitor := request.VisitorID
	if visitor == "" {
		visitor = ctx.ClientIP()
	}
	if err := c.traffic.RecordView(ctx.Request.Context(), s.ID, visitor, time.Now()); err != nil {
		c.log.Warn("falha ao registrar visita", "store_id", s.ID, "error", err)
	}
	ctx.Status(http.StatusNoContent)
}

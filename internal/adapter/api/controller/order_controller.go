package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
	"github.com/hugohenrick/toko-digital/internal/service"
)

// OrderController gerencia os pedidos da loja
type OrderController struct {
	orders    order.Repository
	service   OrderService
	relations Relations
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orders order.Repository, svc OrderService, relations Relations) *OrderController {
	return &OrderController{orders: orders, service: svc, relations: relations}
}

// List lista os pedidos da loja
// @Summary Lista pedidos
// @Tags orders
// @Produce json
// @Security Bearer
// @Param status query string false "Status"
// @Param customerId query string false "Cliente"
// @Param from query string false "Início (YYYY-MM-DD)"
// @Param to query string false "Fim exclusivo (YYYY-MM-DD)"
// @Param include query string false "Relacionamentos (customer, items, transactions)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	filter := order.Filter{CustomerID: ctx.Query("customerId")}
	if raw := ctx.Query("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			respondError(ctx, err, "")
			return
		}
		filter.Status = status
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

	storeID := currentStoreID(ctx)
	page := paginationFrom(ctx)
	inc := relation.ParseInclude(ctx.Query("include"))

	orders, err := c.orders.List(ctx.Request.Context(), storeID, filter, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar pedidos")
		return
	}
	total, err := c.orders.Count(ctx.Request.Context(), storeID, filter)
	if err != nil {
		respondError(ctx, err, "Erro ao contar pedidos")
		return
	}

	items := make([]*relation.OrderWithRelations, 0, len(orders))
	for _, o := range orders {
		item, err := c.relations.Order(ctx.Request.Context(), o, inc)
		if err != nil {
			respondError(ctx, err, "Erro ao carregar relacionamentos do pedido")
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

// Get busca um pedido da loja
// @Summary Busca um pedido
// @Tags orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Param include query string false "Relacionamentos (customer, items, transactions)"
// @Success 200 {object} relation.OrderWithRelations
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	o, err := c.orders.FindByID(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar pedido")
		return
	}

	item, err := c.relations.Order(ctx.Request.Context(), o, relation.ParseInclude(ctx.Query("include")))
	if err != nil {
		respondError(ctx, err, "Erro ao carregar relacionamentos do pedido")
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create registra um pedido com snapshot dos produtos
// @Summary Cria um pedido
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body dto.CreateOrderRequest true "Pedido"
// @Success 201 {object} order.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var request dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	items := make([]service.NewItem, 0, len(request.Items))
	for _, it := range request.Items {
		items = append(items, service.NewItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	o, err := c.service.Create(ctx.Request.Context(), currentStoreID(ctx), request.CustomerID, items, request.ShippingCost, request.Notes)
	if err != nil {
		respondError(ctx, err, "Erro ao criar pedido")
		return
	}
	ctx.JSON(http.StatusCreated, o)
}

// UpdateStatus move o pedido no ciclo de vida
// @Summary Atualiza o status de um pedido
// @Description PENDING → PROCESSING → SHIPPED → DELIVERED; CANCELLED a partir de qualquer status não final
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Param request body dto.UpdateOrderStatusRequest true "Novo status"
// @Success 200 {object} order.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/status [put]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var request dto.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	next, err := order.ParseStatus(request.Status)
	if err != nil {
		respondError(ctx, err, "")
		return
	}

	o, err := c.service.UpdateStatus(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"), next, request.Paid)
	if err != nil {
		respondError(ctx, err, "Erro ao atualizar pedido")
		return
	}
	ctx.JSON(http.StatusOK, o)
}

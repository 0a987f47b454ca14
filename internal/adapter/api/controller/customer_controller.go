package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customers customer.Repository
	relations Relations
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customers customer.Repository, relations Relations) *CustomerController {
	return &CustomerController{customers: customers, relations: relations}
}

// List lista os clientes da loja
// @Summary Lista clientes
// @Tags customers
// @Produce json
// @Security Bearer
// @Param search query string false "Busca por nome, email ou telefone"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	storeID := currentStoreID(ctx)
	search := ctx.Query("search")
	page := paginationFrom(ctx)

	customers, err := c.customers.List(ctx.Request.Context(), storeID, search, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar clientes")
		return
	}
	total, err := c.customers.Count(ctx.Request.Context(), storeID, search)
	if err != nil {
		respondError(ctx, err, "Erro ao contar clientes")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(customers, page.WithTotal(total)))
}

// Get busca um cliente
// @Summary Busca um cliente
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Param include query string false "Relacionamentos (orders)"
// @Success 200 {object} relation.CustomerWithRelations
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	cust, err := c.customers.FindByID(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar cliente")
		return
	}

	item, err := c.relations.Customer(ctx.Request.Context(), cust, relation.ParseInclude(ctx.Query("include")))
	if err != nil {
		respondError(ctx, err, "Erro ao carregar pedidos do cliente")
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create cadastra um cliente
// @Summary Cria um cliente
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param customer body dto.CustomerRequest true "Cliente"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	cust, err := customer.NewCustomer(currentStoreID(ctx), request.Name, request.Email, request.Phone, request.Address)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.customers.Create(ctx.Request.Context(), cust); err != nil {
		respondError(ctx, err, "Erro ao criar cliente")
		return
	}
	ctx.JSON(http.StatusCreated, cust)
}

// Update atualiza os dados de contato de um cliente
// @Summary Atualiza um cliente
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Cliente"
// @Success 200 {object} customer.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	cust, err := c.customers.FindByID(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar cliente")
		return
	}
	if err := cust.Update(request.Name, request.Email, request.Phone, request.Address); err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.customers.Update(ctx.Request.Context(), cust); err != nil {
		respondError(ctx, err, "Erro ao atualizar cliente")
		return
	}
	ctx.JSON(http.StatusOK, cust)
}

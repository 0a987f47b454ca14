package controller

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
	"github.com/hugohenrick/toko-digital/internal/service"
)

var errMissingImportFile = errors.New("arquivo CSV não enviado no campo file")

// ProductController gerencia o catálogo da loja
type ProductController struct {
	products  product.Repository
	catalog   ProductService
	relations Relations
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(products product.Repository, catalog ProductService, relations Relations) *ProductController {
	return &ProductController{products: products, catalog: catalog, relations: relations}
}

// List lista os produtos da loja
// @Summary Lista produtos
// @Tags products
// @Produce json
// @Security Bearer
// @Param search query string false "Busca por nome ou SKU"
// @Param category query string false "Categoria"
// @Param active query bool false "Somente ativos ou inativos"
// @Param featured query bool false "Somente destaques"
// @Param include query string false "Relacionamentos (store)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	storeID := currentStoreID(ctx)
	filter := product.Filter{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		Active:   parseBool(ctx.Query("active")),
		Featured: parseBool(ctx.Query("featured")),
	}
	page := paginationFrom(ctx)
	inc := relation.ParseInclude(ctx.Query("include"))

	products, err := c.products.List(ctx.Request.Context(), storeID, filter, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar produtos")
		return
	}
	total, err := c.products.Count(ctx.Request.Context(), storeID, filter)
	if err != nil {
		respondError(ctx, err, "Erro ao contar produtos")
		return
	}

	items := make([]*relation.ProductWithRelations, 0, len(products))
	for _, p := range products {
		item, err := c.relations.Product(ctx.Request.Context(), p, inc)
		if err != nil {
			respondError(ctx, err, "Erro ao carregar relacionamentos do produto")
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

// Get busca um produto da loja
// @Summary Busca um produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param include query string false "Relacionamentos (store)"
// @Success 200 {object} relation.ProductWithRelations
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.products.FindByID(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar produto")
		return
	}

	item, err := c.relations.Product(ctx.Request.Context(), p, relation.ParseInclude(ctx.Query("include")))
	if err != nil {
		respondError(ctx, err, "Erro ao carregar relacionamentos do produto")
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create cria um produto. Lojas não verificadas recebem o produto inativo.
// @Summary Cria um produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Produto"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	p, err := product.NewProduct(currentStoreID(ctx), request.Name, request.Price, request.Stock)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := request.Apply(p); err != nil {
		respondError(ctx, err, "")
		return
	}

	if err := c.catalog.Create(ctx.Request.Context(), p); err != nil {
		respondError(ctx, err, "Erro ao criar produto")
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

// Update atualiza um produto
// @Summary Atualiza um produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Produto"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	p, err := c.products.FindByID(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar produto")
		return
	}

	wasActive := p.IsActive
	if err := request.Apply(p); err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.catalog.Update(ctx.Request.Context(), p, wasActive); err != nil {
		respondError(ctx, err, "Erro ao atualizar produto")
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Delete remove um produto
// @Summary Remove um produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.products.Delete(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err, "Erro ao remover produto")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto removido com sucesso", nil))
}

// Bulk executa uma ação em lote sobre o catálogo
// @Summary Ação em lote de produtos
// @Description activate, deactivate, duplicate e delete recebem ids em JSON. import recebe multipart com o CSV no campo file. export devolve CSV (ids vazio exporta tudo).
// @Tags products
// @Accept json,mpfd
// @Produce json,text/csv
// @Security Bearer
// @Param request body dto.BulkRequest true "Ação e produtos"
// @Success 200 {object} service.BulkResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/bulk [post]
func (c *ProductController) Bulk(ctx *gin.Context) {
	var request dto.BulkRequest
	var err error
	if ctx.ContentType() == "multipart/form-data" {
		err = ctx.ShouldBind(&request)
	} else {
		err = ctx.ShouldBindJSON(&request)
	}
	if err != nil {
		badRequest(ctx, err)
		return
	}

	storeID := currentStoreID(ctx)
	switch request.Action {
	case service.BulkImport:
		c.importCSV(ctx, storeID)
	case service.BulkExport:
		c.exportCSV(ctx, storeID, request.IDs)
	default:
		res, err := c.catalog.Bulk(ctx.Request.Context(), storeID, request.Action, request.IDs)
		if err != nil {
			respondError(ctx, err, "Erro ao executar ação em lote")
			return
		}
		ctx.JSON(http.StatusOK, res)
	}
}

func (c *ProductController) importCSV(ctx *gin.Context, storeID string) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		badRequest(ctx, errMissingImportFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(ctx, err)
		return
	}
	defer f.Close()

	res, err := c.catalog.Import(ctx.Request.Context(), storeID, f)
	if err != nil {
		respondError(ctx, err, "Erro ao importar produtos")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (c *ProductController) exportCSV(ctx *gin.Context, storeID string, ids []string) {
	// Gera em memória para ainda poder responder erro em JSON
	var buf bytes.Buffer
	if _, err := c.catalog.Export(ctx.Request.Context(), storeID, ids, &buf); err != nil {
		respondError(ctx, err, "Erro ao exportar produtos")
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="products.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

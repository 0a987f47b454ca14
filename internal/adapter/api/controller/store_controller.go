package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
)

// StoreController gerencia a aparência da vitrine e a integração de WhatsApp
type StoreController struct {
	stores     store.Repository
	templates  store.TemplateRepository
	baseDomain string
}

// NewStoreController cria uma nova instância de StoreController
func NewStoreController(stores store.Repository, templates store.TemplateRepository, baseDomain string) *StoreController {
	return &StoreController{stores: stores, templates: templates, baseDomain: baseDomain}
}

// Template retorna o template atual da loja
// @Summary Template atual
// @Tags store
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.StoreTemplateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/template [get]
func (c *StoreController) Template(ctx *gin.Context) {
	s, err := c.stores.FindByID(ctx.Request.Context(), currentStoreID(ctx))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar loja")
		return
	}

	resp, err := c.templateResponse(ctx, s)
	if err != nil {
		respondError(ctx, err, "Erro ao buscar template")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Customize personaliza o tema atual
// @Summary Personaliza o tema
// @Description Campos vazios mantêm o valor atual
// @Tags store
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateThemeRequest true "Tema"
// @Success 200 {object} dto.StoreTemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/template [post]
func (c *StoreController) Customize(ctx *gin.Context) {
	var request dto.UpdateThemeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	s, err := c.stores.FindByID(ctx.Request.Context(), currentStoreID(ctx))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar loja")
		return
	}
	s.UpdateTheme(request.Theme)
	if err := c.stores.Update(ctx.Request.Context(), s); err != nil {
		respondError(ctx, err, "Erro ao salvar tema")
		return
	}

	resp, err := c.templateResponse(ctx, s)
	if err != nil {
		respondError(ctx, err, "Erro ao buscar template")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Templates lista o catálogo de templates
// @Summary Lista templates
// @Tags store
// @Produce json
// @Security Bearer
// @Success 200 {array} store.Template
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/templates [get]
func (c *StoreController) Templates(ctx *gin.Context) {
	templates, err := c.templates.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Erro ao listar templates")
		return
	}
	if templates == nil {
		templates = []*store.Template{}
	}
	ctx.JSON(http.StatusOK, templates)
}

// ApplyTemplate troca o template da loja e reinicia o tema
// @Summary Aplica um template
// @Tags store
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ApplyTemplateRequest true "Template"
// @Success 200 {object} dto.StoreTemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/templates [post]
func (c *StoreController) ApplyTemplate(ctx *gin.Context) {
	var request dto.ApplyTemplateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	t, err := c.templates.FindByID(ctx.Request.Context(), request.TemplateID)
	if err != nil {
		respondError(ctx, err, "Erro ao buscar template")
		return
	}
	s, err := c.stores.FindByID(ctx.Request.Context(), currentStoreID(ctx))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar loja")
		return
	}

	s.ApplyTemplate(t)
	if err := c.stores.Update(ctx.Request.Context(), s); err != nil {
		respondError(ctx, err, "Erro ao aplicar template")
		return
	}

	ctx.JSON(http.StatusOK, dto.StoreTemplateResponse{
		TemplateID: s.TemplateID,
		Template:   t,
		Theme:      s.Theme,
		PreviewURL: s.StorefrontURL(c.baseDomain),
	})
}

func (c *StoreController) templateResponse(ctx *gin.Context, s *store.Store) (dto.StoreTemplateResponse, error) {
	resp := dto.StoreTemplateResponse{
		TemplateID: s.TemplateID,
		Theme:      s.Theme,
		PreviewURL: s.StorefrontURL(c.baseDomain),
	}
	if s.TemplateID == "" {
		return resp, nil
	}

	t, err := c.templates.FindByID(ctx.Request.Context(), s.TemplateID)
	switch {
	case err == nil:
		resp.Template = t
	case !matches(err, []error{repository.ErrTemplateNotFound}):
		return resp, err
	}
	return resp, nil
}

// WhatsApp retorna a configuração de WhatsApp da loja
// @Summary Configuração de WhatsApp
// @Tags store
// @Produce json
// @Security Bearer
// @Success 200 {object} store.WhatsAppSettings
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/whatsapp [get]
func (c *StoreController) WhatsApp(ctx *gin.Context) {
	settings, err := c.stores.GetWhatsAppSettings(ctx.Request.Context(), currentStoreID(ctx))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar configuração de WhatsApp")
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// SaveWhatsApp cria ou atualiza a configuração de WhatsApp da loja
// @Summary Salva a configuração de WhatsApp
// @Tags store
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.WhatsAppRequest true "Configuração"
// @Success 200 {object} store.WhatsAppSettings
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/whatsapp [put]
func (c *StoreController) SaveWhatsApp(ctx *gin.Context) {
	var request dto.WhatsAppRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	if request.IsEnabled && request.PhoneNumber == "" {
		respondError(ctx, errWhatsAppPhone, "")
		return
	}

	settings := &store.WhatsAppSettings{
		StoreID:         currentStoreID(ctx),
		PhoneNumber:     request.PhoneNumber,
		IsEnabled:       request.IsEnabled,
		GreetingMessage: request.GreetingMessage,
		OrderTemplate:   request.OrderTemplate,
		UpdatedAt:       time.Now(),
	}
	if err := c.stores.SaveWhatsAppSettings(ctx.Request.Context(), settings); err != nil {
		respondError(ctx, err, "Erro ao salvar configuração de WhatsApp")
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

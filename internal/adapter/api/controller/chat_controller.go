package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/chat"
)

// ChatController gerencia as conversas da loja com seus clientes
type ChatController struct {
	chats chat.Repository
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(chats chat.Repository) *ChatController {
	return &ChatController{chats: chats}
}

// List lista as conversas da loja
// @Summary Lista conversas
// @Tags chats
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/chats [get]
func (c *ChatController) List(ctx *gin.Context) {
	storeID := currentStoreID(ctx)
	page := paginationFrom(ctx)

	chats, err := c.chats.ListChats(ctx.Request.Context(), storeID, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar conversas")
		return
	}
	total, err := c.chats.CountChats(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err, "Erro ao contar conversas")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(chats, page.WithTotal(total)))
}

// Create abre uma conversa com um cliente
// @Summary Abre uma conversa
// @Tags chats
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ChatRequest true "Cliente"
// @Success 201 {object} chat.Chat
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/chats [post]
func (c *ChatController) Create(ctx *gin.Context) {
	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	ch, err := chat.NewChat(currentStoreID(ctx), request.CustomerName, request.CustomerPhone)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.chats.CreateChat(ctx.Request.Context(), ch); err != nil {
		respondError(ctx, err, "Erro ao abrir conversa")
		return
	}
	ctx.JSON(http.StatusCreated, ch)
}

// History retorna as mensagens de uma conversa
// @Summary Histórico da conversa
// @Tags chats
// @Produce json
// @Security Bearer
// @Param id path string true "ID da conversa"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {array} chat.Message
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/chats/{id}/messages [get]
func (c *ChatController) History(ctx *gin.Context) {
	ch, err := c.chats.FindChat(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar conversa")
		return
	}

	page := paginationFrom(ctx)
	messages, err := c.chats.GetHistory(ctx.Request.Context(), ch.ID, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao buscar mensagens")
		return
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	ctx.JSON(http.StatusOK, messages)
}

// Send adiciona uma mensagem à conversa
// @Summary Envia uma mensagem
// @Tags chats
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da conversa"
// @Param request body dto.MessageRequest true "Mensagem"
// @Success 201 {object} chat.Message
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /store/chats/{id}/messages [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var request dto.MessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	ch, err := c.chats.FindChat(ctx.Request.Context(), currentStoreID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar conversa")
		return
	}

	sender := chat.SenderStore
	if request.Sender != "" {
		sender = chat.Sender(request.Sender)
	}
	m, err := ch.NewMessage(sender, request.Content)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.chats.SaveMessage(ctx.Request.Context(), ch, m); err != nil {
		respondError(ctx, err, "Erro ao salvar mensagem")
		return
	}
	ctx.JSON(http.StatusCreated, m)
}

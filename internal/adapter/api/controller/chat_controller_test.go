package controller

import (
	"net/http"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/chat"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatController(t *testing.T) {
	chats := new(mocks.ChatRepository)
	ctrl := NewChatController(chats)

	router := newTestRouter("s1")
	router.GET("/store/chats", ctrl.List)
	router.POST("/store/chats", ctrl.Create)
	router.GET("/store/chats/:id/messages", ctrl.History)
	router.POST("/store/chats/:id/messages", ctrl.Send)

	conv := &chat.Chat{ID: "ch1", StoreID: "s1", CustomerPhone: "0812"}
	chats.On("FindChat", mock.Anything, "s1", "ch1").Return(conv, nil)
	chats.On("FindChat", mock.Anything, "s1", "outra-loja").Return(nil, repository.ErrChatNotFound)

	t.Run("abre conversa", func(t *testing.T) {
		chats.On("CreateChat", mock.Anything, mock.AnythingOfType("*chat.Chat")).Return(nil).Once()

		w := performJSON(router, http.MethodPost, "/store/chats", map[string]string{"customerName": "Dewi", "customerPhone": " 0812 "})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var c chat.Chat
		decodeBody(t, w, &c)
		assert.Equal(t, "0812", c.CustomerPhone)
		assert.Equal(t, "s1", c.StoreID)
	})

	t.Run("mensagem sem remetente é da loja", func(t *testing.T) {
		chats.On("SaveMessage", mock.Anything, conv, mock.AnythingOfType("*chat.Message")).Return(nil).Once()

		w := performJSON(router, http.MethodPost, "/store/chats/ch1/messages", map[string]string{"content": "Pesanan sudah dikirim"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var m chat.Message
		decodeBody(t, w, &m)
		assert.Equal(t, chat.SenderStore, m.Sender)
		assert.NotNil(t, conv.LastMessageAt)
	})

	t.Run("remetente inválido", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/store/chats/ch1/messages", map[string]string{"content": "oi", "sender": "BOT"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conversa de outra loja", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/store/chats/outra-loja/messages", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("histórico vazio", func(t *testing.T) {
		chats.On("GetHistory", mock.Anything, "ch1", 10, 0).Return(nil, nil).Once()

		w := performJSON(router, http.MethodGet, "/store/chats/ch1/messages", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

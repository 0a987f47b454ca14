package dto

import (
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
)

// StoreTemplateResponse é o template atual da loja com o tema aplicado
type StoreTemplateResponse struct {
	TemplateID string              `json:"templateId"`
	Template   *store.Template     `json:"template,omitempty"`
	Theme      store.ThemeSettings `json:"theme"`
	PreviewURL string              `json:"previewUrl"`
}

// UpdateThemeRequest personaliza o tema atual
type UpdateThemeRequest struct {
	Theme store.ThemeSettings `json:"theme" binding:"required"`
}

// ApplyTemplateRequest troca o template da loja
type ApplyTemplateRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
}

// WhatsAppRequest representa a configuração de WhatsApp da loja
type WhatsAppRequest struct {
	PhoneNumber     string `json:"phoneNumber"`
	IsEnabled       bool   `json:"isEnabled"`
	GreetingMessage string `json:"greetingMessage"`
	OrderTemplate   string `json:"orderTemplate"`
}

// ChatRequest abre uma conversa
type ChatRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
}

// MessageRequest envia uma mensagem; o remetente padrão é a loja
type MessageRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content" binding:"required"`
}

// StorefrontResponse é a vitrine pública de uma loja
type StorefrontResponse struct {
	Store    *store.Store       `json:"store"`
	URL      string             `json:"url"`
	Products []*product.Product `json:"products"`
	Total    int                `json:"total"`
}

// ViewRequest registra uma visita à vitrine
type ViewRequest struct {
	VisitorID string `json:"visitorId"`
}

// DashboardRequest escolhe o período do painel via POST
type DashboardRequest struct {
	Period string `json:"period"`
}

// DashboardResponse é o painel do lojista com os pedidos recentes
type DashboardResponse struct {
	Stats          report.DashboardStats `json:"stats"`
	RecentOrders   []*order.Order        `json:"recentOrders"`
	OrdersByStatus order.StatusCount     `json:"ordersByStatus"`
}

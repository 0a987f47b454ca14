package dto

import (
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/notification"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// ActionResponse é o retorno de uma ação administrativa.
// Changed é false quando o alvo já estava no estado pedido.
type ActionResponse struct {
	Action  string      `json:"action"`
	Changed bool        `json:"changed"`
	Item    interface{} `json:"item"`
}

// AdminSettingsResponse traz o perfil do administrador e as preferências da plataforma
type AdminSettingsResponse struct {
	Profile  *user.User             `json:"profile"`
	Settings setting.SystemSettings `json:"settings"`
}

// AdminProfileRequest edita o perfil do administrador
type AdminProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateSettingsRequest atualiza perfil e preferências; campos nil não mudam
type UpdateSettingsRequest struct {
	Profile  *AdminProfileRequest    `json:"profile"`
	Settings *setting.SystemSettings `json:"settings"`
}

// SettingsActionRequest dispara uma ação de sistema (clear_cache ou backup_database)
type SettingsActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// SettingsActionResponse é o retorno de uma ação de sistema
type SettingsActionResponse struct {
	Action  string `json:"action"`
	Cleared int    `json:"cleared,omitempty"`
	JobID   string `json:"jobId,omitempty"`
}

// NotificationRequest cria um aviso da plataforma
type NotificationRequest struct {
	Title      string            `json:"title" binding:"required"`
	Message    string            `json:"message"`
	Type       notification.Type `json:"type"`
	TargetRole *user.Role        `json:"targetRole"`
}

// TransactionRequest registra um lançamento manual
type TransactionRequest struct {
	StoreID     string           `json:"storeId" binding:"required"`
	OrderID     *string          `json:"orderId"`
	Type        finance.Type     `json:"type" binding:"required"`
	Category    finance.Category `json:"category" binding:"required"`
	Amount      float64          `json:"amount" binding:"required,gt=0"`
	Description string           `json:"description"`
	Date        *time.Time       `json:"date"`
}

// BillingResponse traz o resumo de cobrança e a página de assinaturas
type BillingResponse struct {
	Summary       report.BillingSummary                 `json:"summary"`
	Subscriptions []*relation.SubscriptionWithRelations `json:"subscriptions"`
	Pagination    report.Pagination                     `json:"pagination" swaggertype:"object"`
}

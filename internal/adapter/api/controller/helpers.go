package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/chat"
	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/notification"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/hugohenrick/toko-digital/pkg/auth"
	"github.com/hugohenrick/toko-digital/pkg/tenant"
)

var errWhatsAppPhone = errors.New("telefone é obrigatório para habilitar o WhatsApp")

var notFoundErrors = []error{
	repository.ErrUserNotFound,
	repository.ErrStoreNotFound,
	repository.ErrProductNotFound,
	repository.ErrOrderNotFound,
	repository.ErrCustomerNotFound,
	repository.ErrSubscriptionNotFound,
	repository.ErrChatNotFound,
	repository.ErrNotificationNotFound,
	repository.ErrTemplateNotFound,
	repository.ErrWhatsAppNotConfigured,
}

var conflictErrors = []error{
	repository.ErrUserDuplicateEmail,
	repository.ErrStoreDuplicate,
	service.ErrEmailTaken,
	service.ErrSubdomainTaken,
}

var unauthorizedErrors = []error{
	service.ErrInvalidCredentials,
	auth.ErrInvalidToken,
	auth.ErrExpiredToken,
	auth.ErrWrongTokenType,
	auth.ErrSessionNotFound,
}

var forbiddenErrors = []error{
	auth.ErrUserSuspended,
	service.ErrRegistrationClosed,
	service.ErrMaintenance,
	service.ErrSelfAction,
	store.ErrStoreNotVerified,
	store.ErrStoreInactive,
}

var badRequestErrors = []error{
	service.ErrInvalidAction,
	service.ErrProductUnavailable,
	service.ErrCustomerNotInStore,
	service.ErrEmptySelection,
	service.ErrInvalidImportHeader,
	errWhatsAppPhone,
	errMissingImportFile,
	report.ErrInvalidPeriod, report.ErrEmptyCSV,
	user.ErrEmptyName, user.ErrEmptyEmail, user.ErrShortPassword, user.ErrInvalidRole,
	store.ErrEmptyName, store.ErrInvalidSubdomain, store.ErrReservedName,
	product.ErrEmptyName, product.ErrNegativePrice, product.ErrNegativeStock,
	product.ErrInsufficientStock, product.ErrInvalidVisibility,
	order.ErrNoItems, order.ErrInvalidQuantity, order.ErrInvalidTransition, order.ErrInvalidStatus,
	customer.ErrEmptyName, customer.ErrNoContact,
	finance.ErrInvalidAmount, finance.ErrInvalidType, finance.ErrInvalidCategory, finance.ErrEmptyStore,
	chat.ErrEmptyContent, chat.ErrInvalidSender, chat.ErrNoPhone,
	notification.ErrEmptyTitle, notification.ErrInvalidType,
	setting.ErrEmptyPlatform, setting.ErrInvalidTrialDays,
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor traduz um erro de domínio para o status HTTP
func statusFor(err error) int {
	switch {
	case matches(err, notFoundErrors):
		return http.StatusNotFound
	case matches(err, conflictErrors):
		return http.StatusConflict
	case matches(err, unauthorizedErrors):
		return http.StatusUnauthorized
	case matches(err, forbiddenErrors):
		return http.StatusForbidden
	case matches(err, badRequestErrors):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError responde o erro; message é usada apenas para erros internos
func respondError(ctx *gin.Context, err error, message string) {
	status := statusFor(err)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
}

// badRequest responde uma requisição mal formada
func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
}

// paginationFrom lê page e limit da query
func paginationFrom(ctx *gin.Context) report.Pagination {
	return report.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
}

// periodFrom lê o período da query ou do corpo já decodificado
func periodFrom(ctx *gin.Context, fallback string) (report.Period, bool) {
	raw := ctx.Query("period")
	if raw == "" {
		raw = fallback
	}
	p, err := report.ParsePeriod(raw)
	if err != nil {
		badRequest(ctx, err)
		return "", false
	}
	return p, true
}

// actorFrom identifica o administrador da requisição
func actorFrom(ctx *gin.Context) service.Actor {
	return service.Actor{AdminID: ctx.GetString(auth.KeyUserID), IP: ctx.ClientIP()}
}

// currentStoreID retorna a loja da requisição
func currentStoreID(ctx *gin.Context) string {
	return tenant.GetStoreID(ctx)
}

// parseBool interpreta filtros opcionais "true"/"false"
func parseBool(raw string) *bool {
	switch raw {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

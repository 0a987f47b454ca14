package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/activitylog"
	"github.com/hugohenrick/toko-digital/internal/domain/notification"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/hugohenrick/toko-digital/pkg/auth"
)

// Ações de sistema aceitas em POST /admin/settings
const (
	settingsClearCache     = activitylog.ActionClearCache
	settingsBackupDatabase = activitylog.ActionBackupDatabase
)

// GetSettings retorna o perfil do administrador e as preferências da plataforma
// @Summary Preferências do sistema
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AdminSettingsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/settings [get]
func (c *AdminController) GetSettings(ctx *gin.Context) {
	profile, err := c.Accounts.Profile(ctx.Request.Context(), ctx.GetString(auth.KeyUserID))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar perfil")
		return
	}
	settings, err := c.Admin.Settings(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Erro ao buscar preferências")
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminSettingsResponse{Profile: profile.User, Settings: settings})
}

// UpdateSettings atualiza o perfil do administrador e as preferências da plataforma
// @Summary Atualiza as preferências do sistema
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param settings body dto.UpdateSettingsRequest true "Perfil e preferências"
// @Success 200 {object} dto.AdminSettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/settings [put]
func (c *AdminController) UpdateSettings(ctx *gin.Context) {
	var request dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	userID := ctx.GetString(auth.KeyUserID)
	var resp dto.AdminSettingsResponse

	if request.Profile != nil {
		u, err := c.Accounts.UpdateProfile(ctx.Request.Context(), userID, request.Profile.Name, request.Profile.Phone)
		if err != nil {
			respondError(ctx, err, "Erro ao atualizar perfil")
			return
		}
		resp.Profile = u
	} else {
		profile, err := c.Accounts.Profile(ctx.Request.Context(), userID)
		if err != nil {
			respondError(ctx, err, "Erro ao buscar perfil")
			return
		}
		resp.Profile = profile.User
	}

	var err error
	if request.Settings != nil {
		resp.Settings, err = c.Admin.UpdateSettings(ctx.Request.Context(), actorFrom(ctx), *request.Settings)
	} else {
		resp.Settings, err = c.Admin.Settings(ctx.Request.Context())
	}
	if err != nil {
		respondError(ctx, err, "Erro ao salvar preferências")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SettingsAction executa uma ação de sistema
// @Summary Executa uma ação de sistema
// @Description clear_cache descarta os relatórios em cache; backup_database registra o pedido e retorna a referência do job
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param action body dto.SettingsActionRequest true "Ação (clear_cache, backup_database)"
// @Success 200 {object} dto.SettingsActionResponse
// @Success 202 {object} dto.SettingsActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/settings [post]
func (c *AdminController) SettingsAction(ctx *gin.Context) {
	var request dto.SettingsActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	switch request.Action {
	case settingsClearCache:
		n, err := c.Admin.ClearCache(ctx.Request.Context(), actorFrom(ctx))
		if err != nil {
			respondError(ctx, err, "Erro ao limpar cache")
			return
		}
		ctx.JSON(http.StatusOK, dto.SettingsActionResponse{Action: request.Action, Cleared: n})
	case settingsBackupDatabase:
		jobID, err := c.Admin.RequestBackup(ctx.Request.Context(), actorFrom(ctx))
		if err != nil {
			respondError(ctx, err, "Erro ao solicitar backup")
			return
		}
		ctx.JSON(http.StatusAccepted, dto.SettingsActionResponse{Action: request.Action, JobID: jobID})
	default:
		respondError(ctx, fmt.Errorf("%w: %s", service.ErrInvalidAction, request.Action), "")
	}
}

// ListNotifications lista os avisos visíveis ao papel do administrador
// @Summary Lista notificações
// @Tags admin
// @Produce json
// @Security Bearer
// @Param unread query bool false "Somente não lidas"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/notifications [get]
func (c *AdminController) ListNotifications(ctx *gin.Context) {
	role := user.Role(ctx.GetString(auth.KeyUserRole))
	unread := ctx.Query("unread") == "true"
	page := paginationFrom(ctx)

	items, err := c.Notifications.ListForRole(ctx.Request.Context(), role, unread, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar notificações")
		return
	}
	total, err := c.Notifications.CountForRole(ctx.Request.Context(), role, unread)
	if err != nil {
		respondError(ctx, err, "Erro ao contar notificações")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

// CreateNotification publica um aviso da plataforma
// @Summary Cria uma notificação
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param notification body dto.NotificationRequest true "Notificação"
// @Success 201 {object} notification.SystemNotification
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/notifications [post]
func (c *AdminController) CreateNotification(ctx *gin.Context) {
	var request dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	if request.TargetRole != nil && !request.TargetRole.Valid() {
		respondError(ctx, user.ErrInvalidRole, "")
		return
	}

	n, err := notification.New(request.Title, request.Message, request.Type, request.TargetRole)
	if err != nil {
		respondError(ctx, err, "")
		return
	}
	if err := c.Notifications.Create(ctx.Request.Context(), n); err != nil {
		respondError(ctx, err, "Erro ao criar notificação")
		return
	}

	ctx.JSON(http.StatusCreated, n)
}

// MarkNotificationRead marca um aviso como lido
// @Summary Marca uma notificação como lida
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/notifications/{id}/read [put]
func (c *AdminController) MarkNotificationRead(ctx *gin.Context) {
	if err := c.Notifications.MarkRead(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, "Erro ao marcar notificação")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificação marcada como lida", nil))
}

// ListActivity lista o registro de ações administrativas
// @Summary Lista atividades administrativas
// @Tags admin
// @Produce json
// @Security Bearer
// @Param adminId query string false "Administrador"
// @Param targetType query string false "Tipo de alvo (USER, STORE, SYSTEM)"
// @Param action query string false "Ação"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/activity [get]
func (c *AdminController) ListActivity(ctx *gin.Context) {
	filter := activitylog.Filter{
		AdminID:    ctx.Query("adminId"),
		TargetType: ctx.Query("targetType"),
		Action:     ctx.Query("action"),
	}
	page := paginationFrom(ctx)

	items, err := c.Activity.List(ctx.Request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respondError(ctx, err, "Erro ao listar atividades")
		return
	}
	total, err := c.Activity.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err, "Erro ao contar atividades")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items, page.WithTotal(total)))
}

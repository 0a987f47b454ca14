package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/pkg/auth"
)

// ProfileController gerencia o perfil do lojista
type ProfileController struct {
	accounts   AccountService
	baseDomain string
}

// NewProfileController cria uma nova instância de ProfileController
func NewProfileController(accounts AccountService, baseDomain string) *ProfileController {
	return &ProfileController{accounts: accounts, baseDomain: baseDomain}
}

// Get retorna o perfil do usuário autenticado
// @Summary Perfil do lojista
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	profile, err := c.accounts.Profile(ctx.Request.Context(), ctx.GetString(auth.KeyUserID))
	if err != nil {
		respondError(ctx, err, "Erro ao buscar perfil")
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile, c.baseDomain))
}

// Update atualiza nome e telefone e troca a senha quando newPassword é informado
// @Summary Atualiza o perfil do lojista
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param profile body dto.UpdateProfileRequest true "Dados do perfil"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/profile [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	var request dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	userID := ctx.GetString(auth.KeyUserID)
	if _, err := c.accounts.UpdateProfile(ctx.Request.Context(), userID, request.Name, request.Phone); err != nil {
		respondError(ctx, err, "Erro ao atualizar perfil")
		return
	}

	if request.NewPassword != "" {
		if err := c.accounts.ChangePassword(ctx.Request.Context(), userID, request.CurrentPassword, request.NewPassword); err != nil {
			respondError(ctx, err, "Erro ao alterar senha")
			return
		}
	}

	profile, err := c.accounts.Profile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Erro ao buscar perfil")
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile, c.baseDomain))
}

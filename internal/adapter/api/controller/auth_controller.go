package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/hugohenrick/toko-digital/pkg/auth"
)

// AccountService são as operações de conta usadas pelos controllers
type AccountService interface {
	Register(ctx context.Context, in service.Registration) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID string) (*service.Profile, error)
	UpdateProfile(ctx context.Context, userID, name, phone string) (*user.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	accounts   AccountService
	baseDomain string
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(accounts AccountService, baseDomain string) *AuthController {
	return &AuthController{
		accounts:   accounts,
		baseDomain: baseDomain,
	}
}

func toTokenResponse(t *auth.Tokens) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		ExpiresIn:    t.ExpiresIn,
	}
}

func toAuthResponse(r *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{User: r.User, Store: r.Store, TokenResponse: toTokenResponse(r.Tokens)}
}

func toProfileResponse(p *service.Profile, baseDomain string) dto.ProfileResponse {
	resp := dto.ProfileResponse{User: p.User, Store: p.Store, Subscription: p.Subscription, Trial: p.Trial}
	if p.Store != nil {
		resp.StoreURL = p.Store.StorefrontURL(baseDomain)
	}
	return resp
}

// Register cadastra um lojista com sua loja e período de teste
// @Summary Cadastra um lojista
// @Description Cria o usuário, a loja e a assinatura de teste e retorna os tokens da sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := c.accounts.Register(ctx.Request.Context(), service.Registration{
		Name:      request.Name,
		Email:     request.Email,
		Password:  request.Password,
		Phone:     request.Phone,
		StoreName: request.StoreName,
		Subdomain: request.Subdomain,
	})
	if err != nil {
		respondError(ctx, err, "Erro ao cadastrar usuário")
		return
	}

	ctx.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login autentica um usuário e retorna os tokens da sessão
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um par de tokens JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := c.accounts.Login(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondError(ctx, err, "Erro ao autenticar usuário")
		return
	}

	ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// RefreshToken renova a sessão; o token de renovação usado deixa de valer
// @Summary Renova os tokens da sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token de renovação"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	tokens, err := c.accounts.Refresh(ctx.Request.Context(), request.RefreshToken)
	if err != nil {
		respondError(ctx, err, "Erro ao renovar token")
		return
	}

	ctx.JSON(http.StatusOK, toTokenResponse(tokens))
}

// Logout encerra a sessão
// @Summary Encerra a sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token de renovação da sessão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	if err := c.accounts.Logout(ctx.Request.Context(), request.RefreshToken); err != nil {
		respondError(ctx, err, "Erro ao encerrar sessão")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão encerrada", nil))
}

// Me retorna o usuário autenticado com loja, assinatura e estado do teste
// @Summary Retorna informações do usuário atual
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString(auth.KeyUserID)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autenticado", ""))
		return
	}

	profile, err := c.accounts.Profile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Erro ao buscar usuário")
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(profile, c.baseDomain))
}

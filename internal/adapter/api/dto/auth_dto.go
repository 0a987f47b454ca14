package dto

import (
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// RegisterRequest representa os dados de cadastro de um lojista
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
	StoreName string `json:"storeName" binding:"required"`
	Subdomain string `json:"subdomain"`
}

// LoginRequest representa os dados para login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest representa os dados para renovação e encerramento de sessão
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse são os tokens de uma sessão
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthResponse representa a resposta de cadastro e login
type AuthResponse struct {
	User  *user.User   `json:"user"`
	Store *store.Store `json:"store,omitempty"`
	TokenResponse
}

// ProfileResponse é o perfil do usuário autenticado
type ProfileResponse struct {
	User         *user.User                 `json:"user"`
	Store        *store.Store               `json:"store,omitempty"`
	StoreURL     string                     `json:"storeUrl,omitempty"`
	Subscription *subscription.Subscription `json:"subscription,omitempty"`
	Trial        subscription.TrialState    `json:"trial"`
}

// UpdateProfileRequest atualiza nome e telefone e, opcionalmente, a senha
type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=8"`
}

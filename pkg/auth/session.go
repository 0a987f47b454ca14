package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

var (
	ErrSessionNotFound = errors.New("sessão não encontrada ou revogada")
	ErrUserSuspended   = errors.New("usuário suspenso")
)

// SessionStore guarda os tokens de renovação válidos (um registro por jti)
type SessionStore interface {
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	// Delete remove o token e informa se ele existia
	Delete(ctx context.Context, tokenID string) (bool, error)
	DeleteAllForUser(ctx context.Context, userID string) error
}

// UserFinder é o subconjunto do repositório de usuários usado na renovação
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// Tokens é o par de tokens entregue ao cliente
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// SessionService controla o ciclo de vida das sessões: emissão, renovação com rotação e revogação
type SessionService struct {
	jwt   *JWTService
	store SessionStore
	users UserFinder
}

// NewSessionService cria uma nova instância de SessionService
func NewSessionService(jwtService *JWTService, store SessionStore, users UserFinder) *SessionService {
	return &SessionService{
		jwt:   jwtService,
		store: store,
		users: users,
	}
}

// Issue emite um novo par de tokens para o usuário
func (s *SessionService) Issue(ctx context.Context, u *user.User, storeID string) (*Tokens, error) {
	if !u.IsActive {
		return nil, ErrUserSuspended
	}

	access, err := s.jwt.GenerateToken(u, storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token de acesso: %w", err)
	}

	refresh, claims, err := s.jwt.GenerateRefreshToken(u, storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token de renovação: %w", err)
	}

	if err := s.store.Save(ctx, claims.ID, u.ID, s.jwt.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("erro ao registrar sessão: %w", err)
	}

	return &Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwt.AccessTTL().Seconds()),
	}, nil
}

// Refresh troca um token de renovação válido por um novo par. O token antigo é revogado.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// consome e checa numa só operação; só um refresh concorrente vence
	consumed, err := s.store.Delete(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao revogar sessão: %w", err)
	}
	if !consumed {
		return nil, ErrSessionNotFound
	}

	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário da sessão: %w", err)
	}
	if !u.IsActive {
		_ = s.store.DeleteAllForUser(ctx, u.ID)
		return nil, ErrUserSuspended
	}

	return s.Issue(ctx, u, claims.StoreID)
}

// Revoke encerra a sessão do token de renovação informado (logout).
// Um token expirado já saiu do store pelo TTL, então não há nada a revogar.
func (s *SessionService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if errors.Is(err, ErrExpiredToken) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = s.store.Delete(ctx, claims.ID)
	return err
}

// RevokeAll encerra todas as sessões de um usuário
func (s *SessionService) RevokeAll(ctx context.Context, userID string) error {
	return s.store.DeleteAllForUser(ctx, userID)
}

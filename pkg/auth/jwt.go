package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// Erros específicos
var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrInvalidClaims  = errors.New("claims inválidas")
	ErrMissingJWTKey  = errors.New("chave secreta JWT não configurada")
	ErrWrongTokenType = errors.New("tipo de token incorreto")
)

const issuer = "toko-digital-api"

// TokenType diferencia tokens de acesso e de renovação
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// JWTClaims representa as claims personalizadas do token JWT
type JWTClaims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	StoreID string    `json:"store_id,omitempty"`
	Type    TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// JWTService implementa serviços relacionados a tokens JWT
type JWTService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService cria uma nova instância de JWTService
func NewJWTService(secret string, accessTTL, refreshTTL time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingJWTKey
	}
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}

	return &JWTService{
		secretKey:  []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// AccessTTL retorna a validade dos tokens de acesso
func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL retorna a validade dos tokens de renovação
func (s *JWTService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// GenerateToken gera um token de acesso para o usuário
func (s *JWTService) GenerateToken(u *user.User, storeID string) (string, error) {
	token, _, err := s.sign(u, storeID, TokenAccess, s.accessTTL)
	return token, err
}

// GenerateRefreshToken gera um token de renovação e retorna também o seu ID (jti)
func (s *JWTService) GenerateRefreshToken(u *user.User, storeID string) (string, *JWTClaims, error) {
	return s.sign(u, storeID, TokenRefresh, s.refreshTTL)
}

func (s *JWTService) sign(u *user.User, storeID string, typ TokenType, ttl time.Duration) (string, *JWTClaims, error) {
	now := s.now()

	claims := &JWTClaims{
		UserID:  u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		StoreID: storeID,
		Type:    typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", nil, err
	}

	return tokenString, claims, nil
}

// ValidateToken valida um token JWT e retorna as claims se for válido
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar o método de assinatura
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// ValidateAccessToken valida o token e garante que é um token de acesso
func (s *JWTService) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	return s.validateType(tokenString, TokenAccess)
}

// ValidateRefreshToken valida o token e garante que é um token de renovação
func (s *JWTService) ValidateRefreshToken(tokenString string) (*JWTClaims, error) {
	return s.validateType(tokenString, TokenRefresh)
}

func (s *JWTService) validateType(tokenString string, typ TokenType) (*JWTClaims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != typ {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

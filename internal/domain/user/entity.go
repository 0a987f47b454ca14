package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrShortPassword = errors.New("senha deve ter pelo menos 8 caracteres")
	ErrInvalidRole   = errors.New("papel de usuário inválido")
)

// Role representa o papel/função do usuário
type Role string

// Constantes para Role
const (
	RoleAdmin      Role = "ADMIN"       // Administrador da plataforma
	RoleStoreOwner Role = "STORE_OWNER" // Dono de loja
	RoleCustomer   Role = "CUSTOMER"    // Cliente final
	RoleSuperAdmin Role = "SUPER_ADMIN" // Acesso a relatórios financeiros globais
)

// Valid verifica se o papel é conhecido
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStoreOwner, RoleCustomer, RoleSuperAdmin:
		return true
	}
	return false
}

// User representa um usuário da plataforma
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Password     string     `json:"-"` // O campo senha não é retornado nas respostas JSON
	Phone        string     `json:"phone"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	TrialEndDate *time.Time `json:"trialEndDate,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewUser cria um novo usuário ativo com a senha já criptografada
func NewUser(name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrShortPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// StartTrial define o fim do período de avaliação a partir de agora
func (u *User) StartTrial(days int, now time.Time) {
	end := now.AddDate(0, 0, days)
	u.TrialEndDate = &end
	u.UpdatedAt = now
}

// Activate ativa o usuário. Retorna false se ele já estava ativo.
func (u *User) Activate() bool {
	if u.IsActive {
		return false
	}
	u.IsActive = true
	u.UpdatedAt = time.Now()
	return true
}

// Suspend suspende o usuário. Retorna false se ele já estava suspenso.
func (u *User) Suspend() bool {
	if !u.IsActive {
		return false
	}
	u.IsActive = false
	u.UpdatedAt = time.Now()
	return true
}

// UpdateProfile atualiza os dados de perfil do usuário
func (u *User) UpdateProfile(name, phone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	u.Phone = phone
	u.UpdatedAt = time.Now()
	return nil
}

// IsAdmin verifica se o usuário é administrador da plataforma
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// IsSuperAdmin verifica se o usuário é super administrador
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsStoreOwner verifica se o usuário é dono de loja
func (u *User) IsStoreOwner() bool {
	return u.Role == RoleStoreOwner
}

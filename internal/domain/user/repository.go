package user

import (
	"context"
	"time"
)

// Filter define os filtros da listagem administrativa de usuários
type Filter struct {
	Search string
	Role   Role
	Active *bool
	// CreatedBefore conta apenas usuários criados antes do instante
	CreatedBefore *time.Time
}

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista usuários com filtros e paginação
	List(ctx context.Context, filter Filter, limit, offset int) ([]*User, error)

	// Count conta os usuários que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// SetActive ativa ou suspende um usuário
	SetActive(ctx context.Context, id string, active bool) error

	// UpdateLastLogin atualiza o timestamp de último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error

	// CountByRole conta usuários agrupados por papel
	CountByRole(ctx context.Context) (map[Role]int, error)
}

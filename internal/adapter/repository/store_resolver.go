package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/pkg/tenant"
)

type userFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type ownerStoreFinder interface {
	FindByOwner(ctx context.Context, ownerID string) (*store.Store, error)
}

// StoreResolver implementa tenant.Resolver a partir dos repositórios de usuário e loja
type StoreResolver struct {
	users  userFinder
	stores ownerStoreFinder
}

// NewStoreResolver cria uma nova instância de StoreResolver
func NewStoreResolver(users userFinder, stores ownerStoreFinder) tenant.Resolver {
	return &StoreResolver{
		users:  users,
		stores: stores,
	}
}

// Resolve carrega o usuário e, para lojistas, a loja ativa dele
func (r *StoreResolver) Resolve(ctx context.Context, userID string) (*tenant.Context, error) {
	u, err := r.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, tenant.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	if !u.IsActive {
		return nil, tenant.ErrUserSuspended
	}

	t := &tenant.Context{UserID: u.ID, Role: string(u.Role)}
	if !u.IsStoreOwner() {
		return t, nil
	}

	s, err := r.stores.FindByOwner(ctx, u.ID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return nil, tenant.ErrStoreNotFound
		}
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	if !s.IsActive {
		return nil, tenant.ErrStoreNotActive
	}

	t.StoreID = s.ID
	return t, nil
}

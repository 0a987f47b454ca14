package repository

import (
	"context"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]*user.User

func (f fakeUsers) FindByID(_ context.Context, id string) (*user.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

type fakeOwnerStores map[string]*store.Store

func (f fakeOwnerStores) FindByOwner(_ context.Context, ownerID string) (*store.Store, error) {
	if s, ok := f[ownerID]; ok {
		return s, nil
	}
	return nil, ErrStoreNotFound
}

func TestStoreResolver(t *testing.T) {
	users := fakeUsers{
		"owner":     {ID: "owner", Role: user.RoleStoreOwner, IsActive: true},
		"suspended": {ID: "suspended", Role: user.RoleStoreOwner, IsActive: false},
		"no-store":  {ID: "no-store", Role: user.RoleStoreOwner, IsActive: true},
		"closed":    {ID: "closed", Role: user.RoleStoreOwner, IsActive: true},
		"admin":     {ID: "admin", Role: user.RoleAdmin, IsActive: true},
	}
	stores := fakeOwnerStores{
		"owner":  {ID: "store-1", OwnerID: "owner", IsActive: true},
		"closed": {ID: "store-2", OwnerID: "closed", IsActive: false},
	}
	resolver := NewStoreResolver(users, stores)
	ctx := context.Background()

	tc, err := resolver.Resolve(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, "store-1", tc.StoreID)
	assert.Equal(t, string(user.RoleStoreOwner), tc.Role)

	tc, err = resolver.Resolve(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, tc.HasStore())

	_, err = resolver.Resolve(ctx, "suspended")
	assert.ErrorIs(t, err, tenant.ErrUserSuspended)
	_, err = resolver.Resolve(ctx, "no-store")
	assert.ErrorIs(t, err, tenant.ErrStoreNotFound)
	_, err = resolver.Resolve(ctx, "closed")
	assert.ErrorIs(t, err, tenant.ErrStoreNotActive)
	_, err = resolver.Resolve(ctx, "ghost")
	assert.ErrorIs(t, err, tenant.ErrNotAuthenticated)
}

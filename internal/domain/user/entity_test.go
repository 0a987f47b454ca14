package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Budi  ", " Budi@Example.COM ", "rahasia123", RoleStoreOwner)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Budi", u.Name)
	assert.Equal(t, "budi@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.True(t, u.IsStoreOwner())
	assert.NotEqual(t, "rahasia123", u.Password)
	assert.True(t, u.CheckPassword("rahasia123"))
	assert.False(t, u.CheckPassword("errada"))
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "a@b.c", "rahasia123", RoleCustomer)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("A", "", "rahasia123", RoleCustomer)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("A", "a@b.c", "curta", RoleCustomer)
	assert.ErrorIs(t, err, ErrShortPassword)

	_, err = NewUser("A", "a@b.c", "rahasia123", Role("ROOT"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestActivateSuspend_Idempotent(t *testing.T) {
	u := &User{IsActive: true}

	assert.False(t, u.Activate(), "ativar usuário já ativo não deve alterar nada")
	assert.True(t, u.Suspend())
	assert.False(t, u.IsActive)
	assert.False(t, u.Suspend())
	assert.True(t, u.Activate())
	assert.True(t, u.IsActive)
}

func TestRoles(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&User{Role: RoleSuperAdmin}).IsAdmin())
	assert.True(t, (&User{Role: RoleSuperAdmin}).IsSuperAdmin())
	assert.False(t, (&User{Role: RoleAdmin}).IsSuperAdmin())
	assert.False(t, (&User{Role: RoleStoreOwner}).IsAdmin())
}

func TestStartTrial(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	u := &User{}
	u.StartTrial(14, now)

	require.NotNil(t, u.TrialEndDate)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), *u.TrialEndDate)
}

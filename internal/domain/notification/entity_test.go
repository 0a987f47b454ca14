package notification

import (
	"testing"

	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n, err := New(" Manutenção ", "Janela às 02h", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Manutenção", n.Title)
	assert.Equal(t, TypeInfo, n.Type)

	_, err = New("", "x", TypeInfo, nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)
	_, err = New("x", "x", Type("DEBUG"), nil)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestVisibleTo(t *testing.T) {
	owner := user.RoleStoreOwner
	n, err := New("Novo plano", "", TypeSuccess, &owner)
	require.NoError(t, err)

	assert.True(t, n.VisibleTo(user.RoleStoreOwner))
	assert.False(t, n.VisibleTo(user.RoleAdmin))

	broadcast, err := New("Aviso", "", TypeWarning, nil)
	require.NoError(t, err)
	assert.True(t, broadcast.VisibleTo(user.RoleCustomer))
}

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	c, err := NewChat("store-1", "Budi", "+62 812 0000")
	require.NoError(t, err)
	assert.Nil(t, c.LastMessageAt)

	m, err := c.NewMessage(SenderStore, "  Halo, pesanan sudah dikirim ")
	require.NoError(t, err)
	assert.Equal(t, "Halo, pesanan sudah dikirim", m.Content)
	assert.Equal(t, c.ID, m.ChatID)
	require.NotNil(t, c.LastMessageAt)

	_, err = c.NewMessage(Sender("BOT"), "x")
	assert.ErrorIs(t, err, ErrInvalidSender)
	_, err = c.NewMessage(SenderCustomer, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestNewChat_RequiresPhone(t *testing.T) {
	_, err := NewChat("store-1", "Budi", " ")
	assert.ErrorIs(t, err, ErrNoPhone)
}

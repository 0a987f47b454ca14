package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("store-1", " Siti ", "SITI@mail.id", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Siti", c.Name)
	assert.Equal(t, "siti@mail.id", c.Email)

	_, err = NewCustomer("store-1", "Siti", "", " ", "")
	assert.ErrorIs(t, err, ErrNoContact)

	_, err = NewCustomer("", "Siti", "a@b.c", "", "")
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestRecordOrder_MaintainsTotals(t *testing.T) {
	c := &Customer{}
	first := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	earlier := first.AddDate(0, 0, -3)

	c.RecordOrder(100000, first)
	c.RecordOrder(50000, earlier)

	assert.Equal(t, 2, c.TotalOrders)
	assert.Equal(t, 150000.0, c.TotalRevenue)
	assert.Equal(t, first, *c.LastOrderAt)
	assert.Equal(t, 75000.0, c.AverageOrderValue())
}

func TestAverageOrderValue_NoOrders(t *testing.T) {
	assert.Zero(t, (&Customer{}).AverageOrderValue())
}

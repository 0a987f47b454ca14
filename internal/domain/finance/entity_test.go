package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	orderID := "order-1"
	tx, err := NewTransaction("store-1", &orderID, TypeIncome, CategorySales, 150000, "Pedido ORD-1", time.Time{})
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.False(t, tx.Date.IsZero())
	assert.Equal(t, 150000.0, tx.SignedAmount())
}

func TestNewTransaction_Validation(t *testing.T) {
	now := time.Now()
	_, err := NewTransaction("", nil, TypeIncome, CategorySales, 1, "", now)
	assert.ErrorIs(t, err, ErrEmptyStore)
	_, err = NewTransaction("s", nil, Type("GIFT"), CategorySales, 1, "", now)
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = NewTransaction("s", nil, TypeIncome, Category("LOTTERY"), 1, "", now)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	_, err = NewTransaction("s", nil, TypeExpense, CategoryMarketing, 0, "", now)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSummaryNet(t *testing.T) {
	expense := &Transaction{Type: TypeExpense, Amount: 40}
	assert.Equal(t, -40.0, expense.SignedAmount())
	assert.Equal(t, 60.0, Summary{Income: 100, Expense: 40}.Net())
}

package finance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStore      = errors.New("transação precisa pertencer a uma loja")
	ErrInvalidAmount   = errors.New("valor da transação deve ser maior que zero")
	ErrInvalidType     = errors.New("tipo de transação inválido")
	ErrInvalidCategory = errors.New("categoria de transação inválida")
)

// Type indica se a transação é entrada ou saída
type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

// Category classifica a transação
type Category string

const (
	CategorySales        Category = "SALES"
	CategoryRefund       Category = "REFUND"
	CategorySubscription Category = "SUBSCRIPTION"
	CategoryShipping     Category = "SHIPPING"
	CategoryMarketing    Category = "MARKETING"
	CategoryOperational  Category = "OPERATIONAL"
	CategoryOther        Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategorySales: true, CategoryRefund: true, CategorySubscription: true,
	CategoryShipping: true, CategoryMarketing: true, CategoryOperational: true, CategoryOther: true,
}

// Transaction é um lançamento imutável do livro financeiro de uma loja
type Transaction struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	OrderID     *string   `json:"orderId,omitempty"`
	Type        Type      `json:"type"`
	Category    Category  `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransaction valida e cria um novo lançamento
func NewTransaction(storeID string, orderID *string, t Type, category Category, amount float64, description string, date time.Time) (*Transaction, error) {
	if storeID == "" {
		return nil, ErrEmptyStore
	}
	if t != TypeIncome && t != TypeExpense {
		return nil, ErrInvalidType
	}
	if !validCategories[category] {
		return nil, ErrInvalidCategory
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Transaction{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		OrderID:     orderID,
		Type:        t,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now(),
	}, nil
}

// SignedAmount retorna o valor positivo para entradas e negativo para saídas
func (t *Transaction) SignedAmount() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}

package finance

import (
	"context"
	"time"
)

// Filter define os filtros da listagem de transações
type Filter struct {
	StoreID  string
	OrderID  string
	Type     Type
	Category Category
	From     *time.Time
	To       *time.Time
}

// Summary soma entradas e saídas de um intervalo
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Count   int     `json:"count"`
}

// Net retorna entradas menos saídas
func (s Summary) Net() float64 {
	return s.Income - s.Expense
}

// CategoryTotal é a soma de uma categoria
type CategoryTotal struct {
	Type     Type     `json:"type"`
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

// DailyTotal soma entradas e saídas de um dia
type DailyTotal struct {
	Day     time.Time `json:"day"`
	Income  float64   `json:"income"`
	Expense float64   `json:"expense"`
}

// Repository é somente de inclusão: lançamentos não são alterados nem removidos
type Repository interface {
	// Create registra um novo lançamento
	Create(ctx context.Context, t *Transaction) error

	// List lista lançamentos com filtros e paginação (StoreID vazio = plataforma)
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Transaction, error)

	// Count conta os lançamentos que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// SummaryBetween soma entradas e saídas do intervalo (storeID vazio = plataforma)
	SummaryBetween(ctx context.Context, storeID string, from, to time.Time) (Summary, error)

	// TotalsByCategory agrupa o intervalo por tipo e categoria
	TotalsByCategory(ctx context.Context, storeID string, from, to time.Time) ([]CategoryTotal, error)

	// DailyTotals agrega entradas e saídas por dia
	DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]DailyTotal, error)
}

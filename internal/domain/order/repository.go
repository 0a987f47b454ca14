package order

import (
	"context"
	"time"
)

// Filter define os filtros da listagem de pedidos
type Filter struct {
	Status     Status
	CustomerID string
	From       *time.Time
	To         *time.Time
}

// Totals agrega pedidos de um intervalo
type Totals struct {
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Customers int     `json:"customers"`
}

// DailyTotal é o total de pedidos de um dia
type DailyTotal struct {
	Day     time.Time `json:"day"`
	Orders  int       `json:"orders"`
	Revenue float64   `json:"revenue"`
}

// StatusCount conta pedidos por status
type StatusCount map[Status]int

// Repository define a interface para operações de repositório de pedidos
type Repository interface {
	// Create cria um novo pedido com seus itens
	Create(ctx context.Context, o *Order) error

	// FindByID busca um pedido da loja pelo ID
	FindByID(ctx context.Context, storeID, id string) (*Order, error)

	// List lista os pedidos da loja com filtros e paginação
	List(ctx context.Context, storeID string, filter Filter, limit, offset int) ([]*Order, error)

	// Count conta os pedidos da loja que atendem ao filtro
	Count(ctx context.Context, storeID string, filter Filter) (int, error)

	// UpdateStatus persiste o status e o status de pagamento do pedido
	UpdateStatus(ctx context.Context, o *Order) error

	// RecentByStore retorna os pedidos mais recentes da loja
	RecentByStore(ctx context.Context, storeID string, limit int) ([]*Order, error)

	// TotalsBetween agrega os pedidos não cancelados no intervalo.
	// storeID vazio agrega a plataforma inteira.
	TotalsBetween(ctx context.Context, storeID string, from, to time.Time) (Totals, error)

	// DailyTotals agrega por dia os pedidos não cancelados do intervalo
	DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]DailyTotal, error)

	// CountByStatus conta pedidos da loja por status
	CountByStatus(ctx context.Context, storeID string) (StatusCount, error)
}

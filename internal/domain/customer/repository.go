package customer

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente da loja pelo ID
	FindByID(ctx context.Context, storeID, id string) (*Customer, error)

	// List lista os clientes da loja com busca opcional por nome, email ou telefone
	List(ctx context.Context, storeID, search string, limit, offset int) ([]*Customer, error)

	// Count conta os clientes da loja que atendem à busca
	Count(ctx context.Context, storeID, search string) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// RecordOrder incrementa os totais derivados do cliente de forma atômica
	RecordOrder(ctx context.Context, storeID, id string, total float64, at time.Time) error

	// CountNewBetween conta clientes criados no intervalo (storeID vazio = plataforma)
	CountNewBetween(ctx context.Context, storeID string, from, to time.Time) (int, error)
}

package product

import (
	"context"
)

// Filter define os filtros da listagem de produtos de uma loja
type Filter struct {
	Search   string
	Category string
	Active   *bool
	Featured *bool

	// Visibility vazia não filtra
	Visibility Visibility
}

// Repository define a interface para operações de repositório de produtos.
// Todas as operações recebem o ID da loja para garantir o isolamento entre tenants.
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto da loja pelo ID
	FindByID(ctx context.Context, storeID, id string) (*Product, error)

	// FindByIDs busca vários produtos da loja
	FindByIDs(ctx context.Context, storeID string, ids []string) ([]*Product, error)

	// List lista os produtos da loja com filtros e paginação
	List(ctx context.Context, storeID string, filter Filter, limit, offset int) ([]*Product, error)

	// Count conta os produtos da loja que atendem ao filtro
	Count(ctx context.Context, storeID string, filter Filter) (int, error)

	// Update atualiza um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, storeID, id string) error

	// SetActive ativa ou desativa vários produtos, retornando quantos mudaram
	SetActive(ctx context.Context, storeID string, ids []string, active bool) (int, error)

	// CountLowStock conta produtos ativos com estoque até o limite
	CountLowStock(ctx context.Context, storeID string, threshold int) (int, error)

	// CountAll conta todos os produtos da plataforma
	CountAll(ctx context.Context) (int, error)
}

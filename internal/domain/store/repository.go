package store

import (
	"context"
	"time"
)

// Filter define os filtros da listagem administrativa de lojas
type Filter struct {
	Search        string
	Active        *bool
	Verified      *bool
	CreatedBefore *time.Time
}

// Repository define a interface para operações de repositório de lojas
type Repository interface {
	// Create cria uma nova loja
	Create(ctx context.Context, s *Store) error

	// FindByID busca uma loja pelo ID
	FindByID(ctx context.Context, id string) (*Store, error)

	// FindByOwner busca a loja de um usuário (cada usuário tem no máximo uma)
	FindByOwner(ctx context.Context, ownerID string) (*Store, error)

	// FindBySubdomain busca uma loja pelo subdomínio
	FindBySubdomain(ctx context.Context, subdomain string) (*Store, error)

	// List lista lojas com filtros e paginação
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Store, error)

	// Count conta as lojas que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// ListActiveIDs retorna os IDs de todas as lojas ativas
	ListActiveIDs(ctx context.Context) ([]string, error)

	// Update atualiza os dados de uma loja existente
	Update(ctx context.Context, s *Store) error

	// ExistsBySubdomain verifica se um subdomínio já está em uso
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)

	// GetWhatsAppSettings retorna a configuração de WhatsApp da loja
	GetWhatsAppSettings(ctx context.Context, storeID string) (*WhatsAppSettings, error)

	// SaveWhatsAppSettings cria ou atualiza a configuração de WhatsApp da loja
	SaveWhatsAppSettings(ctx context.Context, settings *WhatsAppSettings) error
}

// TemplateRepository define o acesso ao catálogo de templates
type TemplateRepository interface {
	List(ctx context.Context) ([]*Template, error)
	FindByID(ctx context.Context, id string) (*Template, error)
}

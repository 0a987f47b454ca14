package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/relation"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// relationPreview limita as listas embutidas nas visões compostas
const relationPreview = 10

// RelationLoader monta as visões compostas carregando apenas o que foi pedido em include
type RelationLoader struct {
	Users         user.Repository
	Stores        store.Repository
	Products      product.Repository
	Orders        order.Repository
	Customers     customer.Repository
	Finance       finance.Repository
	Subscriptions subscription.Repository
}

// relationMissing trata "não encontrado" como relacionamento ausente
func relationMissing(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound) ||
		errors.Is(err, repository.ErrStoreNotFound) ||
		errors.Is(err, repository.ErrCustomerNotFound) ||
		errors.Is(err, repository.ErrSubscriptionNotFound) ||
		errors.Is(err, repository.ErrWhatsAppNotConfigured)
}

// User carrega loja e assinatura do usuário
func (l *RelationLoader) User(ctx context.Context, u *user.User, inc relation.Include) (*relation.UserWithRelations, error) {
	out := &relation.UserWithRelations{User: u}

	if inc.Has(relation.Store) {
		s, err := l.Stores.FindByOwner(ctx, u.ID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar loja do usuário: %w", err)
		}
		out.Store = s
	}
	if inc.Has(relation.Subscription) {
		sub, err := l.Subscriptions.FindByUser(ctx, u.ID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar assinatura do usuário: %w", err)
		}
		out.Subscription = sub
	}
	return out, nil
}

// Store carrega dono, produtos, pedidos, clientes, assinatura, WhatsApp e contagens
func (l *RelationLoader) Store(ctx context.Context, s *store.Store, inc relation.Include) (*relation.StoreWithRelations, error) {
	out := &relation.StoreWithRelations{Store: s}

	if inc.Has(relation.Owner) {
		owner, err := l.Users.FindByID(ctx, s.OwnerID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar dono da loja: %w", err)
		}
		out.Owner = owner
	}
	if inc.Has(relation.Subscription) {
		sub, err := l.Subscriptions.FindByUser(ctx, s.OwnerID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar assinatura da loja: %w", err)
		}
		out.Subscription = sub
	}
	if inc.Has(relation.WhatsApp) {
		ws, err := l.Stores.GetWhatsAppSettings(ctx, s.ID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar WhatsApp da loja: %w", err)
		}
		out.WhatsApp = ws
	}

	var err error
	if inc.Has(relation.Products) {
		if out.Products, err = l.Products.List(ctx, s.ID, product.Filter{}, relationPreview, 0); err != nil {
			return nil, fmt.Errorf("erro ao carregar produtos da loja: %w", err)
		}
	}
	if inc.Has(relation.Orders) {
		if out.Orders, err = l.Orders.RecentByStore(ctx, s.ID, relationPreview); err != nil {
			return nil, fmt.Errorf("erro ao carregar pedidos da loja: %w", err)
		}
	}
	if inc.Has(relation.Customers) {
		if out.Customers, err = l.Customers.List(ctx, s.ID, "", relationPreview, 0); err != nil {
			return nil, fmt.Errorf("erro ao carregar clientes da loja: %w", err)
		}
	}

	return out, nil
}

// StoreCounts conta produtos, pedidos e clientes da loja
func (l *RelationLoader) StoreCounts(ctx context.Context, storeID string) (*relation.StoreCounts, error) {
	products, err := l.Products.Count(ctx, storeID, product.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	orders, err := l.Orders.Count(ctx, storeID, order.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	customers, err := l.Customers.Count(ctx, storeID, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return &relation.StoreCounts{Products: products, Orders: orders, Customers: customers}, nil
}

// Product carrega a loja do produto
func (l *RelationLoader) Product(ctx context.Context, p *product.Product, inc relation.Include) (*relation.ProductWithRelations, error) {
	out := &relation.ProductWithRelations{Product: p}
	if inc.Has(relation.Store) {
		s, err := l.Stores.FindByID(ctx, p.StoreID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar loja do produto: %w", err)
		}
		out.Store = s
	}
	return out, nil
}

// Order carrega loja, cliente e lançamentos do pedido. Os itens sempre acompanham o pedido.
func (l *RelationLoader) Order(ctx context.Context, o *order.Order, inc relation.Include) (*relation.OrderWithRelations, error) {
	out := &relation.OrderWithRelations{Order: o}

	if inc.Has(relation.Store) {
		s, err := l.Stores.FindByID(ctx, o.StoreID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar loja do pedido: %w", err)
		}
		out.Store = s
	}
	if inc.Has(relation.Customer) && o.CustomerID != nil {
		c, err := l.Customers.FindByID(ctx, o.StoreID, *o.CustomerID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar cliente do pedido: %w", err)
		}
		out.Customer = c
	}
	if inc.Has(relation.Transactions) {
		txs, err := l.Finance.List(ctx, finance.Filter{StoreID: o.StoreID, OrderID: o.ID}, relationPreview, 0)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar lançamentos do pedido: %w", err)
		}
		out.Transactions = txs
	}
	return out, nil
}

// Customer carrega a loja e os pedidos do cliente
func (l *RelationLoader) Customer(ctx context.Context, c *customer.Customer, inc relation.Include) (*relation.CustomerWithRelations, error) {
	out := &relation.CustomerWithRelations{Customer: c}

	if inc.Has(relation.Store) {
		s, err := l.Stores.FindByID(ctx, c.StoreID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar loja do cliente: %w", err)
		}
		out.Store = s
	}
	if inc.Has(relation.Orders) {
		orders, err := l.Orders.List(ctx, c.StoreID, order.Filter{CustomerID: c.ID}, relationPreview, 0)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar pedidos do cliente: %w", err)
		}
		out.Orders = orders
	}
	return out, nil
}

// Subscription carrega usuário e loja da assinatura
func (l *RelationLoader) Subscription(ctx context.Context, sub *subscription.Subscription, inc relation.Include) (*relation.SubscriptionWithRelations, error) {
	out := &relation.SubscriptionWithRelations{Subscription: sub}

	if inc.Has(relation.User) {
		u, err := l.Users.FindByID(ctx, sub.UserID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar usuário da assinatura: %w", err)
		}
		out.User = u
	}
	if inc.Has(relation.Store) && sub.StoreID != nil {
		s, err := l.Stores.FindByID(ctx, *sub.StoreID)
		if err != nil && !relationMissing(err) {
			return nil, fmt.Errorf("erro ao carregar loja da assinatura: %w", err)
		}
		out.Store = s
	}
	return out, nil
}

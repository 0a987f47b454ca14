// Package relation declara as visões compostas usadas nas respostas da API.
// Todo relacionamento é opcional: só é carregado quando pedido via include.
package relation

import (
	"strings"

	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// Relacionamentos conhecidos
const (
	Owner        = "owner"
	Store        = "store"
	Products     = "products"
	Orders       = "orders"
	Customers    = "customers"
	Customer     = "customer"
	Items        = "items"
	Transactions = "transactions"
	Subscription = "subscription"
	User         = "user"
	WhatsApp     = "whatsapp"
)

var known = map[string]bool{
	Owner: true, Store: true, Products: true, Orders: true, Customers: true, Customer: true,
	Items: true, Transactions: true, Subscription: true, User: true, WhatsApp: true,
}

// Include é o conjunto de relacionamentos solicitados
type Include map[string]bool

// ParseInclude interpreta "owner,products". Nomes desconhecidos são ignorados.
func ParseInclude(raw string) Include {
	inc := Include{}
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if known[name] {
			inc[name] = true
		}
	}
	return inc
}

// Has indica se o relacionamento foi solicitado
func (i Include) Has(name string) bool {
	return i[name]
}

// UserWithRelations é o usuário com sua loja e assinatura
type UserWithRelations struct {
	*user.User
	Store        *store.Store               `json:"store,omitempty"`
	Subscription *subscription.Subscription `json:"subscription,omitempty"`
}

// StoreWithRelations é a loja com dono, produtos, pedidos e assinatura
type StoreWithRelations struct {
	*store.Store
	Owner        *user.User                 `json:"owner,omitempty"`
	Products     []*product.Product         `json:"products,omitempty"`
	Orders       []*order.Order             `json:"orders,omitempty"`
	Customers    []*customer.Customer       `json:"customers,omitempty"`
	Subscription *subscription.Subscription `json:"subscription,omitempty"`
	WhatsApp     *store.WhatsAppSettings    `json:"whatsappSettings,omitempty"`
	Counts       *StoreCounts               `json:"_count,omitempty"`
}

// StoreCounts resume a quantidade de registros filhos da loja
type StoreCounts struct {
	Products  int `json:"products"`
	Orders    int `json:"orders"`
	Customers int `json:"customers"`
}

// ProductWithRelations é o produto com sua loja
type ProductWithRelations struct {
	*product.Product
	Store *store.Store `json:"store,omitempty"`
}

// OrderWithRelations é o pedido com loja, cliente e lançamentos
type OrderWithRelations struct {
	*order.Order
	Store        *store.Store           `json:"store,omitempty"`
	Customer     *customer.Customer     `json:"customer,omitempty"`
	Transactions []*finance.Transaction `json:"financialTransactions,omitempty"`
}

// CustomerWithRelations é o cliente com seus pedidos
type CustomerWithRelations struct {
	*customer.Customer
	Store  *store.Store   `json:"store,omitempty"`
	Orders []*order.Order `json:"orders,omitempty"`
}

// SubscriptionWithRelations é a assinatura com usuário e loja
type SubscriptionWithRelations struct {
	*subscription.Subscription
	User  *user.User   `json:"user,omitempty"`
	Store *store.Store `json:"store,omitempty"`
}

// OwnerName retorna o nome do dono ou vazio quando não carregado
func (s *StoreWithRelations) OwnerName() string {
	if s.Owner == nil {
		return ""
	}
	return s.Owner.Name
}

// PlanName retorna o plano da assinatura ou vazio quando não carregada
func (s *StoreWithRelations) PlanName() string {
	if s.Subscription == nil {
		return ""
	}
	return string(s.Subscription.Plan)
}

package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyStore = errors.New("cliente precisa pertencer a uma loja")
	ErrNoContact  = errors.New("cliente precisa de email ou telefone")
)

// Customer representa um cliente de uma loja.
// TotalOrders e TotalRevenue são mantidos pela conclusão de pedidos.
type Customer struct {
	ID           string     `json:"id"`
	StoreID      string     `json:"storeId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	TotalOrders  int        `json:"totalOrders"`
	TotalRevenue float64    `json:"totalRevenue"`
	LastOrderAt  *time.Time `json:"lastOrderAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewCustomer cria um novo cliente
func NewCustomer(storeID, name, email, phone, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if storeID == "" {
		return nil, ErrEmptyStore
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" && strings.TrimSpace(phone) == "" {
		return nil, ErrNoContact
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados de contato do cliente
func (c *Customer) Update(name, email, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
	return nil
}

// RecordOrder contabiliza um pedido concluído nos totais do cliente
func (c *Customer) RecordOrder(total float64, at time.Time) {
	c.TotalOrders++
	c.TotalRevenue += total
	if c.LastOrderAt == nil || at.After(*c.LastOrderAt) {
		c.LastOrderAt = &at
	}
	c.UpdatedAt = time.Now()
}

// AverageOrderValue retorna o ticket médio do cliente
func (c *Customer) AverageOrderValue() float64 {
	if c.TotalOrders == 0 {
		return 0
	}
	return c.TotalRevenue / float64(c.TotalOrders)
}

package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStore        = errors.New("pedido precisa pertencer a uma loja")
	ErrNoItems           = errors.New("pedido precisa de pelo menos um item")
	ErrInvalidQuantity   = errors.New("quantidade do item deve ser maior que zero")
	ErrInvalidTransition = errors.New("transição de status inválida")
	ErrInvalidStatus     = errors.New("status de pedido inválido")
)

// Status representa o ciclo de vida do pedido
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// PaymentStatus representa a situação do pagamento
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// transitions lista os próximos status permitidos; DELIVERED e CANCELLED são finais
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

// ParseStatus converte texto em Status
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// Item é o snapshot de um produto no momento da compra
type Item struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Subtotal retorna preço × quantidade
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order representa um pedido de uma loja
type Order struct {
	ID            string        `json:"id"`
	StoreID       string        `json:"storeId"`
	CustomerID    *string       `json:"customerId,omitempty"`
	OrderNumber   string        `json:"orderNumber"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Items         []Item        `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shippingCost"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewOrder cria um pedido pendente e calcula os totais
func NewOrder(storeID string, customerID *string, items []Item, shippingCost float64) (*Order, error) {
	if storeID == "" {
		return nil, ErrEmptyStore
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	now := time.Now()
	o := &Order{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		CustomerID:    customerID,
		OrderNumber:   NewOrderNumber(now),
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		ShippingCost:  shippingCost,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		o.Items = append(o.Items, it)
		o.Subtotal += it.Subtotal()
	}
	o.Total = o.Subtotal + o.ShippingCost
	return o, nil
}

// NewOrderNumber gera um número de pedido legível
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), uuid.New().String()[:6])
}

// CanTransitionTo verifica se a mudança de status é permitida
func (o *Order) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo muda o status do pedido respeitando o ciclo de vida
func (o *Order) TransitionTo(next Status) error {
	if !o.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	if next == StatusCancelled && o.PaymentStatus == PaymentPaid {
		o.PaymentStatus = PaymentRefunded
	}
	o.UpdatedAt = time.Now()
	return nil
}

// MarkPaid registra o pagamento do pedido
func (o *Order) MarkPaid() {
	o.PaymentStatus = PaymentPaid
	o.UpdatedAt = time.Now()
}

// IsCompleted indica se o pedido foi entregue e pago
func (o *Order) IsCompleted() bool {
	return o.Status == StatusDelivered && o.PaymentStatus == PaymentPaid
}

// TotalQuantity soma as quantidades de todos os itens
func (o *Order) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

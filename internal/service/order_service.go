package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// NewItem é um item pedido pelo cliente antes do snapshot do produto
type NewItem struct {
	ProductID string
	Quantity  int
}

// OrderService coordena pedidos com clientes e o livro financeiro
type OrderService struct {
	orders    order.Repository
	products  product.Repository
	customers customer.Repository
	finance   finance.Repository
	events    events.Publisher
	log       logger.Logger
	now       func() time.Time
}

// NewOrderService cria uma nova instância de OrderService
func NewOrderService(
	orders order.Repository,
	products product.Repository,
	customers customer.Repository,
	ledger finance.Repository,
	publisher events.Publisher,
	log logger.Logger,
) *OrderService {
	if publisher == nil {
		publisher = events.Discard{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderService{
		orders:    orders,
		products:  products,
		customers: customers,
		finance:   ledger,
		events:    publisher,
		log:       log,
		now:       time.Now,
	}
}

// Create registra um pedido com o snapshot de nome e preço dos produtos
func (s *OrderService) Create(ctx context.Context, storeID string, customerID *string, items []NewItem, shipping float64, notes string) (*order.Order, error) {
	if len(items) == 0 {
		return nil, order.ErrNoItems
	}

	if customerID != nil && *customerID != "" {
		if _, err := s.customers.FindByID(ctx, storeID, *customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil, ErrCustomerNotInStore
			}
			return nil, err
		}
	} else {
		customerID = nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	found, err := s.products.FindByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*product.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	snapshot := make([]order.Item, 0, len(items))
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok || !p.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, it.ProductID)
		}
		snapshot = append(snapshot, order.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			Price:       p.Price,
		})
	}

	o, err := order.NewOrder(storeID, customerID, snapshot, shipping)
	if err != nil {
		return nil, err
	}
	o.Notes = notes

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateStatus aplica a transição de status e, opcionalmente, registra o pagamento.
// Quando o pedido passa a estar concluído, os totais do cliente e o livro financeiro são atualizados.
// Um cancelamento com estorno gera uma saída de REFUND.
func (s *OrderService) UpdateStatus(ctx context.Context, storeID, id string, next order.Status, paid bool) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := o.IsCompleted()
	wasCancelled := o.Status == order.StatusCancelled
	prevPayment := o.PaymentStatus

	statusChanged := next != "" && next != o.Status
	if statusChanged {
		if err := o.TransitionTo(next); err != nil {
			return nil, err
		}
	}
	if paid && o.Status != order.StatusCancelled {
		o.MarkPaid()
	}

	// Repetir o status atual sem mudar o pagamento não grava nada
	if !statusChanged && o.PaymentStatus == prevPayment {
		return o, nil
	}

	if err := s.orders.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}

	now := s.now()
	switch {
	case !wasCompleted && o.IsCompleted():
		s.recordCompletion(ctx, o, now)
	case !wasCancelled && o.Status == order.StatusCancelled:
		s.recordCancellation(ctx, o, now)
	}
	return o, nil
}

// recordCompletion atualiza os derivados do pedido concluído; falhas só geram log
func (s *OrderService) recordCompletion(ctx context.Context, o *order.Order, now time.Time) {
	if o.CustomerID != nil {
		if err := s.customers.RecordOrder(ctx, o.StoreID, *o.CustomerID, o.Total, now); err != nil {
			s.log.Error("Erro ao atualizar totais do cliente", "order_id", o.ID, "error", err)
		}
	}

	tx, err := finance.NewTransaction(o.StoreID, &o.ID, finance.TypeIncome, finance.CategorySales, o.Total, "Pedido "+o.OrderNumber, now)
	if err == nil {
		err = s.finance.Create(ctx, tx)
	}
	if err != nil {
		s.log.Error("Erro ao registrar receita do pedido", "order_id", o.ID, "error", err)
	}

	s.events.Publish(ctx, events.SubjectOrderCompleted, map[string]interface{}{
		"orderId": o.ID, "storeId": o.StoreID, "total": o.Total,
	})
}

func (s *OrderService) recordCancellation(ctx context.Context, o *order.Order, now time.Time) {
	refunded := o.PaymentStatus == order.PaymentRefunded
	if refunded {
		tx, err := finance.NewTransaction(o.StoreID, &o.ID, finance.TypeExpense, finance.CategoryRefund, o.Total, "Estorno "+o.OrderNumber, now)
		if err == nil {
			err = s.finance.Create(ctx, tx)
		}
		if err != nil {
			s.log.Error("Erro ao registrar estorno do pedido", "order_id", o.ID, "error", err)
		}
	}

	s.events.Publish(ctx, events.SubjectOrderCancelled, map[string]interface{}{
		"orderId": o.ID, "storeId": o.StoreID, "refunded": refunded,
	})
}

package mocks

import (
	"context"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/stretchr/testify/mock"
)

// ProductRepository é um mock de product.Repository
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) FindByID(ctx context.Context, storeID, id string) (*product.Product, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *ProductRepository) FindByIDs(ctx context.Context, storeID string, ids []string) ([]*product.Product, error) {
	args := m.Called(ctx, storeID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context, storeID string, filter product.Filter, limit, offset int) ([]*product.Product, error) {
	args := m.Called(ctx, storeID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *ProductRepository) Count(ctx context.Context, storeID string, filter product.Filter) (int, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Int(0), args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, storeID, id string) error {
	return m.Called(ctx, storeID, id).Error(0)
}

func (m *ProductRepository) SetActive(ctx context.Context, storeID string, ids []string, active bool) (int, error) {
	args := m.Called(ctx, storeID, ids, active)
	return args.Int(0), args.Error(1)
}

func (m *ProductRepository) CountLowStock(ctx context.Context, storeID string, threshold int) (int, error) {
	args := m.Called(ctx, storeID, threshold)
	return args.Int(0), args.Error(1)
}

func (m *ProductRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// OrderRepository é um mock de order.Repository
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, storeID, id string) (*order.Order, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, storeID string, filter order.Filter, limit, offset int) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *OrderRepository) Count(ctx context.Context, storeID string, filter order.Filter) (int, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrderRepository) RecentByStore(ctx context.Context, storeID string, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *OrderRepository) TotalsBetween(ctx context.Context, storeID string, from, to time.Time) (order.Totals, error) {
	args := m.Called(ctx, storeID, from, to)
	return args.Get(0).(order.Totals), args.Error(1)
}

func (m *OrderRepository) DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]order.DailyTotal, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.DailyTotal), args.Error(1)
}

func (m *OrderRepository) CountByStatus(ctx context.Context, storeID string) (order.StatusCount, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(order.StatusCount), args.Error(1)
}

// CustomerRepository é um mock de customer.Repository
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CustomerRepository) FindByID(ctx context.Context, storeID, id string) (*customer.Customer, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *CustomerRepository) List(ctx context.Context, storeID, search string, limit, offset int) ([]*customer.Customer, error) {
	args := m.Called(ctx, storeID, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *CustomerRepository) Count(ctx context.Context, storeID, search string) (int, error) {
	args := m.Called(ctx, storeID, search)
	return args.Int(0), args.Error(1)
}

func (m *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CustomerRepository) RecordOrder(ctx context.Context, storeID, id string, total float64, at time.Time) error {
	return m.Called(ctx, storeID, id, total, at).Error(0)
}

func (m *CustomerRepository) CountNewBetween(ctx context.Context, storeID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, storeID, from, to)
	return args.Int(0), args.Error(1)
}

// FinanceRepository é um mock de finance.Repository
type FinanceRepository struct {
	mock.Mock
}

func (m *FinanceRepository) Create(ctx context.Context, t *finance.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *FinanceRepository) List(ctx context.Context, filter finance.Filter, limit, offset int) ([]*finance.Transaction, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*finance.Transaction), args.Error(1)
}

func (m *FinanceRepository) Count(ctx context.Context, filter finance.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *FinanceRepository) SummaryBetween(ctx context.Context, storeID string, from, to time.Time) (finance.Summary, error) {
	args := m.Called(ctx, storeID, from, to)
	return args.Get(0).(finance.Summary), args.Error(1)
}

func (m *FinanceRepository) TotalsByCategory(ctx context.Context, storeID string, from, to time.Time) ([]finance.CategoryTotal, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.CategoryTotal), args.Error(1)
}

func (m *FinanceRepository) DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]finance.DailyTotal, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.DailyTotal), args.Error(1)
}

var (
	_ product.Repository  = (*ProductRepository)(nil)
	_ order.Repository    = (*OrderRepository)(nil)
	_ customer.Repository = (*CustomerRepository)(nil)
	_ finance.Repository  = (*FinanceRepository)(nil)
)

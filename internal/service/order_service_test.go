package service

import (
	"context"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders    *mocks.OrderRepository
	products  *mocks.ProductRepository
	customers *mocks.CustomerRepository
	finance   *mocks.FinanceRepository
	events    *events.Recorder
	svc       *OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:    new(mocks.OrderRepository),
		products:  new(mocks.ProductRepository),
		customers: new(mocks.CustomerRepository),
		finance:   new(mocks.FinanceRepository),
		events:    &events.Recorder{},
	}
	f.svc = NewOrderService(f.orders, f.products, f.customers, f.finance, f.events, nil)
	return f
}

func TestOrderService_CreateSnapshotsProducts(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.products.On("FindByIDs", ctx, "store-1", []string{"p1", "p2"}).Return([]*product.Product{
		{ID: "p1", StoreID: "store-1", Name: "Kopi", Price: 25000, IsActive: true},
		{ID: "p2", StoreID: "store-1", Name: "Teh", Price: 10000, IsActive: true},
	}, nil)
	f.orders.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	o, err := f.svc.Create(ctx, "store-1", nil, []NewItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}, 5000, "tanpa gula")
	require.NoError(t, err)

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, 60000.0, o.Subtotal)
	assert.Equal(t, 65000.0, o.Total)
	assert.Equal(t, "Kopi", o.Items[0].ProductName)
	assert.Equal(t, "tanpa gula", o.Notes)
	assert.Nil(t, o.CustomerID)
}

func TestOrderService_CreateRejectsInactiveProduct(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.products.On("FindByIDs", ctx, "store-1", []string{"p1"}).Return([]*product.Product{
		{ID: "p1", StoreID: "store-1", Name: "Kopi", Price: 25000, IsActive: false},
	}, nil)

	_, err := f.svc.Create(ctx, "store-1", nil, []NewItem{{ProductID: "p1", Quantity: 1}}, 0, "")
	assert.ErrorIs(t, err, ErrProductUnavailable)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateRejectsForeignCustomer(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	customerID := "cust-9"

	f.customers.On("FindByID", ctx, "store-1", customerID).Return(nil, repository.ErrCustomerNotFound)

	_, err := f.svc.Create(ctx, "store-1", &customerID, []NewItem{{ProductID: "p1", Quantity: 1}}, 0, "")
	assert.ErrorIs(t, err, ErrCustomerNotInStore)
}

func TestOrderService_CompletionUpdatesCustomerAndLedger(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	customerID := "cust-1"

	o := &order.Order{ID: "o1", StoreID: "store-1", CustomerID: &customerID, OrderNumber: "ORD-1",
		Status: order.StatusShipped, PaymentStatus: order.PaymentPaid, Total: 65000}

	f.orders.On("FindByID", ctx, "store-1", "o1").Return(o, nil)
	f.orders.On("UpdateStatus", ctx, o).Return(nil)
	f.customers.On("RecordOrder", ctx, "store-1", customerID, 65000.0, mock.Anything).Return(nil)
	f.finance.On("Create", ctx, mock.MatchedBy(func(tx *finance.Transaction) bool {
		return tx.Type == finance.TypeIncome && tx.Category == finance.CategorySales && tx.Amount == 65000
	})).Return(nil)

	updated, err := f.svc.UpdateStatus(ctx, "store-1", "o1", order.StatusDelivered, false)
	require.NoError(t, err)

	assert.True(t, updated.IsCompleted())
	assert.Equal(t, []string{events.SubjectOrderCompleted}, f.events.Subjects())
	f.customers.AssertExpectations(t)
	f.finance.AssertExpectations(t)
}

func TestOrderService_CancelPaidOrderRecordsRefund(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	o := &order.Order{ID: "o2", StoreID: "store-1", OrderNumber: "ORD-2",
		Status: order.StatusProcessing, PaymentStatus: order.PaymentPaid, Total: 40000}

	f.orders.On("FindByID", ctx, "store-1", "o2").Return(o, nil)
	f.orders.On("UpdateStatus", ctx, o).Return(nil)
	f.finance.On("Create", ctx, mock.MatchedBy(func(tx *finance.Transaction) bool {
		return tx.Type == finance.TypeExpense && tx.Category == finance.CategoryRefund
	})).Return(nil)

	updated, err := f.svc.UpdateStatus(ctx, "store-1", "o2", order.StatusCancelled, false)
	require.NoError(t, err)

	assert.Equal(t, order.PaymentRefunded, updated.PaymentStatus)
	assert.Equal(t, []string{events.SubjectOrderCancelled}, f.events.Subjects())
	f.finance.AssertExpectations(t)
}

func TestOrderService_InvalidTransition(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	o := &order.Order{ID: "o3", StoreID: "store-1", Status: order.StatusDelivered, PaymentStatus: order.PaymentPaid}
	f.orders.On("FindByID", ctx, "store-1", "o3").Return(o, nil)

	_, err := f.svc.UpdateStatus(ctx, "store-1", "o3", order.StatusPending, false)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	assert.Empty(t, f.events.Events)
}

func TestOrderService_RepeatedStatusIsNoop(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	o := &order.Order{ID: "o3", StoreID: "store-1", OrderNumber: "ORD-3",
		Status: order.StatusCancelled, PaymentStatus: order.PaymentRefunded, Total: 40000}
	f.orders.On("FindByID", ctx, "store-1", "o3").Return(o, nil)

	for i := 0; i < 3; i++ {
		updated, err := f.svc.UpdateStatus(ctx, "store-1", "o3", order.StatusCancelled, false)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, updated.Status)
	}

	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	f.finance.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.events.Subjects())
}

func TestOrderService_CancelWritesOnce(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	o := &order.Order{ID: "o4", StoreID: "store-1", OrderNumber: "ORD-4",
		Status: order.StatusPending, PaymentStatus: order.PaymentPending, Total: 15000}
	f.orders.On("FindByID", ctx, "store-1", "o4").Return(o, nil)
	f.orders.On("UpdateStatus", ctx, o).Return(nil)

	_, err := f.svc.UpdateStatus(ctx, "store-1", "o4", order.StatusCancelled, false)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, "store-1", "o4", order.StatusCancelled, false)
	require.NoError(t, err)

	f.orders.AssertNumberOfCalls(t, "UpdateStatus", 1)
	assert.Equal(t, []string{events.SubjectOrderCancelled}, f.events.Subjects())
}

func TestOrderService_PaymentOnlyUpdateIsWritten(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	o := &order.Order{ID: "o5", StoreID: "store-1", OrderNumber: "ORD-5",
		Status: order.StatusProcessing, PaymentStatus: order.PaymentPending, Total: 15000}
	f.orders.On("FindByID", ctx, "store-1", "o5").Return(o, nil)
	f.orders.On("UpdateStatus", ctx, o).Return(nil)

	updated, err := f.svc.UpdateStatus(ctx, "store-1", "o5", order.StatusProcessing, true)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, updated.PaymentStatus)

	_, err = f.svc.UpdateStatus(ctx, "store-1", "o5", order.StatusProcessing, true)
	require.NoError(t, err)
	f.orders.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

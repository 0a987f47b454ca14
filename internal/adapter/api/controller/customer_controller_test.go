package controller

import (
	"net/http"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerController(t *testing.T) {
	customers := new(mocks.CustomerRepository)
	orders := new(mocks.OrderRepository)
	ctrl := NewCustomerController(customers, &service.RelationLoader{Customers: customers, Orders: orders})

	router := newTestRouter("s1")
	router.GET("/customers", ctrl.List)
	router.GET("/customers/:id", ctrl.Get)
	router.POST("/customers", ctrl.Create)
	router.PUT("/customers/:id", ctrl.Update)

	t.Run("cria cliente com contato", func(t *testing.T) {
		customers.On("Create", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()

		w := performJSON(router, http.MethodPost, "/customers", map[string]string{"name": "Dewi", "phone": "0812"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var c customer.Customer
		decodeBody(t, w, &c)
		assert.Equal(t, "s1", c.StoreID)
		assert.Zero(t, c.TotalOrders)
	})

	t.Run("rejeita cliente sem contato", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/customers", map[string]string{"name": "Dewi"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lista com busca", func(t *testing.T) {
		customers.On("List", mock.Anything, "s1", "dewi", 10, 0).Return([]*customer.Customer{{ID: "c1", Name: "Dewi"}}, nil).Once()
		customers.On("Count", mock.Anything, "s1", "dewi").Return(1, nil).Once()

		w := performJSON(router, http.MethodGet, "/customers?search=dewi", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("detalhe com pedidos", func(t *testing.T) {
		customers.On("FindByID", mock.Anything, "s1", "c1").Return(&customer.Customer{ID: "c1", StoreID: "s1", Name: "Dewi"}, nil).Once()
		orders.On("List", mock.Anything, "s1", order.Filter{CustomerID: "c1"}, 10, 0).
			Return([]*order.Order{{ID: "o1"}, {ID: "o2"}}, nil).Once()

		w := performJSON(router, http.MethodGet, "/customers/c1?include=orders", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Orders []order.Order `json:"orders"`
		}
		decodeBody(t, w, &body)
		assert.Len(t, body.Orders, 2)
	})

	t.Run("atualiza cliente inexistente", func(t *testing.T) {
		customers.On("FindByID", mock.Anything, "s1", "zz").Return(nil, repository.ErrCustomerNotFound).Once()

		w := performJSON(router, http.MethodPut, "/customers/zz", map[string]string{"name": "X", "email": "x@y.id"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

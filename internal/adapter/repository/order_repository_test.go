package repository

import (
	"testing"

	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/stretchr/testify/assert"
)

func TestRestocks(t *testing.T) {
	tests := []struct {
		previous, next order.Status
		want           bool
	}{
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusProcessing, order.StatusCancelled, true},
		{order.StatusCancelled, order.StatusCancelled, false},
		{order.StatusPending, order.StatusProcessing, false},
		{order.StatusShipped, order.StatusDelivered, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, restocks(tt.previous, tt.next), "%s -> %s", tt.previous, tt.next)
	}
}

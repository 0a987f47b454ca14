package dto

// OrderItemRequest é um item do pedido
type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest representa a criação de um pedido
type CreateOrderRequest struct {
	CustomerID   *string            `json:"customerId"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingCost float64            `json:"shippingCost" binding:"gte=0"`
	Notes        string             `json:"notes"`
}

// UpdateOrderStatusRequest move o pedido no ciclo de vida.
// Paid marca o pagamento como confirmado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Paid   bool   `json:"paid"`
}

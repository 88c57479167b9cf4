package repository

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the order resource.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderItemInput is one cart line submitted with an order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput defines the data required to create an order.
type CreateOrderInput struct {
	Items         []OrderItemInput
	AddressID     uuid.UUID
	PaymentMethod entity.PaymentMethod
	CouponCode    string // Empty when no coupon is applied.
}

// OrderRepository wraps the order REST resource.
type OrderRepository interface {
	// CreateOrder submits a new order and returns the server's copy,
	// including the assigned order number and totals.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// FindOrderByID refetches a single order, including its status history.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves the authenticated user's order history, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// CancelOrder requests cancellation. The server decides whether the
	// order's current status still allows it.
	CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// PayOrder re-runs the payment of an order the gateway left unpaid.
	PayOrder(ctx context.Context, id uuid.UUID) (*entity.PaymentResult, error)
}

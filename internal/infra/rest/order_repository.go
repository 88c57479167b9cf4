package rest

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"

	"github.com/google/uuid"
)

type orderRepository struct {
	client *api.Client
}

// NewOrderRepository creates the REST-backed order repository.
func NewOrderRepository(client *api.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

type createOrderItemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderPayload struct {
	Items         []createOrderItemPayload `json:"items"`
	AddressID     uuid.UUID                `json:"addressId"`
	PaymentMethod string                   `json:"paymentMethod"`
	CouponCode    string                   `json:"couponCode,omitempty"`
}

// CreateOrder submits a new order and returns the server's copy.
func (r *orderRepository) CreateOrder(ctx context.Context, input repository.CreateOrderInput) (*entity.Order, error) {
	payload := createOrderPayload{
		Items:         make([]createOrderItemPayload, 0, len(input.Items)),
		AddressID:     input.AddressID,
		PaymentMethod: input.PaymentMethod.String(),
		CouponCode:    input.CouponCode,
	}
	for _, item := range input.Items {
		payload.Items = append(payload.Items, createOrderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	var dto orderDTO
	if err := r.client.Post(ctx, "/orders", payload, &dto); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	return dto.toEntity(), nil
}

// FindOrderByID refetches a single order, including its status history.
func (r *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var dto orderDTO
	if err := r.client.Get(ctx, "/orders/"+id.String(), &dto); err != nil {
		return nil, notFoundAs(err, repository.ErrOrderNotFound, "find order")
	}

	return dto.toEntity(), nil
}

// ListOrders retrieves the authenticated user's order history.
func (r *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var dtos []orderDTO
	if err := r.client.Get(ctx, "/orders", &dtos); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	orders := make([]*entity.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, dto.toEntity())
	}

	return orders, nil
}

// CancelOrder requests cancellation; the server validates the current status.
func (r *orderRepository) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var dto orderDTO
	if err := r.client.Post(ctx, "/orders/"+id.String()+"/cancel", nil, &dto); err != nil {
		return nil, notFoundAs(err, repository.ErrOrderNotFound, "cancel order")
	}

	return dto.toEntity(), nil
}

// PayOrder retries the charge of an order still awaiting payment.
func (r *orderRepository) PayOrder(ctx context.Context, id uuid.UUID) (*entity.PaymentResult, error) {
	var dto paymentResultDTO
	if err := r.client.Post(ctx, "/orders/"+id.String()+"/pay", nil, &dto); err != nil {
		return nil, notFoundAs(err, repository.ErrOrderNotFound, "pay order")
	}

	return dto.toEntity(), nil
}

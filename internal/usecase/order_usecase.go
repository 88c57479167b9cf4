package usecase

import (
	"context"

	"sabor/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase reads back server-owned orders. Status is fetched on demand
// when the user opens the order screen; there is no background polling.
type OrderUsecase interface {
	// History retrieves the user's orders, newest first.
	History(ctx context.Context) ([]*entity.Order, error)

	// Track refetches one order with its status history.
	Track(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Cancel requests cancellation. It refuses locally when the last known
	// status is no longer cancelable; the server stays authoritative.
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// RetryPayment re-runs the charge of an order that is still awaiting
	// payment, for the checkout's pay-later resolution path.
	RetryPayment(ctx context.Context, id uuid.UUID) (*entity.PaymentResult, error)
}

package repository

import (
	"context"

	"sabor/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessPaymentInput defines the data required to charge a created order.
type ProcessPaymentInput struct {
	OrderID   uuid.UUID
	Method    entity.PaymentMethod
	CardID    uuid.UUID // Zero for PIX.
	PayerName string
	PayerCPF  string
}

// PaymentRepository wraps the payment-processing REST resource.
type PaymentRepository interface {
	// ProcessPayment charges the order through the gateway. For PIX the
	// result carries the copia-e-cola charge instead of an immediate capture.
	ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*entity.PaymentResult, error)
}

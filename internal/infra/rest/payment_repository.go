package rest

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"
)

type paymentRepository struct {
	client *api.Client
}

// NewPaymentRepository creates the REST-backed payment repository.
func NewPaymentRepository(client *api.Client) repository.PaymentRepository {
	return &paymentRepository{client: client}
}

type processPaymentPayload struct {
	OrderID   string `json:"orderId"`
	Method    string `json:"method"`
	CardID    string `json:"cardId,omitempty"`
	PayerName string `json:"payerName"`
	PayerCPF  string `json:"payerCpf"`
}

// ProcessPayment charges the order through the gateway.
func (r *paymentRepository) ProcessPayment(ctx context.Context, input repository.ProcessPaymentInput) (*entity.PaymentResult, error) {
	payload := processPaymentPayload{
		OrderID:   input.OrderID.String(),
		Method:    input.Method.String(),
		PayerName: input.PayerName,
		PayerCPF:  input.PayerCPF,
	}
	if input.Method != entity.PaymentMethodPix {
		payload.CardID = input.CardID.String()
	}

	var dto paymentResultDTO
	if err := r.client.Post(ctx, "/payments/process", payload, &dto); err != nil {
		return nil, errors.Wrap(err, "process payment")
	}

	return dto.toEntity(), nil
}

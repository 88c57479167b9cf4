package rest

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"

	"github.com/google/uuid"
)

type paymentCardRepository struct {
	client *api.Client
}

// NewPaymentCardRepository creates the REST-backed payment-card repository.
func NewPaymentCardRepository(client *api.Client) repository.PaymentCardRepository {
	return &paymentCardRepository{client: client}
}

// ListCards retrieves all stored cards of the authenticated user.
func (r *paymentCardRepository) ListCards(ctx context.Context) ([]*entity.PaymentCard, error) {
	var dtos []cardDTO
	if err := r.client.Get(ctx, "/payment-cards", &dtos); err != nil {
		return nil, errors.Wrap(err, "list cards")
	}

	cards := make([]*entity.PaymentCard, 0, len(dtos))
	for _, dto := range dtos {
		cards = append(cards, dto.toEntity())
	}

	return cards, nil
}

// CreateCard tokenizes and stores a new card, returning the server's copy.
func (r *paymentCardRepository) CreateCard(ctx context.Context, input repository.PaymentCardInput) (*entity.PaymentCard, error) {
	var dto cardDTO
	if err := r.client.Post(ctx, "/payment-cards", cardPayloadFrom(input, true), &dto); err != nil {
		return nil, errors.Wrap(err, "create card")
	}

	return dto.toEntity(), nil
}

// UpdateCard updates cardholder name, expiry or default flag. The number and
// CVV never travel on update; the server keeps only the token.
func (r *paymentCardRepository) UpdateCard(ctx context.Context, id uuid.UUID, input repository.PaymentCardInput) (*entity.PaymentCard, error) {
	var dto cardDTO
	if err := r.client.Put(ctx, "/payment-cards/"+id.String(), cardPayloadFrom(input, false), &dto); err != nil {
		return nil, notFoundAs(err, repository.ErrCardNotFound, "update card")
	}

	return dto.toEntity(), nil
}

// DeleteCard removes a stored card by its ID.
func (r *paymentCardRepository) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Delete(ctx, "/payment-cards/"+id.String()); err != nil {
		return notFoundAs(err, repository.ErrCardNotFound, "delete card")
	}

	return nil
}

// SetDefaultCard marks a card as the user's primary one.
func (r *paymentCardRepository) SetDefaultCard(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Patch(ctx, "/payment-cards/"+id.String()+"/set-default", nil, nil); err != nil {
		return notFoundAs(err, repository.ErrCardNotFound, "set default card")
	}

	return nil
}

func cardPayloadFrom(input repository.PaymentCardInput, includeSecret bool) cardPayload {
	payload := cardPayload{
		Type:           input.Type.String(),
		CardholderName: input.CardholderName,
		ExpiryMonth:    input.ExpiryMonth,
		ExpiryYear:     input.ExpiryYear,
		IsDefault:      input.IsDefault,
	}
	if includeSecret {
		payload.Number = input.Number
		payload.CVV = input.CVV
	}

	return payload
}

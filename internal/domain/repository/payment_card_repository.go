package repository

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the payment-card resource.
var (
	// ErrCardNotFound is returned when a payment card is not found.
	ErrCardNotFound = errors.New("payment card not found")
)

// PaymentCardInput defines the data required to store a card. The full number
// and CVV go to the server once, for tokenization, and are never stored here.
type PaymentCardInput struct {
	Type           entity.CardType
	Number         string
	CVV            string
	CardholderName string
	ExpiryMonth    int
	ExpiryYear     int
	IsDefault      bool
}

// PaymentCardRepository wraps the payment-card REST resource.
type PaymentCardRepository interface {
	// ListCards retrieves all stored cards of the authenticated user.
	ListCards(ctx context.Context) ([]*entity.PaymentCard, error)

	// CreateCard tokenizes and stores a new card, returning the server's copy.
	CreateCard(ctx context.Context, input PaymentCardInput) (*entity.PaymentCard, error)

	// UpdateCard updates cardholder name, expiry or default flag.
	UpdateCard(ctx context.Context, id uuid.UUID, input PaymentCardInput) (*entity.PaymentCard, error)

	// DeleteCard removes a stored card by its ID.
	DeleteCard(ctx context.Context, id uuid.UUID) error

	// SetDefaultCard marks a card as the user's primary one. The server
	// guarantees exclusivity; the caller mirrors it locally.
	SetDefaultCard(ctx context.Context, id uuid.UUID) error
}

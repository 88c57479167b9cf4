package usecase

import (
	"context"

	"sabor/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentSelection is the user's payment choice: a stored card or PIX.
type PaymentSelection struct {
	Method entity.PaymentMethod
	CardID uuid.UUID // Zero for PIX.
}

// PaymentFailure is the structured payload carried to the confirmation screen
// when the payment step failed after the order was already created.
type PaymentFailure struct {
	Code    string // Business error code from the gateway or client.
	Message string // User-facing message.
}

// CheckoutOutcome is the two-phase result of a confirmation: the order phase
// and the payment phase are reported independently, because an order survives
// its payment failing.
type CheckoutOutcome struct {
	Order        *entity.Order         // Always set on a returned outcome.
	Payment      *entity.PaymentResult // Set when the payment step succeeded.
	PaymentError *PaymentFailure       // Set when the payment step failed.
	PixQR        []byte                // PNG of the PIX charge, when one was issued.
}

// Paid reports whether both phases completed.
func (o *CheckoutOutcome) Paid() bool {
	return o.PaymentError == nil && o.Payment != nil
}

// CheckoutUsecase aggregates the selected address, the payment selection and
// the cart into a single confirm action: create the order, then process the
// payment, then clear the cart regardless of the payment step's result.
type CheckoutUsecase interface {
	// Totals derives the current money breakdown from the cart and coupon.
	Totals() entity.OrderTotals

	// SelectCard chooses a stored card as the payment method.
	SelectCard(id uuid.UUID) error

	// SelectPix chooses PIX as the payment method.
	SelectPix()

	// Selection returns the current payment choice.
	Selection() PaymentSelection

	// CanConfirm reports whether the confirm action is enabled: an address
	// is selected, the cart is non-empty and no submission is in flight.
	CanConfirm() bool

	// Submitting reports whether a confirmation is in flight.
	Submitting() bool

	// Confirm runs the submission sequence and returns the two-phase
	// outcome. Guard failures return a user-facing error and no outcome.
	Confirm(ctx context.Context) (*CheckoutOutcome, error)
}

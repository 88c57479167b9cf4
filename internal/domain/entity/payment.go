package entity

import "time"

// PaymentMethod is the backend's payment-method enum for an order.
type PaymentMethod string

const (
	// PaymentMethodCreditCard pays with a stored credit card.
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	// PaymentMethodDebitCard pays with a stored debit card.
	PaymentMethodDebitCard PaymentMethod = "debit_card"
	// PaymentMethodPix pays through a PIX charge.
	PaymentMethodPix PaymentMethod = "pix"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix:
		return true
	default:
		return false
	}
}

// PixCharge is the payable artifact of a PIX payment: the copia-e-cola
// payload the user scans or pastes into their banking app.
type PixCharge struct {
	Payload   string    // EMV copia-e-cola string.
	ExpiresAt time.Time // When the charge stops being payable.
}

// PaymentResult is the server's answer to a payment-process request.
type PaymentResult struct {
	TransactionID string     // Gateway transaction identifier.
	Status        string     // Gateway status, e.g. "approved", "pending".
	Pix           *PixCharge // Present only for PIX payments.
	ProcessedAt   time.Time  // When the gateway handled the request.
}

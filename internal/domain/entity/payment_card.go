package entity

import (
	"time"

	"github.com/google/uuid"
)

// CardType classifies a stored payment card.
type CardType string

const (
	// CardTypeCredit indicates a credit card.
	CardTypeCredit CardType = "credit"
	// CardTypeDebit indicates a debit card.
	CardTypeDebit CardType = "debit"
)

// String returns the string representation of the CardType.
func (t CardType) String() string {
	return string(t)
}

// IsValid checks if the CardType is a valid value.
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeCredit, CardTypeDebit:
		return true
	default:
		return false
	}
}

// PaymentCard is a tokenized card on file. The client never holds the full
// PAN after creation; only the last digits come back from the server.
type PaymentCard struct {
	ID             uuid.UUID // The unique identifier assigned by the server.
	Type           CardType  // Credit or debit.
	LastDigits     string    // Last four digits of the card number.
	CardholderName string    // Name embossed on the card.
	ExpiryMonth    int       // 1-12.
	ExpiryYear     int       // Four-digit year.
	IsDefault      bool      // Indicates this is the user's primary card.
	IsActive       bool      // False when the server has deactivated the card.
	CreatedAt      time.Time // Timestamp of when this card was stored.
}

// IsExpired reports whether the card's expiry has passed relative to now.
// A card expires at the end of its expiry month.
func (c PaymentCard) IsExpired(now time.Time) bool {
	if c.ExpiryYear < now.Year() {
		return true
	}
	if c.ExpiryYear > now.Year() {
		return false
	}

	return c.ExpiryMonth < int(now.Month())
}

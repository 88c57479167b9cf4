package entity

// DiscountType classifies how a coupon's value is applied.
type DiscountType string

const (
	// DiscountTypeFixed subtracts a fixed amount in centavos.
	DiscountTypeFixed DiscountType = "fixed"
	// DiscountTypePercentage subtracts a percentage of subtotal plus delivery fee.
	DiscountTypePercentage DiscountType = "percentage"
)

// String returns the string representation of the DiscountType.
func (t DiscountType) String() string {
	return string(t)
}

// IsValid checks if the DiscountType is a valid value.
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypeFixed, DiscountTypePercentage:
		return true
	default:
		return false
	}
}

// Coupon is an applied discount code. Validation happens server-side when the
// code is applied; the client only derives the discount amount from it.
type Coupon struct {
	Code          string       // The code the user typed, as accepted by the server.
	DiscountType  DiscountType // Fixed amount or percentage.
	DiscountValue int64        // Centavos for fixed, whole percent (0-100) for percentage.
}

// DiscountFor computes the discount in centavos for the given subtotal and
// delivery fee. The result never exceeds subtotal+deliveryFee and is never
// negative, so the order total cannot go below zero.
func (c Coupon) DiscountFor(subtotal, deliveryFee int64) int64 {
	base := subtotal + deliveryFee

	var discount int64
	switch c.DiscountType {
	case DiscountTypeFixed:
		discount = c.DiscountValue
	case DiscountTypePercentage:
		discount = base * c.DiscountValue / 100
	default:
		return 0
	}

	if discount < 0 {
		return 0
	}
	if discount > base {
		return base
	}

	return discount
}

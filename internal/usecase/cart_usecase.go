package usecase

import "sabor/internal/domain/entity"

// CartUsecase owns the local cart. The cart is transient client state: it is
// never persisted server-side and is cleared when an order is submitted.
type CartUsecase interface {
	// Items returns a copy of the current cart lines.
	Items() []entity.CartItem

	// AddItem puts a product in the cart, merging quantity when the product
	// is already there.
	AddItem(item entity.CartItem)

	// RemoveItem drops a product from the cart entirely.
	RemoveItem(productID string)

	// UpdateQuantity sets a line's quantity. Zero removes the line.
	UpdateQuantity(productID string, quantity int) error

	// ApplyCoupon attaches a server-validated coupon to the cart.
	ApplyCoupon(coupon entity.Coupon)

	// RemoveCoupon detaches the applied coupon, if any.
	RemoveCoupon()

	// Coupon returns the applied coupon, or nil.
	Coupon() *entity.Coupon

	// Totals derives the money breakdown for the current cart and coupon.
	Totals() entity.OrderTotals

	// IsEmpty reports whether the cart holds no items.
	IsEmpty() bool

	// Clear empties the cart and removes the coupon.
	Clear()
}

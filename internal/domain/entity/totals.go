package entity

// OrderTotals is the derived money breakdown of a cart. It is recomputed from
// the cart items and the applied coupon on demand; nothing is persisted.
type OrderTotals struct {
	Subtotal    int64 // Sum of line totals, in centavos.
	DeliveryFee int64 // Fixed fee in centavos.
	Discount    int64 // Coupon discount in centavos, clamped to Subtotal+DeliveryFee.
	Total       int64 // Subtotal + DeliveryFee - Discount.
}

// ComputeTotals derives the totals for the given items, delivery fee and
// optional coupon. All arithmetic is in integer centavos.
func ComputeTotals(items []CartItem, deliveryFee int64, coupon *Coupon) OrderTotals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	// An empty cart carries no delivery fee; there is nothing to deliver.
	if len(items) == 0 {
		return OrderTotals{}
	}

	var discount int64
	if coupon != nil {
		discount = coupon.DiscountFor(subtotal, deliveryFee)
	}

	return OrderTotals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Total:       subtotal + deliveryFee - discount,
	}
}

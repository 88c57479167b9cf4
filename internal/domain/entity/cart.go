// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// CartItem is a single product line held in the local cart.
// The cart is transient client state; the server never stores it.
type CartItem struct {
	ID         string // Product identifier as returned by the catalog.
	Title      string // Display title, snapshotted at the time the item was added.
	FinalPrice int64  // Unit price in centavos, after any product-level promotion.
	Quantity   int    // Number of units; always >= 1 while the item is in the cart.
}

// LineTotal returns the total price for this line in centavos.
func (i CartItem) LineTotal() int64 {
	return i.FinalPrice * int64(i.Quantity)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a product line snapshotted into an order at creation time.
type OrderItem struct {
	ProductID  string // Catalog identifier of the product.
	Title      string // Title at the time of purchase.
	FinalPrice int64  // Unit price in centavos at the time of purchase.
	Quantity   int    // Units purchased.
}

// StatusChange is one entry of an order's status history.
type StatusChange struct {
	Status     OrderStatus // The status the order entered.
	OccurredAt time.Time   // When the transition happened, server clock.
}

// Order is server-owned. The client creates it once per checkout submission
// and afterwards only observes status transitions via refetch.
type Order struct {
	ID            uuid.UUID      // The unique identifier assigned by the server.
	OrderNumber   string         // Short human-readable number shown to the user.
	Status        OrderStatus    // Current lifecycle state.
	Items         []OrderItem    // Snapshot of the cart at submission.
	Address       Address        // Snapshot of the delivery address at submission.
	PaymentMethod PaymentMethod  // How the user chose to pay.
	Totals        OrderTotals    // Money breakdown as accepted by the server.
	StatusHistory []StatusChange // Transitions observed so far, oldest first.
	CreatedAt     time.Time      // When the order was created.
}

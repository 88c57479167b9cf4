package entity

// OrderStatus is the server-owned lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending means the order was created but not yet paid or confirmed.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAwaitingPayment means payment processing has not completed.
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	// OrderStatusConfirmed means the restaurant accepted the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusPreparing means the kitchen is working on the order.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusOutForDelivery means a courier picked up the order.
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	// OrderStatusDelivered means the order reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCanceled means the order was canceled before delivery.
	OrderStatusCanceled OrderStatus = "canceled"
	// OrderStatusRefunded means the order was canceled and the payment returned.
	OrderStatusRefunded OrderStatus = "refunded"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAwaitingPayment, OrderStatusConfirmed,
		OrderStatusPreparing, OrderStatusOutForDelivery, OrderStatusDelivered,
		OrderStatusCanceled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status is terminal; no further transitions follow.
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCanceled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// IsCancelable reports whether the client may still request cancellation.
// The server remains authoritative; this only gates the UI action.
func (s OrderStatus) IsCancelable() bool {
	switch s {
	case OrderStatusPending, OrderStatusAwaitingPayment, OrderStatusConfirmed:
		return true
	default:
		return false
	}
}

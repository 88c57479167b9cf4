// Package impl contains the application-specific business rules implementations.
package impl

import (
	"log/slog"
	"sync"

	"sabor/config"
	"sabor/internal/domain/entity"
	"sabor/internal/errors"
	"sabor/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	mu          sync.Mutex
	items       []entity.CartItem
	coupon      *entity.Coupon
	deliveryFee int64
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(cfg *config.Config, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		deliveryFee: cfg.Checkout.DeliveryFeeCents,
		logger:      logger,
	}
}

// Items returns a copy of the current cart lines.
func (srv *cartService) Items() []entity.CartItem {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	items := make([]entity.CartItem, len(srv.items))
	copy(items, srv.items)

	return items
}

// AddItem puts a product in the cart, merging quantity when already present.
func (srv *cartService) AddItem(item entity.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].ID == item.ID {
			srv.items[i].Quantity += item.Quantity

			return
		}
	}

	srv.items = append(srv.items, item)
	srv.logger.Debug("item added to cart", slog.String("product_id", item.ID))
}

// RemoveItem drops a product from the cart entirely.
func (srv *cartService) RemoveItem(productID string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].ID == productID {
			srv.items = append(srv.items[:i], srv.items[i+1:]...)

			return
		}
	}
}

// UpdateQuantity sets a line's quantity. Zero removes the line.
func (srv *cartService) UpdateQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	if quantity == 0 {
		srv.RemoveItem(productID)

		return nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].ID == productID {
			srv.items[i].Quantity = quantity

			return nil
		}
	}

	return errors.Errorf("product %s is not in the cart", productID)
}

// ApplyCoupon attaches a server-validated coupon to the cart.
func (srv *cartService) ApplyCoupon(coupon entity.Coupon) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.coupon = &coupon
	srv.logger.Debug("coupon applied", slog.String("code", coupon.Code))
}

// RemoveCoupon detaches the applied coupon, if any.
func (srv *cartService) RemoveCoupon() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.coupon = nil
}

// Coupon returns the applied coupon, or nil.
func (srv *cartService) Coupon() *entity.Coupon {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.coupon == nil {
		return nil
	}
	coupon := *srv.coupon

	return &coupon
}

// Totals derives the money breakdown for the current cart and coupon.
func (srv *cartService) Totals() entity.OrderTotals {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.ComputeTotals(srv.items, srv.deliveryFee, srv.coupon)
}

// IsEmpty reports whether the cart holds no items.
func (srv *cartService) IsEmpty() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return len(srv.items) == 0
}

// Clear empties the cart and removes the coupon.
func (srv *cartService) Clear() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil
	srv.coupon = nil
}

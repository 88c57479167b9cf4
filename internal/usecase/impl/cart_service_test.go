package impl

import (
	"testing"

	"sabor/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCart(deliveryFeeCents int64) *cartService {
	return NewCartService(newTestConfig(deliveryFeeCents), newDiscardLogger()).(*cartService)
}

func TestCartService_AddItem_MergesQuantity(t *testing.T) {
	cart := createTestCart(900)

	cart.AddItem(entity.CartItem{ID: "burger-1", Title: "X-Salada", FinalPrice: 2000, Quantity: 1})
	cart.AddItem(entity.CartItem{ID: "burger-1", Title: "X-Salada", FinalPrice: 2000, Quantity: 2})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_AddItem_ZeroQuantityBecomesOne(t *testing.T) {
	cart := createTestCart(900)

	cart.AddItem(entity.CartItem{ID: "soda-1", FinalPrice: 600})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 1})

	require.NoError(t, cart.UpdateQuantity("burger-1", 5))
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	// Zero removes the line.
	require.NoError(t, cart.UpdateQuantity("burger-1", 0))
	assert.True(t, cart.IsEmpty())
}

func TestCartService_UpdateQuantity_Negative(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 1})

	err := cart.UpdateQuantity("burger-1", -1)
	require.Error(t, err)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartService_UpdateQuantity_UnknownProduct(t *testing.T) {
	cart := createTestCart(900)

	err := cart.UpdateQuantity("ghost", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the cart")
}

func TestCartService_Totals_SumsLineTotals(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 2})

	totals := cart.Totals()
	assert.Equal(t, int64(4000), totals.Subtotal)
	assert.Equal(t, int64(900), totals.DeliveryFee)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(4900), totals.Total)
}

func TestCartService_Totals_FixedCoupon(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 2})
	cart.ApplyCoupon(entity.Coupon{
		Code:          "DEZREAIS",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 1000,
	})

	totals := cart.Totals()
	assert.Equal(t, int64(1000), totals.Discount)
	assert.Equal(t, int64(3900), totals.Total)
}

func TestCartService_Totals_PercentageCoupon(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 2})
	cart.ApplyCoupon(entity.Coupon{
		Code:          "DEZPORCENTO",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: 10,
	})

	totals := cart.Totals()
	// 10% of 4900.
	assert.Equal(t, int64(490), totals.Discount)
	assert.Equal(t, int64(4410), totals.Total)
}

func TestCartService_Totals_DiscountNeverExceedsOrder(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "soda-1", FinalPrice: 600, Quantity: 1})
	cart.ApplyCoupon(entity.Coupon{
		Code:          "GIGANTE",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 100000,
	})

	totals := cart.Totals()
	assert.Equal(t, int64(1500), totals.Discount)
	assert.Equal(t, int64(0), totals.Total)
}

func TestCartService_Totals_EmptyCartHasNoFee(t *testing.T) {
	cart := createTestCart(900)

	totals := cart.Totals()
	assert.Equal(t, entity.OrderTotals{}, totals)
}

func TestCartService_RemoveCoupon(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 1})
	cart.ApplyCoupon(entity.Coupon{Code: "X", DiscountType: entity.DiscountTypeFixed, DiscountValue: 500})

	require.NotNil(t, cart.Coupon())
	cart.RemoveCoupon()
	assert.Nil(t, cart.Coupon())
	assert.Equal(t, int64(2900), cart.Totals().Total)
}

func TestCartService_Clear(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 1})
	cart.ApplyCoupon(entity.Coupon{Code: "X", DiscountType: entity.DiscountTypeFixed, DiscountValue: 500})

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Coupon())
}

func TestCartService_ItemsReturnsCopy(t *testing.T) {
	cart := createTestCart(900)
	cart.AddItem(entity.CartItem{ID: "burger-1", FinalPrice: 2000, Quantity: 1})

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

package usecase

import (
	"context"

	"sabor/internal/domain/entity"

	"github.com/google/uuid"
)

// CardForm is the add/edit card sub-form. The number and CVV are sent to the
// server once, for tokenization, and never held after the call returns.
type CardForm struct {
	Type           string `validate:"required,oneof=credit debit"`
	Number         string `validate:"required,min=13,credit_card"`
	CVV            string `validate:"required,numeric,min=3,max=4"`
	CardholderName string `validate:"required,min=3"`
	ExpiryMonth    int    `validate:"required,min=1,max=12"`
	ExpiryYear     int    `validate:"required,min=2000"`
	IsDefault      bool
}

// PaymentCardUsecase is the payment-card store, with the same lifecycle and
// splice-after-confirm behavior as the address store.
type PaymentCardUsecase interface {
	// State reports the store lifecycle state.
	State() StoreState

	// Load fetches the list. Selection starts at the default card.
	Load(ctx context.Context) error

	// Reset drops the list and selection; called on logout.
	Reset()

	// List returns the in-memory list in server order.
	List() []*entity.PaymentCard

	// Selected returns the currently selected card, or nil.
	Selected() *entity.PaymentCard

	// Select points the store at a card already in the list.
	Select(id uuid.UUID) error

	// Add validates the form, stores the card and auto-selects it.
	Add(ctx context.Context, form CardForm) (*entity.PaymentCard, error)

	// Update validates the mutable fields and replaces the list entry.
	Update(ctx context.Context, id uuid.UUID, form CardForm) (*entity.PaymentCard, error)

	// Delete removes the card, dropping the selection if it pointed there.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDefault marks one card as default and zeroes the flag on every
	// other local entry, mirroring the server's exclusivity guarantee.
	SetDefault(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"

	"github.com/google/uuid"
)

// AddressForm is the add/edit address sub-form. Field checks run client-side
// before any network call; the server re-validates.
type AddressForm struct {
	Type         string `validate:"required,oneof=home work other"`
	Street       string `validate:"required,min=3"`
	Complement   string `validate:"max=100"`
	Neighborhood string `validate:"required,min=2"`
	City         string `validate:"required,min=2"`
	State        string `validate:"required,len=2,alpha"`
	ZipCode      string `validate:"required,cep"`
	IsDefault    bool
}

// AddressUsecase is the address store: it holds the in-memory list plus the
// selected pointer, loads from the repository when a session begins, and
// splices the list after each confirmed mutation.
type AddressUsecase interface {
	// State reports the store lifecycle state.
	State() StoreState

	// Load fetches the list. Selection starts at the default address.
	Load(ctx context.Context) error

	// Reset drops the list and selection; called on logout.
	Reset()

	// List returns the in-memory list in server order.
	List() []*entity.Address

	// Selected returns the currently selected address, or nil.
	Selected() *entity.Address

	// Select points the store at an address already in the list.
	Select(id uuid.UUID) error

	// Add validates the form, creates the address and auto-selects it.
	Add(ctx context.Context, form AddressForm) (*entity.Address, error)

	// Update validates the form and replaces the list entry on success.
	Update(ctx context.Context, id uuid.UUID, form AddressForm) (*entity.Address, error)

	// Delete removes the address, dropping the selection if it pointed there.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDefault marks one address as default and zeroes the flag on every
	// other local entry, mirroring the server's exclusivity guarantee.
	SetDefault(ctx context.Context, id uuid.UUID) error

	// DeliveryEstimate returns the server's forecast for the address, or the
	// client-side haversine fallback when the server cannot be reached.
	DeliveryEstimate(ctx context.Context, id uuid.UUID) (*repository.DeliveryEstimate, error)
}

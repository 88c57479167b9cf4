package repository

import (
	"context"
	"time"

	"sabor/internal/domain/entity"
	"sabor/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the address resource.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressInput defines the data required to create or update an address.
type AddressInput struct {
	Type         entity.AddressType
	Street       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	IsDefault    bool
}

// DeliveryEstimate is the server's delivery forecast for an address.
type DeliveryEstimate struct {
	Duration   time.Duration // Expected time until delivery.
	DistanceKm float64       // Courier travel distance.
}

// AddressRepository wraps the address REST resource.
type AddressRepository interface {
	// ListAddresses retrieves all addresses of the authenticated user.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	// CreateAddress persists a new address and returns the server's copy.
	CreateAddress(ctx context.Context, input AddressInput) (*entity.Address, error)

	// UpdateAddress replaces an existing address and returns the server's copy.
	UpdateAddress(ctx context.Context, id uuid.UUID, input AddressInput) (*entity.Address, error)

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// SetDefaultAddress marks an address as the user's primary one. The server
	// guarantees exclusivity; the caller mirrors it locally.
	SetDefaultAddress(ctx context.Context, id uuid.UUID) error

	// DeliveryTime asks the server for the delivery forecast to an address.
	DeliveryTime(ctx context.Context, id uuid.UUID) (*DeliveryEstimate, error)
}

package rest

import (
	"context"
	"net/http"
	"time"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"

	"github.com/google/uuid"
)

type addressRepository struct {
	client *api.Client
}

// NewAddressRepository creates the REST-backed address repository.
func NewAddressRepository(client *api.Client) repository.AddressRepository {
	return &addressRepository{client: client}
}

// ListAddresses retrieves all addresses of the authenticated user.
func (r *addressRepository) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	var dtos []addressDTO
	if err := r.client.Get(ctx, "/addresses", &dtos); err != nil {
		return nil, errors.Wrap(err, "list addresses")
	}

	addresses := make([]*entity.Address, 0, len(dtos))
	for _, dto := range dtos {
		addresses = append(addresses, dto.toEntity())
	}

	return addresses, nil
}

// CreateAddress persists a new address and returns the server's copy.
func (r *addressRepository) CreateAddress(ctx context.Context, input repository.AddressInput) (*entity.Address, error) {
	var dto addressDTO
	if err := r.client.Post(ctx, "/addresses", payloadFrom(input), &dto); err != nil {
		return nil, errors.Wrap(err, "create address")
	}

	return dto.toEntity(), nil
}

// UpdateAddress replaces an existing address and returns the server's copy.
func (r *addressRepository) UpdateAddress(ctx context.Context, id uuid.UUID, input repository.AddressInput) (*entity.Address, error) {
	var dto addressDTO
	if err := r.client.Put(ctx, "/addresses/"+id.String(), payloadFrom(input), &dto); err != nil {
		return nil, notFoundAs(err, repository.ErrAddressNotFound, "update address")
	}

	return dto.toEntity(), nil
}

// DeleteAddress removes an address by its ID.
func (r *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Delete(ctx, "/addresses/"+id.String()); err != nil {
		return notFoundAs(err, repository.ErrAddressNotFound, "delete address")
	}

	return nil
}

// SetDefaultAddress marks an address as the user's primary one.
func (r *addressRepository) SetDefaultAddress(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Patch(ctx, "/addresses/"+id.String()+"/set-default", nil, nil); err != nil {
		return notFoundAs(err, repository.ErrAddressNotFound, "set default address")
	}

	return nil
}

// DeliveryTime asks the server for the delivery forecast to an address.
func (r *addressRepository) DeliveryTime(ctx context.Context, id uuid.UUID) (*repository.DeliveryEstimate, error) {
	var dto deliveryTimeDTO
	if err := r.client.Get(ctx, "/addresses/"+id.String()+"/delivery-time", &dto); err != nil {
		return nil, notFoundAs(err, repository.ErrAddressNotFound, "fetch delivery time")
	}

	return &repository.DeliveryEstimate{
		Duration:   time.Duration(dto.EstimatedMinutes) * time.Minute,
		DistanceKm: dto.DistanceKm,
	}, nil
}

func payloadFrom(input repository.AddressInput) addressPayload {
	return addressPayload{
		Type:         input.Type.String(),
		Street:       input.Street,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		IsDefault:    input.IsDefault,
	}
}

// notFoundAs converts a 404 APIError into the given sentinel, wrapping
// everything else with the operation name.
func notFoundAs(err error, sentinel error, op string) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return errors.Wrap(sentinel, op)
	}

	return errors.Wrap(err, op)
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"sabor/config"
	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"
	"sabor/internal/usecase"
	"sabor/internal/util"
	"sabor/internal/validation"

	"github.com/google/uuid"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	mu         sync.Mutex
	state      usecase.StoreState
	list       []*entity.Address
	selectedID uuid.UUID

	repo      repository.AddressRepository
	validator *validation.Validator
	logger    *slog.Logger
	delivery  config.DeliveryConfig
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	repo repository.AddressRepository,
	validator *validation.Validator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		repo:      repo,
		validator: validator,
		logger:    logger,
		delivery:  *cfg.Delivery,
	}
}

// State reports the store lifecycle state.
func (srv *addressService) State() usecase.StoreState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// Load fetches the list. Selection starts at the default address.
func (srv *addressService) Load(ctx context.Context) error {
	srv.mu.Lock()
	if srv.state == usecase.StateLoading {
		srv.mu.Unlock()

		return nil
	}
	srv.state = usecase.StateLoading
	srv.mu.Unlock()

	list, err := srv.repo.ListAddresses(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		srv.state = usecase.StateNotLoaded

		return errors.Wrap(err, "load addresses")
	}

	srv.state = usecase.StateLoaded
	srv.list = list
	srv.selectedID = uuid.Nil
	for _, addr := range list {
		if addr.IsDefault {
			srv.selectedID = addr.ID

			break
		}
	}
	srv.logger.Debug("address store loaded", slog.Int("count", len(list)))

	return nil
}

// Reset drops the list and selection; called on logout.
func (srv *addressService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state = usecase.StateNotLoaded
	srv.list = nil
	srv.selectedID = uuid.Nil
}

// List returns the in-memory list in server order.
func (srv *addressService) List() []*entity.Address {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	list := make([]*entity.Address, len(srv.list))
	copy(list, srv.list)

	return list
}

// Selected returns the currently selected address, or nil.
func (srv *addressService) Selected() *entity.Address {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.findLocked(srv.selectedID)
}

// Select points the store at an address already in the list.
func (srv *addressService) Select(id uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.findLocked(id) == nil {
		return errors.Wrap(repository.ErrAddressNotFound, "select address")
	}
	srv.selectedID = id

	return nil
}

// Add validates the form, creates the address and auto-selects it.
func (srv *addressService) Add(ctx context.Context, form usecase.AddressForm) (*entity.Address, error) {
	if err := srv.validator.Struct(form); err != nil {
		return nil, err
	}

	created, err := srv.repo.CreateAddress(ctx, inputFromAddressForm(form))
	if err != nil {
		return nil, errors.Wrap(err, "create address")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if created.IsDefault {
		for _, addr := range srv.list {
			addr.IsDefault = false
		}
	}
	srv.list = append(srv.list, created)
	srv.selectedID = created.ID

	return created, nil
}

// Update validates the form and replaces the list entry on success.
func (srv *addressService) Update(ctx context.Context, id uuid.UUID, form usecase.AddressForm) (*entity.Address, error) {
	if err := srv.validator.Struct(form); err != nil {
		return nil, err
	}

	updated, err := srv.repo.UpdateAddress(ctx, id, inputFromAddressForm(form))
	if err != nil {
		return nil, errors.Wrap(err, "update address")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i, addr := range srv.list {
		if addr.ID == id {
			srv.list[i] = updated
		} else if updated.IsDefault {
			srv.list[i].IsDefault = false
		}
	}

	return updated, nil
}

// Delete removes the address, dropping the selection if it pointed there.
func (srv *addressService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.DeleteAddress(ctx, id); err != nil {
		return errors.Wrap(err, "delete address")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i, addr := range srv.list {
		if addr.ID == id {
			srv.list = append(srv.list[:i], srv.list[i+1:]...)

			break
		}
	}
	if srv.selectedID == id {
		srv.selectedID = uuid.Nil
	}

	return nil
}

// SetDefault marks one address as default and zeroes every other local flag.
// The server guarantees exclusivity; the local map mirrors it rather than
// re-deriving from a refetch.
func (srv *addressService) SetDefault(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.SetDefaultAddress(ctx, id); err != nil {
		return errors.Wrap(err, "set default address")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, addr := range srv.list {
		addr.IsDefault = addr.ID == id
	}

	return nil
}

// DeliveryEstimate returns the server's forecast, falling back to a local
// haversine estimate when the server cannot be reached.
func (srv *addressService) DeliveryEstimate(ctx context.Context, id uuid.UUID) (*repository.DeliveryEstimate, error) {
	estimate, err := srv.repo.DeliveryTime(ctx, id)
	if err == nil {
		return estimate, nil
	}

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsNetwork() {
		return nil, err
	}

	srv.mu.Lock()
	addr := srv.findLocked(id)
	srv.mu.Unlock()

	if addr == nil || !addr.HasCoordinates() || srv.delivery.StoreLat == 0 {
		return nil, err
	}

	duration, distanceKm := util.CourierETA(
		srv.delivery.StoreLat, srv.delivery.StoreLon,
		addr.Latitude, addr.Longitude,
		srv.delivery.FallbackSpeedKmh, srv.delivery.PreparationTime,
	)
	srv.logger.Debug("using haversine delivery fallback", slog.Float64("distance_km", distanceKm))

	return &repository.DeliveryEstimate{Duration: duration, DistanceKm: distanceKm}, nil
}

func (srv *addressService) findLocked(id uuid.UUID) *entity.Address {
	if id == uuid.Nil {
		return nil
	}
	for _, addr := range srv.list {
		if addr.ID == id {
			return addr
		}
	}

	return nil
}

func inputFromAddressForm(form usecase.AddressForm) repository.AddressInput {
	return repository.AddressInput{
		Type:         entity.AddressType(form.Type),
		Street:       strings.TrimSpace(form.Street),
		Complement:   strings.TrimSpace(form.Complement),
		Neighborhood: strings.TrimSpace(form.Neighborhood),
		City:         strings.TrimSpace(form.City),
		State:        strings.ToUpper(strings.TrimSpace(form.State)),
		ZipCode:      validation.OnlyDigits(form.ZipCode),
		IsDefault:    form.IsDefault,
	}
}

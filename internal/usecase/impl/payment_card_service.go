package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sabor/internal/domain/entity"
	domainerrors "sabor/internal/domain/errors"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/usecase"
	"sabor/internal/validation"

	"github.com/google/uuid"
)

// paymentCardService implements the PaymentCardUsecase interface.
type paymentCardService struct {
	mu         sync.Mutex
	state      usecase.StoreState
	list       []*entity.PaymentCard
	selectedID uuid.UUID

	repo      repository.PaymentCardRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// NewPaymentCardService is the constructor for paymentCardService.
func NewPaymentCardService(
	repo repository.PaymentCardRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.PaymentCardUsecase {
	return &paymentCardService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// State reports the store lifecycle state.
func (srv *paymentCardService) State() usecase.StoreState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// Load fetches the list. Selection starts at the default card.
func (srv *paymentCardService) Load(ctx context.Context) error {
	srv.mu.Lock()
	if srv.state == usecase.StateLoading {
		srv.mu.Unlock()

		return nil
	}
	srv.state = usecase.StateLoading
	srv.mu.Unlock()

	list, err := srv.repo.ListCards(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		srv.state = usecase.StateNotLoaded

		return errors.Wrap(err, "load cards")
	}

	srv.state = usecase.StateLoaded
	srv.list = list
	srv.selectedID = uuid.Nil
	for _, card := range list {
		if card.IsDefault {
			srv.selectedID = card.ID

			break
		}
	}
	srv.logger.Debug("card store loaded", slog.Int("count", len(list)))

	return nil
}

// Reset drops the list and selection; called on logout.
func (srv *paymentCardService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state = usecase.StateNotLoaded
	srv.list = nil
	srv.selectedID = uuid.Nil
}

// List returns the in-memory list in server order.
func (srv *paymentCardService) List() []*entity.PaymentCard {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	list := make([]*entity.PaymentCard, len(srv.list))
	copy(list, srv.list)

	return list
}

// Selected returns the currently selected card, or nil.
func (srv *paymentCardService) Selected() *entity.PaymentCard {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.findLocked(srv.selectedID)
}

// Select points the store at a card already in the list.
func (srv *paymentCardService) Select(id uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.findLocked(id) == nil {
		return errors.Wrap(repository.ErrCardNotFound, "select card")
	}
	srv.selectedID = id

	return nil
}

// Add validates the form, stores the card and auto-selects it.
func (srv *paymentCardService) Add(ctx context.Context, form usecase.CardForm) (*entity.PaymentCard, error) {
	if err := srv.validateForm(form); err != nil {
		return nil, err
	}

	created, err := srv.repo.CreateCard(ctx, inputFromCardForm(form))
	if err != nil {
		return nil, errors.Wrap(err, "create card")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if created.IsDefault {
		for _, card := range srv.list {
			card.IsDefault = false
		}
	}
	srv.list = append(srv.list, created)
	srv.selectedID = created.ID

	return created, nil
}

// Update validates the mutable fields and replaces the list entry.
func (srv *paymentCardService) Update(ctx context.Context, id uuid.UUID, form usecase.CardForm) (*entity.PaymentCard, error) {
	if err := srv.validateForm(form); err != nil {
		return nil, err
	}

	updated, err := srv.repo.UpdateCard(ctx, id, inputFromCardForm(form))
	if err != nil {
		return nil, errors.Wrap(err, "update card")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i, card := range srv.list {
		if card.ID == id {
			srv.list[i] = updated
		} else if updated.IsDefault {
			srv.list[i].IsDefault = false
		}
	}

	return updated, nil
}

// Delete removes the card, dropping the selection if it pointed there.
func (srv *paymentCardService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.DeleteCard(ctx, id); err != nil {
		return errors.Wrap(err, "delete card")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i, card := range srv.list {
		if card.ID == id {
			srv.list = append(srv.list[:i], srv.list[i+1:]...)

			break
		}
	}
	if srv.selectedID == id {
		srv.selectedID = uuid.Nil
	}

	return nil
}

// SetDefault marks one card as default and zeroes every other local flag.
func (srv *paymentCardService) SetDefault(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.SetDefaultCard(ctx, id); err != nil {
		return errors.Wrap(err, "set default card")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, card := range srv.list {
		card.IsDefault = card.ID == id
	}

	return nil
}

// validateForm runs the tag checks plus the expiry-in-the-past check the tags
// cannot express.
func (srv *paymentCardService) validateForm(form usecase.CardForm) error {
	if err := srv.validator.Struct(form); err != nil {
		return err
	}

	probe := entity.PaymentCard{ExpiryMonth: form.ExpiryMonth, ExpiryYear: form.ExpiryYear}
	if probe.IsExpired(time.Now()) {
		return domainerrors.ErrValidationFailed.WithDetails("ExpiryYear: cartão vencido")
	}

	return nil
}

func (srv *paymentCardService) findLocked(id uuid.UUID) *entity.PaymentCard {
	if id == uuid.Nil {
		return nil
	}
	for _, card := range srv.list {
		if card.ID == id {
			return card
		}
	}

	return nil
}

func inputFromCardForm(form usecase.CardForm) repository.PaymentCardInput {
	return repository.PaymentCardInput{
		Type:           entity.CardType(form.Type),
		Number:         validation.OnlyDigits(form.Number),
		CVV:            strings.TrimSpace(form.CVV),
		CardholderName: strings.TrimSpace(form.CardholderName),
		ExpiryMonth:    form.ExpiryMonth,
		ExpiryYear:     form.ExpiryYear,
		IsDefault:      form.IsDefault,
	}
}

package impl

import (
	"context"
	"log/slog"
	"sync"

	"sabor/internal/domain/entity"
	domainerrors "sabor/internal/domain/errors"
	"sabor/internal/domain/repository"
	"sabor/internal/domain/service"
	"sabor/internal/errors"
	"sabor/internal/infra/api"
	"sabor/internal/usecase"

	"github.com/google/uuid"
)

// checkoutService implements the CheckoutUsecase interface. It aggregates the
// cart, the selected address and the payment selection into one confirm
// action: create the order, then process the payment, then clear the cart.
type checkoutService struct {
	mu         sync.Mutex
	submitting bool
	selection  usecase.PaymentSelection

	cart        usecase.CartUsecase
	addresses   usecase.AddressUsecase
	cards       usecase.PaymentCardUsecase
	session     usecase.SessionUsecase
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	pixQR       service.PixQRService
	logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	addresses usecase.AddressUsecase,
	cards usecase.PaymentCardUsecase,
	session usecase.SessionUsecase,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	pixQR service.PixQRService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:        cart,
		addresses:   addresses,
		cards:       cards,
		session:     session,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		pixQR:       pixQR,
		logger:      logger,
	}
}

// Totals derives the current money breakdown from the cart and coupon.
func (srv *checkoutService) Totals() entity.OrderTotals {
	return srv.cart.Totals()
}

// SelectCard chooses a stored card as the payment method.
func (srv *checkoutService) SelectCard(id uuid.UUID) error {
	var method entity.PaymentMethod
	found := false
	for _, card := range srv.cards.List() {
		if card.ID != id {
			continue
		}
		found = true
		switch card.Type {
		case entity.CardTypeDebit:
			method = entity.PaymentMethodDebitCard
		default:
			method = entity.PaymentMethodCreditCard
		}

		break
	}
	if !found {
		return errors.Wrap(repository.ErrCardNotFound, "select payment card")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.selection = usecase.PaymentSelection{Method: method, CardID: id}

	return nil
}

// SelectPix chooses PIX as the payment method.
func (srv *checkoutService) SelectPix() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.selection = usecase.PaymentSelection{Method: entity.PaymentMethodPix}
}

// Selection returns the current payment choice. With no explicit choice it
// falls back to the default card, then to PIX.
func (srv *checkoutService) Selection() usecase.PaymentSelection {
	srv.mu.Lock()
	selection := srv.selection
	srv.mu.Unlock()

	if selection.Method != "" {
		return selection
	}

	for _, card := range srv.cards.List() {
		if !card.IsDefault {
			continue
		}
		method := entity.PaymentMethodCreditCard
		if card.Type == entity.CardTypeDebit {
			method = entity.PaymentMethodDebitCard
		}

		return usecase.PaymentSelection{Method: method, CardID: card.ID}
	}

	return usecase.PaymentSelection{Method: entity.PaymentMethodPix}
}

// CanConfirm reports whether the confirm action is enabled.
func (srv *checkoutService) CanConfirm() bool {
	return srv.addresses.Selected() != nil && !srv.cart.IsEmpty() && !srv.Submitting()
}

// Submitting reports whether a confirmation is in flight.
func (srv *checkoutService) Submitting() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.submitting
}

// Confirm runs the submission sequence. The payment step's failure does not
// roll anything back: the order is already placed server-side, so the cart is
// cleared either way and the failure travels inside the outcome for the
// confirmation screen to present.
func (srv *checkoutService) Confirm(ctx context.Context) (*usecase.CheckoutOutcome, error) {
	srv.mu.Lock()
	if srv.submitting {
		srv.mu.Unlock()

		return nil, domainerrors.ErrSubmissionInFlight
	}
	srv.submitting = true
	srv.mu.Unlock()

	defer func() {
		srv.mu.Lock()
		srv.submitting = false
		srv.mu.Unlock()
	}()

	address := srv.addresses.Selected()
	if address == nil {
		return nil, domainerrors.ErrNoAddressSelected
	}

	items := srv.cart.Items()
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	selection := srv.Selection()
	if selection.Method != entity.PaymentMethodPix && srv.findCard(selection.CardID) == nil {
		return nil, domainerrors.ErrCardNotFound
	}

	input := repository.CreateOrderInput{
		Items:         make([]repository.OrderItemInput, 0, len(items)),
		AddressID:     address.ID,
		PaymentMethod: selection.Method,
	}
	for _, item := range items {
		input.Items = append(input.Items, repository.OrderItemInput{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		})
	}
	if coupon := srv.cart.Coupon(); coupon != nil {
		input.CouponCode = coupon.Code
	}

	order, err := srv.orderRepo.CreateOrder(ctx, input)
	if err != nil {
		// Nothing was committed; the cart stays intact for a retry.
		return nil, srv.userFacing(err)
	}
	srv.logger.Info("order created",
		slog.String("order_number", order.OrderNumber),
		slog.String("payment_method", selection.Method.String()),
	)

	outcome := &usecase.CheckoutOutcome{Order: order}

	payment, payErr := srv.paymentRepo.ProcessPayment(ctx, repository.ProcessPaymentInput{
		OrderID:   order.ID,
		Method:    selection.Method,
		CardID:    selection.CardID,
		PayerName: srv.payerName(),
		PayerCPF:  srv.payerCPF(),
	})
	if payErr != nil {
		outcome.PaymentError = paymentFailureFrom(payErr)
		srv.logger.Warn("payment step failed",
			slog.String("order_number", order.OrderNumber),
			slog.String("code", outcome.PaymentError.Code),
		)
	} else {
		outcome.Payment = payment
		if payment.Pix != nil {
			png, qrErr := srv.pixQR.RenderPixQR(payment.Pix.Payload)
			if qrErr != nil {
				// The copia-e-cola string alone is still payable.
				srv.logger.Warn("pix qr render failed", slog.Any("error", qrErr))
			} else {
				outcome.PixQR = png
			}
		}
	}

	// The order exists server-side whatever the payment step did.
	srv.cart.Clear()

	return outcome, nil
}

func (srv *checkoutService) findCard(id uuid.UUID) *entity.PaymentCard {
	for _, card := range srv.cards.List() {
		if card.ID == id {
			return card
		}
	}

	return nil
}

func (srv *checkoutService) payerName() string {
	if user := srv.session.CurrentUser(); user != nil {
		return user.Name
	}

	return ""
}

func (srv *checkoutService) payerCPF() string {
	if user := srv.session.CurrentUser(); user != nil {
		return user.CPF
	}

	return ""
}

// userFacing collapses an order-create failure into one of the predefined
// user-facing categories.
func (srv *checkoutService) userFacing(err error) error {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	switch apiErr.Code {
	case api.CodeRequestTimeout:
		return domainerrors.ErrRequestTimeout
	case api.CodeConnectionFailed:
		return domainerrors.ErrConnectionFailed.WithDetails(apiErr.Details)
	case api.CodeSessionExpired:
		return domainerrors.ErrSessionExpired
	default:
		return domainerrors.ClassifyServerMessage(apiErr.Message)
	}
}

func paymentFailureFrom(err error) *usecase.PaymentFailure {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &usecase.PaymentFailure{Code: apiErr.Code, Message: apiErr.Message}
	}

	return &usecase.PaymentFailure{
		Code:    domainerrors.ErrPaymentFailed.ErrorCode(),
		Message: domainerrors.ErrPaymentFailed.Message(),
	}
}

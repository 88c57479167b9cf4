package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"sabor/config"
	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(deliveryFeeCents int64) *config.Config {
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{DeliveryFeeCents: deliveryFeeCents},
		Delivery: &config.DeliveryConfig{
			FallbackSpeedKmh: 25,
			PreparationTime:  20 * time.Minute,
			StoreLat:         -23.5614,
			StoreLon:         -46.6559,
		},
	}

	return cfg
}

// fakeAddressRepo implements repository.AddressRepository via function fields.
// Unset fields return zero values.
type fakeAddressRepo struct {
	listFn       func(ctx context.Context) ([]*entity.Address, error)
	createFn     func(ctx context.Context, input repository.AddressInput) (*entity.Address, error)
	updateFn     func(ctx context.Context, id uuid.UUID, input repository.AddressInput) (*entity.Address, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	setDefaultFn func(ctx context.Context, id uuid.UUID) error
	deliveryFn   func(ctx context.Context, id uuid.UUID) (*repository.DeliveryEstimate, error)
}

func (f *fakeAddressRepo) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx)
}

func (f *fakeAddressRepo) CreateAddress(ctx context.Context, input repository.AddressInput) (*entity.Address, error) {
	if f.createFn == nil {
		return nil, nil
	}

	return f.createFn(ctx, input)
}

func (f *fakeAddressRepo) UpdateAddress(ctx context.Context, id uuid.UUID, input repository.AddressInput) (*entity.Address, error) {
	if f.updateFn == nil {
		return nil, nil
	}

	return f.updateFn(ctx, id, input)
}

func (f *fakeAddressRepo) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}

	return f.deleteFn(ctx, id)
}

func (f *fakeAddressRepo) SetDefaultAddress(ctx context.Context, id uuid.UUID) error {
	if f.setDefaultFn == nil {
		return nil
	}

	return f.setDefaultFn(ctx, id)
}

func (f *fakeAddressRepo) DeliveryTime(ctx context.Context, id uuid.UUID) (*repository.DeliveryEstimate, error) {
	if f.deliveryFn == nil {
		return nil, nil
	}

	return f.deliveryFn(ctx, id)
}

// fakeCardRepo implements repository.PaymentCardRepository via function fields.
type fakeCardRepo struct {
	listFn       func(ctx context.Context) ([]*entity.PaymentCard, error)
	createFn     func(ctx context.Context, input repository.PaymentCardInput) (*entity.PaymentCard, error)
	updateFn     func(ctx context.Context, id uuid.UUID, input repository.PaymentCardInput) (*entity.PaymentCard, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	setDefaultFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCardRepo) ListCards(ctx context.Context) ([]*entity.PaymentCard, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx)
}

func (f *fakeCardRepo) CreateCard(ctx context.Context, input repository.PaymentCardInput) (*entity.PaymentCard, error) {
	if f.createFn == nil {
		return nil, nil
	}

	return f.createFn(ctx, input)
}

func (f *fakeCardRepo) UpdateCard(ctx context.Context, id uuid.UUID, input repository.PaymentCardInput) (*entity.PaymentCard, error) {
	if f.updateFn == nil {
		return nil, nil
	}

	return f.updateFn(ctx, id, input)
}

func (f *fakeCardRepo) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}

	return f.deleteFn(ctx, id)
}

func (f *fakeCardRepo) SetDefaultCard(ctx context.Context, id uuid.UUID) error {
	if f.setDefaultFn == nil {
		return nil
	}

	return f.setDefaultFn(ctx, id)
}

// fakeOrderRepo implements repository.OrderRepository via function fields.
type fakeOrderRepo struct {
	createFn func(ctx context.Context, input repository.CreateOrderInput) (*entity.Order, error)
	findFn   func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	listFn   func(ctx context.Context) ([]*entity.Order, error)
	cancelFn func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	payFn    func(ctx context.Context, id uuid.UUID) (*entity.PaymentResult, error)
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, input repository.CreateOrderInput) (*entity.Order, error) {
	if f.createFn == nil {
		return nil, nil
	}

	return f.createFn(ctx, input)
}

func (f *fakeOrderRepo) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.findFn == nil {
		return nil, nil
	}

	return f.findFn(ctx, id)
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx)
}

func (f *fakeOrderRepo) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.cancelFn == nil {
		return nil, nil
	}

	return f.cancelFn(ctx, id)
}

func (f *fakeOrderRepo) PayOrder(ctx context.Context, id uuid.UUID) (*entity.PaymentResult, error) {
	if f.payFn == nil {
		return nil, nil
	}

	return f.payFn(ctx, id)
}

// fakePaymentRepo implements repository.PaymentRepository via a function field.
type fakePaymentRepo struct {
	processFn func(ctx context.Context, input repository.ProcessPaymentInput) (*entity.PaymentResult, error)
}

func (f *fakePaymentRepo) ProcessPayment(ctx context.Context, input repository.ProcessPaymentInput) (*entity.PaymentResult, error) {
	if f.processFn == nil {
		return nil, nil
	}

	return f.processFn(ctx, input)
}

// fakeAuthRepo implements repository.AuthRepository via function fields.
type fakeAuthRepo struct {
	loginFn    func(ctx context.Context, email, password string) (*entity.User, error)
	registerFn func(ctx context.Context, input repository.RegisterInput) (*entity.User, error)
	verifyFn   func(ctx context.Context, email, code string) (*entity.User, error)
	resendFn   func(ctx context.Context, email string) error
	logoutFn   func(ctx context.Context) error
	currentFn  func(ctx context.Context) (*entity.User, error)
}

func (f *fakeAuthRepo) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if f.loginFn == nil {
		return nil, nil
	}

	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthRepo) Register(ctx context.Context, input repository.RegisterInput) (*entity.User, error) {
	if f.registerFn == nil {
		return nil, nil
	}

	return f.registerFn(ctx, input)
}

func (f *fakeAuthRepo) VerifyOTP(ctx context.Context, email, code string) (*entity.User, error) {
	if f.verifyFn == nil {
		return nil, nil
	}

	return f.verifyFn(ctx, email, code)
}

func (f *fakeAuthRepo) ResendOTP(ctx context.Context, email string) error {
	if f.resendFn == nil {
		return nil
	}

	return f.resendFn(ctx, email)
}

func (f *fakeAuthRepo) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		return nil
	}

	return f.logoutFn(ctx)
}

func (f *fakeAuthRepo) CurrentUser(ctx context.Context) (*entity.User, error) {
	if f.currentFn == nil {
		return nil, nil
	}

	return f.currentFn(ctx)
}

// memoryTokenStore implements service.TokenStore without touching disk.
type memoryTokenStore struct {
	pair entity.TokenPair
}

func (m *memoryTokenStore) Save(pair entity.TokenPair) error {
	m.pair = pair

	return nil
}

func (m *memoryTokenStore) Load() (entity.TokenPair, error) {
	return m.pair, nil
}

func (m *memoryTokenStore) Clear() error {
	m.pair = entity.TokenPair{}

	return nil
}

// fakePixQR implements service.PixQRService; the default render is a PNG-ish
// marker so tests can assert the bytes travelled through.
type fakePixQR struct {
	renderFn func(payload string) ([]byte, error)
}

func (f *fakePixQR) RenderPixQR(payload string) ([]byte, error) {
	if f.renderFn == nil {
		return []byte{0x89, 'P', 'N', 'G'}, nil
	}

	return f.renderFn(payload)
}

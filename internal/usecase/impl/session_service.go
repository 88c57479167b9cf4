package impl

import (
	"context"
	"log/slog"
	"sync"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"
	"sabor/internal/usecase"
	"sabor/internal/validation"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	mu   sync.Mutex
	user *entity.User

	authRepo  repository.AuthRepository
	tokens    *api.TokenSource
	addresses usecase.AddressUsecase
	cards     usecase.PaymentCardUsecase
	cart      usecase.CartUsecase
	validator *validation.Validator
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authRepo repository.AuthRepository,
	client *api.Client,
	addresses usecase.AddressUsecase,
	cards usecase.PaymentCardUsecase,
	cart usecase.CartUsecase,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authRepo:  authRepo,
		tokens:    client.Tokens(),
		addresses: addresses,
		cards:     cards,
		cart:      cart,
		validator: validator,
		logger:    logger,
	}
}

// Login authenticates with email and password and loads the entity stores.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.authRepo.Login(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	srv.adoptUser(ctx, user)

	return user, nil
}

// Register validates the form and creates an account.
func (srv *sessionService) Register(ctx context.Context, form usecase.RegisterForm) (*entity.User, error) {
	if err := srv.validator.Struct(form); err != nil {
		return nil, err
	}

	user, err := srv.authRepo.Register(ctx, repository.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		CPF:      validation.OnlyDigits(form.CPF),
		Phone:    validation.OnlyDigits(form.Phone),
	})
	if err != nil {
		return nil, errors.Wrap(err, "register")
	}

	srv.adoptUser(ctx, user)

	return user, nil
}

// VerifyOTP confirms the registration code.
func (srv *sessionService) VerifyOTP(ctx context.Context, email, code string) (*entity.User, error) {
	user, err := srv.authRepo.VerifyOTP(ctx, email, code)
	if err != nil {
		return nil, errors.Wrap(err, "verify otp")
	}

	srv.adoptUser(ctx, user)

	return user, nil
}

// ResendOTP asks the server for a fresh verification code.
func (srv *sessionService) ResendOTP(ctx context.Context, email string) error {
	return errors.Wrap(srv.authRepo.ResendOTP(ctx, email), "resend otp")
}

// Logout ends the session and resets every store. The cart goes too: it
// belongs to the person, not the device.
func (srv *sessionService) Logout(ctx context.Context) error {
	err := srv.authRepo.Logout(ctx)

	srv.mu.Lock()
	srv.user = nil
	srv.mu.Unlock()

	srv.addresses.Reset()
	srv.cards.Reset()
	srv.cart.Clear()
	srv.logger.Info("session ended")

	return errors.Wrap(err, "logout")
}

// Restore resumes a persisted session from device storage.
func (srv *sessionService) Restore(ctx context.Context) (*entity.User, error) {
	if err := srv.tokens.Restore(); err != nil {
		return nil, errors.Wrap(err, "restore tokens")
	}
	if !srv.tokens.Authenticated() {
		return nil, nil
	}

	user, err := srv.authRepo.CurrentUser(ctx)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.IsSessionExpired() {
			// Stale pair; start logged out.
			return nil, nil
		}

		return nil, errors.Wrap(err, "restore session")
	}

	srv.adoptUser(ctx, user)

	return user, nil
}

// CurrentUser returns the authenticated user, or nil.
func (srv *sessionService) CurrentUser() *entity.User {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.user
}

// Authenticated reports whether a session is active.
func (srv *sessionService) Authenticated() bool {
	return srv.CurrentUser() != nil && srv.tokens.Authenticated()
}

// adoptUser records the user and kicks off the store loads. A failed load
// leaves that store not-loaded; the screen retries when it needs the list.
func (srv *sessionService) adoptUser(ctx context.Context, user *entity.User) {
	srv.mu.Lock()
	srv.user = user
	srv.mu.Unlock()

	if err := srv.addresses.Load(ctx); err != nil {
		srv.logger.Warn("address store load failed", slog.Any("error", err))
	}
	if err := srv.cards.Load(ctx); err != nil {
		srv.logger.Warn("card store load failed", slog.Any("error", err))
	}
}

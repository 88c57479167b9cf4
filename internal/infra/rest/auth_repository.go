package rest

import (
	"context"
	"log/slog"
	"net/http"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"
	"sabor/internal/errors"
	"sabor/internal/infra/api"
)

type authRepository struct {
	client *api.Client
	logger *slog.Logger
}

// NewAuthRepository creates the REST-backed auth repository.
func NewAuthRepository(client *api.Client, logger *slog.Logger) repository.AuthRepository {
	return &authRepository{client: client, logger: logger}
}

// Login exchanges credentials for a session and persists the token pair.
func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var session sessionDTO
	err := r.client.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, errors.Wrap(repository.ErrInvalidCredentials, apiErr.Message)
		}

		return nil, errors.Wrap(err, "login request")
	}

	return r.adoptSession(session)
}

// Register creates an account; the pair it returns belongs to a still
// unverified session.
func (r *authRepository) Register(ctx context.Context, input repository.RegisterInput) (*entity.User, error) {
	var session sessionDTO
	err := r.client.Post(ctx, "/auth/register", map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"cpf":      input.CPF,
		"phone":    input.Phone,
	}, &session)
	if err != nil {
		return nil, errors.Wrap(err, "register request")
	}

	return r.adoptSession(session)
}

// VerifyOTP confirms the registration code and persists the fresh pair.
func (r *authRepository) VerifyOTP(ctx context.Context, email, code string) (*entity.User, error) {
	var session sessionDTO
	err := r.client.Post(ctx, "/auth/verify-otp", map[string]string{
		"email": email,
		"code":  code,
	}, &session)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			return nil, errors.Wrap(repository.ErrOTPRejected, apiErr.Message)
		}

		return nil, errors.Wrap(err, "verify otp request")
	}

	return r.adoptSession(session)
}

// ResendOTP asks the server to send a fresh verification code.
func (r *authRepository) ResendOTP(ctx context.Context, email string) error {
	err := r.client.Post(ctx, "/auth/resend-otp", map[string]string{"email": email}, nil)

	return errors.Wrap(err, "resend otp request")
}

// Logout invalidates the session server-side and clears the stored pair.
// The local clear happens even when the server call fails: the device must
// always be able to log out.
func (r *authRepository) Logout(ctx context.Context) error {
	if err := r.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		r.logger.Warn("server-side logout failed", slog.Any("error", err))
	}

	return errors.Wrap(r.client.Tokens().Clear(), "clear tokens")
}

// CurrentUser fetches the authenticated user's profile.
func (r *authRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	var user userDTO
	if err := r.client.Get(ctx, "/users/me", &user); err != nil {
		return nil, errors.Wrap(err, "fetch current user")
	}

	return user.toEntity(), nil
}

func (r *authRepository) adoptSession(session sessionDTO) (*entity.User, error) {
	err := r.client.Tokens().Set(entity.TokenPair{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
	if err != nil {
		return nil, err
	}

	return session.User.toEntity(), nil
}

// Package repository defines the interfaces for the remote-resource layer.
// These interfaces act as a contract between the domain/application layers and
// the REST-backed infrastructure layer.
package repository

import (
	"context"

	"sabor/internal/domain/entity"
	"sabor/internal/errors"
)

// Domain-specific errors for the auth resource.
var (
	// ErrInvalidCredentials is returned when the server rejects the login pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOTPRejected is returned when the server rejects a verification code.
	ErrOTPRejected = errors.New("otp rejected")
)

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	CPF      string
	Phone    string
}

// AuthRepository wraps the auth and user REST resources. Login, register and
// verify persist the returned token pair as a side effect; Logout clears it.
type AuthRepository interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// Register creates an account. The account stays unverified until
	// VerifyOTP succeeds.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// VerifyOTP confirms the one-time password sent during registration.
	VerifyOTP(ctx context.Context, email, code string) (*entity.User, error)

	// ResendOTP asks the server to send a fresh verification code.
	ResendOTP(ctx context.Context, email string) error

	// Logout invalidates the session server-side and clears stored tokens.
	Logout(ctx context.Context) error

	// CurrentUser fetches the authenticated user's profile.
	CurrentUser(ctx context.Context) (*entity.User, error)
}

package usecase

import (
	"context"

	"sabor/internal/domain/entity"
)

// RegisterForm is the account creation form.
type RegisterForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	CPF      string `validate:"required,cpf"`
	Phone    string `validate:"required,numeric,min=10,max=11"`
}

// SessionUsecase drives authentication. A session becoming active loads every
// entity store; logout resets them and clears the persisted token pair.
type SessionUsecase interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// Register validates the form and creates an account; the session stays
	// unverified until VerifyOTP succeeds.
	Register(ctx context.Context, form RegisterForm) (*entity.User, error)

	// VerifyOTP confirms the registration code.
	VerifyOTP(ctx context.Context, email, code string) (*entity.User, error)

	// ResendOTP asks the server for a fresh verification code.
	ResendOTP(ctx context.Context, email string) error

	// Logout ends the session and resets every store.
	Logout(ctx context.Context) error

	// Restore resumes a persisted session from device storage. It returns
	// nil without error when no session is stored.
	Restore(ctx context.Context) (*entity.User, error)

	// CurrentUser returns the authenticated user, or nil.
	CurrentUser() *entity.User

	// Authenticated reports whether a session is active.
	Authenticated() bool
}

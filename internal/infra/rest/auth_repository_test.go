package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUserDTO() userDTO {
	return userDTO{
		ID:            uuid.New(),
		Name:          "Maria Silva",
		Email:         "maria@example.com",
		CPF:           "52998224725",
		Phone:         "+5511987654321",
		EmailVerified: true,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuthRepository_Login_Success(t *testing.T) {
	backend := newFakeBackend(t)
	user := testUserDTO()

	backend.echo.POST("/auth/login", func(c echo.Context) error {
		var body map[string]string
		require.NoError(t, c.Bind(&body))
		assert.Equal(t, "maria@example.com", body["email"])
		assert.Equal(t, "s3nha-forte", body["password"])

		return respondData(c, sessionDTO{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         user,
		})
	})

	repo := NewAuthRepository(backend.client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := repo.Login(context.Background(), "maria@example.com", "s3nha-forte")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Maria Silva", got.Name)
	assert.True(t, got.EmailVerified)

	// The session's token pair must be adopted by the client.
	assert.True(t, backend.client.Tokens().Authenticated())
}

func TestAuthRepository_Login_InvalidCredentials(t *testing.T) {
	backend := newFakeBackend(t)
	backend.echo.POST("/auth/login", func(c echo.Context) error {
		return respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "E-mail ou senha incorretos")
	})

	repo := NewAuthRepository(backend.client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := repo.Login(context.Background(), "maria@example.com", "errada")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
	assert.Nil(t, got)
	assert.False(t, backend.client.Tokens().Authenticated())
}

func TestAuthRepository_Register_AdoptsUnverifiedSession(t *testing.T) {
	backend := newFakeBackend(t)
	user := testUserDTO()
	user.EmailVerified = false

	backend.echo.POST("/auth/register", func(c echo.Context) error {
		var body map[string]string
		require.NoError(t, c.Bind(&body))
		assert.Equal(t, "Maria Silva", body["name"])
		assert.Equal(t, "52998224725", body["cpf"])
		assert.Equal(t, "+5511987654321", body["phone"])

		return respondData(c, sessionDTO{
			AccessToken:  "access-new",
			RefreshToken: "refresh-new",
			User:         user,
		})
	})

	repo := NewAuthRepository(backend.client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := repo.Register(context.Background(), repository.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3nha-forte",
		CPF:      "52998224725",
		Phone:    "+5511987654321",
	})
	require.NoError(t, err)
	assert.False(t, got.EmailVerified)
	assert.True(t, backend.client.Tokens().Authenticated())
}

func TestAuthRepository_VerifyOTP_Rejected(t *testing.T) {
	backend := newFakeBackend(t)
	backend.echo.POST("/auth/verify-otp", func(c echo.Context) error {
		return respondError(c, http.StatusBadRequest, "OTP_REJECTED", "Código inválido ou expirado")
	})

	repo := NewAuthRepository(backend.client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := repo.VerifyOTP(context.Background(), "maria@example.com", "000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrOTPRejected)
	assert.Nil(t, got)
}

func TestAuthRepository_Logout_ClearsTokensEvenWhenServerFails(t *testing.T) {
	backend := newFakeBackend(t)
	backend.echo.POST("/auth/logout", func(c echo.Context) error {
		return respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "boom")
	})

	require.NoError(t, backend.client.Tokens().Set(entity.TokenPair{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}))

	repo := NewAuthRepository(backend.client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, repo.Logout(context.Background()))
	assert.False(t, backend.client.Tokens().Authenticated())
}

func TestAuthRepository_CurrentUser_CarriesBearer(t *testing.T) {
	backend := newFakeBackend(t)
	user := testUserDTO()

	backend.echo.GET("/users/me", func(c echo.Context) error {
		assert.Equal(t, "Bearer access-1", c.Request().Header.Get("Authorization"))

		return respondData(c, user)
	})

	require.NoError(t, backend.client.Tokens().Set(entity.TokenPair{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}))

	repo := NewAuthRepository(backend.client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := repo.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.CPF, got.CPF)
}

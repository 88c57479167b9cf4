package rest

import (
	"context"
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

func testCardDTO() cardDTO {
	return cardDTO{
		ID:             uuid.New(),
		Type:           "credit",
		LastDigits:     "1111",
		CardholderName: "MARIA SILVA",
		ExpiryMonth:    12,
		ExpiryYear:     2028,
		IsDefault:      true,
		IsActive:       true,
		CreatedAt:      time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestPaymentCardRepository_Create_SendsNumberAndCVV(t *testing.T) {
	backend := newFakeBackend(t)
	authenticate(t, backend)

	created := testCardDTO()
	backend.echo.POST("/payment-cards", func(c echo.Context) error {
		var body map[string]any
		require.NoError(t, c.Bind(&body))
		assert.Equal(t, "credit", body["type"])
		assert.Equal(t, "4111111111111111", body["number"])
		assert.Equal(t, "123", body["cvv"])
		assert.Equal(t, "MARIA SILVA", body["cardholderName"])

		return respondData(c, created)
	})

	repo := NewPaymentCardRepository(backend.client)

	got, err := repo.CreateCard(context.Background(), repository.PaymentCardInput{
		Type:           entity.CardTypeCredit,
		Number:         "4111111111111111",
		CVV:            "123",
		CardholderName: "MARIA SILVA",
		ExpiryMonth:    12,
		ExpiryYear:     2028,
		IsDefault:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "1111", got.LastDigits)
	assert.Equal(t, entity.CardTypeCredit, got.Type)
}

func TestPaymentCardRepository_Update_OmitsNumberAndCVV(t *testing.T) {
	backend := newFakeBackend(t)
	authenticate(t, backend)

	updated := testCardDTO()
	backend.echo.PUT("/payment-cards/:id", func(c echo.Context) error {
		var body map[string]any
		require.NoError(t, c.Bind(&body))
		assert.NotContains(t, body, "number")
		assert.NotContains(t, body, "cvv")
		assert.Equal(t, "MARIA S SILVA", body["cardholderName"])

		return respondData(c, updated)
	})

	repo := NewPaymentCardRepository(backend.client)

	_, err := repo.UpdateCard(context.Background(), updated.ID, repository.PaymentCardInput{
		Type:           entity.CardTypeCredit,
		Number:         "4111111111111111",
		CVV:            "123",
		CardholderName: "MARIA S SILVA",
		ExpiryMonth:    12,
		ExpiryYear:     2029,
	})
	require.NoError(t, err)
}

func TestPaymentCardRepository_List(t *testing.T) {
	backend := newFakeBackend(t)
	authenticate(t, backend)

	first := testCardDTO()
	second := testCardDTO()
	second.Type = "debit"
	second.IsDefault = false

	backend.echo.GET("/payment-cards", func(c echo.Context) error {
		return respondData(c, []cardDTO{first, second})
	})

	repo := NewPaymentCardRepository(backend.client)

	got, err := repo.ListCards(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.CardTypeDebit, got[1].Type)
}

func TestPaymentCardRepository_Delete_NotFound(t *testing.T) {
	backend := newFakeBackend(t)
	authenticate(t, backend)

	backend.echo.DELETE("/payment-cards/:id", func(c echo.Context) error {
		return respondError(c, http.StatusNotFound, "NOT_FOUND", "Cartão não encontrado")
	})

	repo := NewPaymentCardRepository(backend.client)

	err := repo.DeleteCard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestPaymentCardRepository_SetDefault(t *testing.T) {
	backend := newFakeBackend(t)
	authenticate(t, backend)

	id := uuid.New()
	var hit bool
	backend.echo.PATCH("/payment-cards/:id/set-default", func(c echo.Context) error {
		hit = true
		assert.Equal(t, id.String(), c.Param("id"))

		return respondData(c, nil)
	})

	repo := NewPaymentCardRepository(backend.client)

	require.NoError(t, repo.SetDefaultCard(context.Background(), id))
	assert.True(t, hit)
}

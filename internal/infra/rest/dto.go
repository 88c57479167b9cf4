// Package rest implements the domain repository interfaces over the backend
// REST API. Each repository is a thin typed pass-through: marshal the input,
// let the shared client handle auth and errors, map the wire shape back to an
// entity. No caching, no retries beyond the client's built-in 401 refresh.
package rest

import (
	"time"

	"sabor/internal/domain/entity"

	"github.com/google/uuid"
)

type userDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CPF           string    `json:"cpf"`
	Phone         string    `json:"phone"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (d userDTO) toEntity() *entity.User {
	return &entity.User{
		ID:            d.ID,
		Name:          d.Name,
		Email:         d.Email,
		CPF:           d.CPF,
		Phone:         d.Phone,
		EmailVerified: d.EmailVerified,
		CreatedAt:     d.CreatedAt,
	}
}

// sessionDTO is the payload of login, register and verify-otp.
type sessionDTO struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	User         userDTO `json:"user"`
}

type addressDTO struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Street       string    `json:"street"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (d addressDTO) toEntity() *entity.Address {
	return &entity.Address{
		ID:           d.ID,
		Type:         entity.AddressType(d.Type),
		Street:       d.Street,
		Complement:   d.Complement,
		Neighborhood: d.Neighborhood,
		City:         d.City,
		State:        d.State,
		ZipCode:      d.ZipCode,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		IsDefault:    d.IsDefault,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type addressPayload struct {
	Type         string `json:"type"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	IsDefault    bool   `json:"isDefault"`
}

type deliveryTimeDTO struct {
	EstimatedMinutes int     `json:"estimatedMinutes"`
	DistanceKm       float64 `json:"distanceKm"`
}

type cardDTO struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	LastDigits     string    `json:"lastDigits"`
	CardholderName string    `json:"cardholderName"`
	ExpiryMonth    int       `json:"expiryMonth"`
	ExpiryYear     int       `json:"expiryYear"`
	IsDefault      bool      `json:"isDefault"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (d cardDTO) toEntity() *entity.PaymentCard {
	return &entity.PaymentCard{
		ID:             d.ID,
		Type:           entity.CardType(d.Type),
		LastDigits:     d.LastDigits,
		CardholderName: d.CardholderName,
		ExpiryMonth:    d.ExpiryMonth,
		ExpiryYear:     d.ExpiryYear,
		IsDefault:      d.IsDefault,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
	}
}

type cardPayload struct {
	Type           string `json:"type"`
	Number         string `json:"number,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CardholderName string `json:"cardholderName"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	IsDefault      bool   `json:"isDefault"`
}

type orderItemDTO struct {
	ProductID  string `json:"productId"`
	Title      string `json:"title"`
	FinalPrice int64  `json:"finalPrice"`
	Quantity   int    `json:"quantity"`
}

type statusChangeDTO struct {
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

type totalsDTO struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

type orderDTO struct {
	ID            uuid.UUID         `json:"id"`
	OrderNumber   string            `json:"orderNumber"`
	Status        string            `json:"status"`
	Items         []orderItemDTO    `json:"items"`
	Address       addressDTO        `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
	Totals        totalsDTO         `json:"totals"`
	StatusHistory []statusChangeDTO `json:"statusHistory"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func (d orderDTO) toEntity() *entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, entity.OrderItem{
			ProductID:  item.ProductID,
			Title:      item.Title,
			FinalPrice: item.FinalPrice,
			Quantity:   item.Quantity,
		})
	}

	history := make([]entity.StatusChange, 0, len(d.StatusHistory))
	for _, change := range d.StatusHistory {
		history = append(history, entity.StatusChange{
			Status:     entity.OrderStatus(change.Status),
			OccurredAt: change.OccurredAt,
		})
	}

	return &entity.Order{
		ID:            d.ID,
		OrderNumber:   d.OrderNumber,
		Status:        entity.OrderStatus(d.Status),
		Items:         items,
		Address:       *d.Address.toEntity(),
		PaymentMethod: entity.PaymentMethod(d.PaymentMethod),
		Totals: entity.OrderTotals{
			Subtotal:    d.Totals.Subtotal,
			DeliveryFee: d.Totals.DeliveryFee,
			Discount:    d.Totals.Discount,
			Total:       d.Totals.Total,
		},
		StatusHistory: history,
		CreatedAt:     d.CreatedAt,
	}
}

type paymentResultDTO struct {
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	PixPayload    string    `json:"pixPayload,omitempty"`
	PixExpiresAt  time.Time `json:"pixExpiresAt,omitempty"`
	ProcessedAt   time.Time `json:"processedAt"`
}

func (d paymentResultDTO) toEntity() *entity.PaymentResult {
	result := &entity.PaymentResult{
		TransactionID: d.TransactionID,
		Status:        d.Status,
		ProcessedAt:   d.ProcessedAt,
	}
	if d.PixPayload != "" {
		result.Pix = &entity.PixCharge{
			Payload:   d.PixPayload,
			ExpiresAt: d.PixExpiresAt,
		}
	}

	return result
}

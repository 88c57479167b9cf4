// Package errors defines application-specific error types for the storefront
// client, carrying a business code and a user-facing message alongside the
// transport status.
package errors

import (
	"net/http"

	"sabor/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Sua sessão expirou. Faça login novamente.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos.",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Você precisa estar logado para continuar.",
		"",
	)

	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Código de verificação inválido ou expirado.",
		"",
	)

	// Network-related errors
	ErrRequestTimeout = NewBaseError(
		http.StatusRequestTimeout,
		"REQUEST_TIMEOUT",
		"O servidor demorou para responder. Tente novamente.",
		"",
	)

	ErrConnectionFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"CONNECTION_FAILED",
		"Sem conexão com o servidor. Verifique sua internet.",
		"",
	)

	// Checkout-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Seu carrinho está vazio.",
		"",
	)

	ErrNoAddressSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_ADDRESS_SELECTED",
		"Selecione um endereço de entrega antes de confirmar.",
		"",
	)

	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"Seu pedido já está sendo enviado. Aguarde.",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Um dos itens do carrinho não está mais disponível.",
		"",
	)

	ErrCouponInvalid = NewBaseError(
		http.StatusBadRequest,
		"COUPON_INVALID",
		"Este cupom não é válido para o seu pedido.",
		"",
	)

	ErrAddressRejected = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REJECTED",
		"Não entregamos neste endereço.",
		"",
	)

	ErrCardRejected = NewBaseError(
		http.StatusBadRequest,
		"CARD_REJECTED",
		"Não foi possível usar este cartão. Tente outro método de pagamento.",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"PAYMENT_FAILED",
		"Pedido realizado, mas o pagamento não foi concluído.",
		"",
	)

	// Entity-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Endereço não encontrado.",
		"",
	)

	ErrCardNotFound = NewBaseError(
		http.StatusNotFound,
		"CARD_NOT_FOUND",
		"Cartão não encontrado.",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido não encontrado.",
		"",
	)

	ErrOrderNotCancelable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_CANCELABLE",
		"Este pedido não pode mais ser cancelado.",
		"",
	)

	ErrOrderNotPayable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PAYABLE",
		"Este pedido não está aguardando pagamento.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Verifique os campos destacados e tente novamente.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Algo deu errado. Tente novamente em instantes.",
		"",
	)
)

// Package api implements the HTTP client core shared by every REST-backed
// repository: bearer-token attachment, per-endpoint timeouts, response
// envelope decoding and the single 401-triggered refresh-and-retry.
package api

import (
	"context"
	"net"

	"sabor/internal/errors"
)

// Error codes produced by the client itself, as opposed to codes reported by
// the server inside the response envelope.
const (
	CodeRequestTimeout   = "REQUEST_TIMEOUT"
	CodeConnectionFailed = "CONNECTION_FAILED"
	CodeSessionExpired   = "SESSION_EXPIRED"
	CodeInvalidResponse  = "INVALID_RESPONSE"
	CodeServerError      = "SERVER_ERROR"
)

// APIError is the normalized error shape every request failure collapses to:
// a business code, a user-presentable message and the HTTP status (zero when
// the request never reached the server).
type APIError struct {
	Code    string // Business error code, server-reported or client-assigned.
	Message string // User-friendly message.
	Details string // Server-reported detail, when present.
	Status  int    // HTTP status code; 0 for transport failures.
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// IsSessionExpired reports whether the session is gone and the user must log
// in again.
func (e *APIError) IsSessionExpired() bool {
	return e.Code == CodeSessionExpired
}

// IsNetwork reports whether the failure happened before the server answered.
func (e *APIError) IsNetwork() bool {
	return e.Code == CodeRequestTimeout || e.Code == CodeConnectionFailed
}

// normalizeTransportError maps a transport-level failure to a tagged APIError
// with a message derived from the failure type.
func normalizeTransportError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{
			Code:    CodeRequestTimeout,
			Message: "O servidor demorou para responder. Tente novamente.",
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APIError{
			Code:    CodeRequestTimeout,
			Message: "O servidor demorou para responder. Tente novamente.",
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &APIError{
			Code:    CodeConnectionFailed,
			Message: "Sem conexão com o servidor. Verifique sua internet.",
			Details: opErr.Error(),
		}
	}

	return &APIError{
		Code:    CodeConnectionFailed,
		Message: "Não foi possível se conectar ao servidor.",
		Details: err.Error(),
	}
}

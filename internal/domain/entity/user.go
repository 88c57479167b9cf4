package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated account. It carries the identity fields the
// checkout flow needs to derive the payer (name and CPF).
type User struct {
	ID            uuid.UUID // The unique identifier assigned by the server.
	Name          string    // Display name.
	Email         string    // Login identifier.
	CPF           string    // Brazilian taxpayer id, 11 digits without separators.
	Phone         string    // Contact phone, digits only.
	EmailVerified bool      // True after OTP verification completed.
	CreatedAt     time.Time // Timestamp of when the account was created.
}

// TokenPair is the bearer access/refresh token pair persisted in local
// device storage between sessions.
type TokenPair struct {
	AccessToken  string // Short-lived bearer token attached to API requests.
	RefreshToken string // Long-lived token exchanged for a new pair on 401.
}

// IsZero reports whether no session is stored.
func (p TokenPair) IsZero() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

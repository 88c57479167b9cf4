package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by the authenticated user.
// It is server-durable: the list is loaded on login and invalidated on logout.
type Address struct {
	ID           uuid.UUID   // The unique identifier assigned by the server.
	Type         AddressType // How the user labels this address (home, work, other).
	Street       string      // Street name and number.
	Complement   string      // Apartment, suite or other secondary info. Optional.
	Neighborhood string      // Neighborhood (bairro).
	City         string      // City name.
	State        string      // Two-letter state code (UF).
	ZipCode      string      // CEP, 8 digits without separator.
	Latitude     float64     // Geographic latitude, when the server geocoded the address.
	Longitude    float64     // Geographic longitude.
	IsDefault    bool        // Indicates this is the user's primary delivery address.
	CreatedAt    time.Time   // Timestamp of when this address was created.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// HasCoordinates reports whether the server attached geocoded coordinates.
func (a Address) HasCoordinates() bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// ShortLine renders a single-line summary for logs and list display.
func (a Address) ShortLine() string {
	parts := []string{a.Street}
	if a.Complement != "" {
		parts = append(parts, a.Complement)
	}
	parts = append(parts, a.Neighborhood, a.City+"/"+a.State)

	return strings.Join(parts, ", ")
}

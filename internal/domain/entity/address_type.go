// Package entity contains the core business objects of the project.
package entity

// AddressType classifies a delivery address by how the user labels it.
type AddressType string

const (
	// AddressTypeHome indicates the user's home address.
	AddressTypeHome AddressType = "home"
	// AddressTypeWork indicates the user's workplace address.
	AddressTypeWork AddressType = "work"
	// AddressTypeOther indicates any other address.
	AddressTypeOther AddressType = "other"
)

// String returns the string representation of the AddressType.
func (t AddressType) String() string {
	return string(t)
}

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

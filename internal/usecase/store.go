// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// StoreState is the lifecycle of an entity store (the client-side list of a
// server-durable resource).
type StoreState int

const (
	// StateNotLoaded means no list has been fetched; the user is logged out
	// or the store was reset.
	StateNotLoaded StoreState = iota
	// StateLoading means the initial fetch is in flight.
	StateLoading
	// StateLoaded means the list is in memory and is the single source of
	// truth for rendering until the next reset.
	StateLoaded
)

// String returns a readable name for logs.
func (s StoreState) String() string {
	switch s {
	case StateNotLoaded:
		return "not-loaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

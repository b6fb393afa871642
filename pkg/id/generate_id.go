package id

import "github.com/google/uuid"

// New returns a random version-4 UUID string. All public identifiers
// (customers aside, which are externally assigned) are minted through this
// seam so the generator can be swapped without touching callers.
func New() string {
	return uuid.NewString()
}

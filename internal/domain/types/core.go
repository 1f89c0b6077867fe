package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ProteinID identifies a stored protein.
type ProteinID string

// String returns the string form of the identifier.
func (id ProteinID) String() string { return string(id) }

// FragmentID identifies a stored fragment.
type FragmentID string

// String returns the string form of the identifier.
func (id FragmentID) String() string { return string(id) }

// MotifID identifies a stored motif occurrence.
type MotifID string

// String returns the string form of the identifier.
func (id MotifID) String() string { return string(id) }

// UserID identifies an API user.
type UserID string

// String returns the string form of the identifier.
func (id UserID) String() string { return string(id) }

// NewID returns a fresh canonical identifier.
func NewID() string { return uuid.NewString() }

// ParseID checks that s is a canonical lowercase UUID (8-4-4-4-12 hex).
// Braced, URN and upper-case forms are rejected even though uuid.Parse
// accepts them.
func ParseID(s string) (string, error) {
	if len(s) != 36 {
		return "", fmt.Errorf("invalid identifier %q", s)
	}
	u, err := uuid.Parse(s)
	if err != nil || u.String() != s {
		return "", fmt.Errorf("invalid identifier %q", s)
	}
	return s, nil
}

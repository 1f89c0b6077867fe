package domain

import (
	"errors"
	"fmt"

	types "protmotif/internal/domain/types"
)

// Kind classifies an Error. The set is closed; callers mapping errors to
// responses switch over all four.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the single error type crossing package boundaries.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf reports malformed input.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf reports a missing protein, fragment or user.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf reports a uniqueness violation.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// StorageErr wraps a persistence failure.
func StorageErr(msg string, err error) error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

// KindOf returns the Kind of the first Error in err's chain. Errors that
// are not domain errors are reported as storage failures so they surface as
// internal errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == k
}

// ParseProteinID validates s and returns it as a ProteinID.
func ParseProteinID(s string) (ProteinID, error) {
	id, err := types.ParseID(s)
	if err != nil {
		return "", Validationf("invalid proteinId format")
	}
	return ProteinID(id), nil
}

// ParseFragmentID validates s and returns it as a FragmentID.
func ParseFragmentID(s string) (FragmentID, error) {
	id, err := types.ParseID(s)
	if err != nil {
		return "", Validationf("invalid fragmentId format")
	}
	return FragmentID(id), nil
}

// ParseUserID validates s and returns it as a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := types.ParseID(s)
	if err != nil {
		return "", Validationf("invalid user id format")
	}
	return UserID(id), nil
}

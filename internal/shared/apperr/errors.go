// Package apperr defines the recoverable outcome errors shared across features.
// Handlers match these with errors.As / errors.Is and translate them into
// client-facing status codes; anything else is treated as an internal failure.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by login when the email is unknown or
	// the password does not match. The two cases are deliberately not
	// distinguishable, to prevent account enumeration.
	ErrInvalidCredentials = errors.New("Incorrect user name or password!")

	// ErrInvalidToken is returned by token validation when the signature,
	// payload, claims or expiry are not acceptable.
	ErrInvalidToken = errors.New("invalid token")

	// ErrCouldNotValidate is returned by identity resolution. It covers a bad
	// token, a missing email claim and a user that no longer exists; callers
	// cannot tell these apart.
	ErrCouldNotValidate = errors.New("Could not validate credentials")
)

// DuplicateError reports a uniqueness-constraint violation on create.
type DuplicateError struct {
	// Resource is the lowercase resource kind, e.g. "category".
	Resource string
	// Name is the conflicting natural key.
	Name string
	// Owner is the display name of the owning user, set only for owner-scoped
	// resources such as buckets.
	Owner string
}

func (e *DuplicateError) Error() string {
	msg := fmt.Sprintf("There is already a %s with the name : %s", e.Resource, e.Name)
	if e.Owner != "" {
		msg += fmt.Sprintf(" and for the user : %s", e.Owner)
	}
	return msg
}

// NotFoundError reports that no row exists with the requested id.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found with the id %d", e.Resource, e.ID)
}

// IsDuplicate reports whether err is a DuplicateError.
func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// ErrUserNotFound is returned by the user repository when no user matches
// the lookup. It never reaches clients directly; login and token resolution
// collapse it into their generic failures.
var ErrUserNotFound = errors.New("user not found")

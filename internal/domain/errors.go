package domain

import "errors"

// ErrProfileNotFound is returned by a ProfileStore when no document exists
// for the requested user.
var ErrProfileNotFound = errors.New("profile not found")

// RateLimitError signals the remote mentor rejected the call for quota
// reasons. The session treats it like any other remote failure; the message
// is kept only so the UI can show it.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return "rate limited"
	}
	return e.Message
}

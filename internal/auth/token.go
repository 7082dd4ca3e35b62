package auth

import "github.com/google/uuid"

// NewToken generates an opaque bearer token for a fresh session. The
// token carries no claims; it only means anything to the session
// registry that stored it.
func NewToken() string {
	return uuid.New().String()
}

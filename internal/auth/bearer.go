package auth

import "strings"

const bearerPrefix = "Bearer "

// StripBearer removes a literal "Bearer " prefix from an Authorization
// header value, if present. The remainder is treated as the token either
// way, matching what clients of this API have always sent.
func StripBearer(headerValue string) string {
	return strings.TrimPrefix(headerValue, bearerPrefix)
}

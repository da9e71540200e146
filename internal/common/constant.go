package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix prefixes the raw token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	// TokenSlot is the single key under which the credential is persisted.
	TokenSlot = "token"
)

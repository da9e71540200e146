// Package common defines shared constants and sentinel errors used across
// the Meet-A-Vet client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrValidation marks input rejected locally; the request never reached
	// the network.
	ErrValidation = errors.New("validation failed")

	// Credential lifecycle errors. Both are resolved locally: the stored
	// token is cleared and the request never reaches the network.
	ErrInvalidToken = errors.New("invalid authentication token")
	ErrTokenExpired = errors.New("authentication expired - please log in again")
)

// Package api contains the authenticated request client for the Meet-A-Vet
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     auth, profile, appointments, admin, and payment routes.
//  2. A concrete HTTP implementation (see HTTPClient) that re-reads the
//     stored credential before every request, validates its expiry locally,
//     clears it when invalid, attaches it as a bearer header, and maps
//     transport conditions to sentinel errors.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers match with
// errors.Is: common.ErrInvalidToken and common.ErrTokenExpired (resolved
// locally, the request never reaches the network), ErrUnavailable (no
// response received), and ErrServer (status >= 500, or a 4xx whose error
// payload is carried in the wrapped message).
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; every request also carries the
// client's bounded timeout.
package api

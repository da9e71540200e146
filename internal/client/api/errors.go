package api

import "errors"

var (
	// ErrUnavailable means no response was received: transport failure,
	// timeout, or unreachable host.
	ErrUnavailable = errors.New("server unavailable")

	// ErrServer means the server answered but the call failed: status >= 500,
	// or an explicit error payload on a 4xx. The wrapped message carries the
	// server-provided detail when there is one.
	ErrServer = errors.New("server error")
)

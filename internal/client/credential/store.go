package credential

import "context"

// Store persists the bearer credential in a single named slot.
//
// Contract:
//   - Get returns "" and no error when no credential is stored.
//   - Set overwrites any previous credential.
//   - Clear removes the credential; clearing an absent one is a no-op.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

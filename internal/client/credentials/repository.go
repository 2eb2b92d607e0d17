// Package credentials persists the bearer token between runs. The token
// occupies a single slot; absence means the client is anonymous.
package credentials

import "context"

// Repository is the durable credential slot.
type Repository interface {
	// Load returns the stored token, or "" when the slot is empty.
	Load(ctx context.Context) (string, error)
	// Store overwrites the slot with token.
	Store(ctx context.Context, token string) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

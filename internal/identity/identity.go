// Package identity integrates the external identity provider that owns
// user credentials. The application never stores passwords itself.
package identity

import "context"

// Identity is the provider's view of an account after a successful
// registration or authentication.
type Identity struct {
	UserID string
	Email  string
}

// Provider abstracts the managed identity provider.
type Provider interface {
	// Register creates the account with the provider and returns the
	// provider-assigned identity.
	Register(ctx context.Context, email string, password string, firstName string, lastName string) (Identity, error)
	// Authenticate verifies the credentials and returns the identity.
	Authenticate(ctx context.Context, email string, password string) (Identity, error)
}

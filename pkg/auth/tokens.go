package auth

import "context"

// TokenGenerator abstracts token creation (e.g., JWT) so the use case does
// not depend on a concrete signing scheme.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// Package auth supplies the authenticated identity consumed by every
// operation, plus the JWT and password mechanics behind it.
//
// Identity lives in the request context. RequireIdentity is the single point
// of truth for the unauthenticated-failure contract: every mutation that
// needs a user calls it first, before any write.
package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

// Identity is the authenticated caller. Ephemeral, supplied per request.
type Identity struct {
	ID         primitive.ObjectID
	IsInternal bool
}

type identityKey struct{}

// WithIdentity stores id in ctx. Called by the auth middleware and by the
// GraphQL handler; application code only reads.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx extracts the identity from ctx. ok is false for anonymous
// requests.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// RequireIdentity returns the caller's identity or ErrUnauthenticated.
func RequireIdentity(ctx context.Context) (Identity, error) {
	id, ok := IdentityFromCtx(ctx)
	if !ok || id.ID.IsZero() {
		return Identity{}, apperr.Unauthenticated()
	}
	return id, nil
}

package auth

import (
	"context"

	"persona-emails/domain"

	"github.com/samber/lo"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	originKey   contextKey = "origin"
)

// Origin tells trusted internal callers apart from end users.
type Origin string

const (
	OriginSystem Origin = "system"
	OriginUser   Origin = "user"
)

// CallContext is what the dispatcher knows about a call before it is authenticated.
type CallContext struct {
	Origin        Origin
	Authorization string
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the verified identity. System calls carry none.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

func WithOrigin(ctx context.Context, origin Origin) context.Context {
	return context.WithValue(ctx, originKey, origin)
}

func OriginFromContext(ctx context.Context) Origin {
	if origin, ok := ctx.Value(originKey).(Origin); ok {
		return origin
	}
	return OriginUser
}

// RoleAdmin grants access to operator endpoints such as the store dump.
const RoleAdmin = "admin"

func HasRole(identity domain.Identity, role string) bool {
	return lo.Contains(identity.Roles, role)
}

func IsSystem(ctx context.Context) bool {
	return OriginFromContext(ctx) == OriginSystem
}

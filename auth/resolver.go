package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"persona-emails/contract"
	"persona-emails/errors"
)

// Resolver authenticates a call before any operation runs.
//
// A missing credential is only logged: the verifier then rejects the empty token,
// so the call still fails with ErrUnauthenticated. Strict mode rejects it upfront
// without calling the verifier.
type Resolver struct {
	verifier contract.ITokenVerifier
	log      *slog.Logger
	strict   bool
}

func NewResolver(log *slog.Logger, verifier contract.ITokenVerifier, strict bool) Resolver {
	return Resolver{verifier: verifier, log: log, strict: strict}
}

// Resolve returns a context carrying the origin and, for user calls, the verified identity.
func (r Resolver) Resolve(ctx context.Context, call CallContext) (context.Context, error) {
	if call.Origin == OriginSystem {
		return WithOrigin(ctx, OriginSystem), nil
	}

	if call.Authorization == "" {
		r.log.Warn("User not logged in")
		if r.strict {
			return nil, fmt.Errorf("%w: authorization token is missing", errors.ErrUnauthenticated)
		}
	}

	identity, err := r.verifier.Verify(ctx, stripScheme(call.Authorization))
	if err != nil {
		r.log.Debug("Token verification failed", "error", err)
		if errors.Is(err, errors.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}

	ctx = WithOrigin(ctx, OriginUser)
	return WithIdentity(ctx, identity), nil
}

// stripScheme drops a leading "Bearer " or any other auth scheme.
func stripScheme(authorization string) string {
	authorization = strings.TrimSpace(authorization)
	if _, token, found := strings.Cut(authorization, " "); found {
		return strings.TrimSpace(token)
	}
	return authorization
}

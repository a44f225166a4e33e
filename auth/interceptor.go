package auth

import (
	"context"

	"persona-emails/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	OriginHeader        = "x-call-origin"
	AuthorizationHeader = "authorization"
)

// UnaryServerInterceptor resolves the caller identity from the incoming metadata
// and aborts the call when authentication fails.
func UnaryServerInterceptor(resolver Resolver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		call := CallContext{
			Origin:        Origin(first(md.Get(OriginHeader))),
			Authorization: first(md.Get(AuthorizationHeader)),
		}

		authCtx, err := resolver.Resolve(ctx, call)
		if err != nil {
			return nil, errors.MapToGRPCError(err)
		}
		return handler(authCtx, req)
	}
}

// SystemContext marks an outgoing call as issued by a trusted internal caller.
func SystemContext(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, OriginHeader, string(OriginSystem))
}

// BearerContext attaches an end-user token to an outgoing call.
func BearerContext(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		OriginHeader, string(OriginUser),
		AuthorizationHeader, "Bearer "+token)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

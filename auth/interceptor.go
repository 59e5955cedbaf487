package auth

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const IdentityKey contextKey = "identity"

// NewAuthInterceptor handles JWT validation for incoming gRPC calls. Callers
// must carry requiredRole, unless it is empty.
func NewAuthInterceptor(authenticator contract.Authenticator, requiredRole string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		// 1. Extract metadata (headers) from the incoming gRPC context
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is missing")
		}

		// 2. Retrieve the Authorization header
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
		}

		// 3. Validate the JWT, expecting the standard "Bearer <token>" format
		identity, err := authenticator.Authenticate(ctx, strings.TrimPrefix(values[0], "Bearer "))
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}
		if requiredRole != "" && !identity.HasRole(requiredRole) {
			return nil, status.Errorf(codes.PermissionDenied, "role %q is required", requiredRole)
		}

		// 4. Inject identity into context for downstream handlers
		return handler(context.WithValue(ctx, IdentityKey, identity), req)
	}
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(domain.Identity)
	return identity, ok
}

package middleware

import (
	"context"
)

// Context key type to avoid collisions
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"

	// IdentityKey is the context key for the resolved identity
	IdentityKey contextKey = "identity"
)

// IdentitySource records which signal produced the identity
type IdentitySource string

const (
	// SourceBearer means the identity came from a verified bearer token
	SourceBearer IdentitySource = "bearer"

	// SourceHeader means the identity came from the trusted x-user-id header
	SourceHeader IdentitySource = "header"

	// SourceFallback means no signal was usable and the fixed dev identity was attached
	SourceFallback IdentitySource = "fallback"
)

// Identity is the per-request identity attached by the resolver middleware.
// It scopes downstream data access; it carries no authorization meaning.
type Identity struct {
	ID     string         `json:"id"`
	Source IdentitySource `json:"source"`
}

// GetRequestIDFromContext retrieves the request ID from context
func GetRequestIDFromContext(ctx context.Context) string {
	if val := ctx.Value(RequestIDKey); val != nil {
		if requestID, ok := val.(string); ok {
			return requestID
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetIdentityFromContext retrieves the resolved identity from context
func GetIdentityFromContext(ctx context.Context) *Identity {
	if val := ctx.Value(IdentityKey); val != nil {
		if identity, ok := val.(*Identity); ok {
			return identity
		}
	}
	return nil
}

// WithIdentity adds a resolved identity to the context
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

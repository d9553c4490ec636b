package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityContext(t *testing.T) {
	t.Run("round-trips an identity", func(t *testing.T) {
		identity := &Identity{ID: "u1", Source: SourceBearer}
		ctx := WithIdentity(context.Background(), identity)

		got := GetIdentityFromContext(ctx)
		assert.Equal(t, identity, got)
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		assert.Nil(t, GetIdentityFromContext(context.Background()))
	})

	t.Run("returns nil for mismatched value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), IdentityKey, "not-an-identity")
		assert.Nil(t, GetIdentityFromContext(ctx))
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("round-trips a request ID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-123")
		assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
	})

	t.Run("returns empty string when absent", func(t *testing.T) {
		assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
	})
}

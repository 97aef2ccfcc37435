package api

import (
	"context"
	"time"
)

// QueryTimeout is the default timeout for store queries
const QueryTimeout = 10 * time.Second

type contextKey int

const sessionKey contextKey = iota

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

// WithSession stores the authenticated session claims on ctx
func WithSession(ctx context.Context, c *SessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey, c)
}

// SessionFrom returns the session claims stored by the auth middleware, if any
func SessionFrom(ctx context.Context) (*SessionClaims, bool) {
	c, ok := ctx.Value(sessionKey).(*SessionClaims)
	return c, ok
}

package session

import "context"

// Session is the explicit per-request identity established by the auth
// middleware. Handlers read it from the request context instead of any
// shared mutable state.
type Session struct {
	Username string // Logged-in username
	IsAdmin  bool   // Administrator flag
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var sessionKey = contextKey{}

// NewContext returns a context carrying the given session.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext retrieves the session from the context.
// ok is false when no session has been established.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}

package usage

import "context"

type trackerKey struct{}
type domainKey struct{}
type sessionKey struct{}

// NewContext returns a new context carrying the tracker.
func NewContext(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, t)
}

// FromContext retrieves the tracker from the context, or nil.
func FromContext(ctx context.Context) *Tracker {
	t, _ := ctx.Value(trackerKey{}).(*Tracker)
	return t
}

// WithAttribution adds domain and session metadata to the context so Track
// calls deeper in the stack are attributed without threading arguments.
func WithAttribution(ctx context.Context, domain, sessionID string) context.Context {
	ctx = context.WithValue(ctx, domainKey{}, domain)
	ctx = context.WithValue(ctx, sessionKey{}, sessionID)
	return ctx
}

// DomainFromContext returns the attributed domain, or "".
func DomainFromContext(ctx context.Context) string {
	d, _ := ctx.Value(domainKey{}).(string)
	return d
}

// SessionFromContext returns the attributed session ID, or "".
func SessionFromContext(ctx context.Context) string {
	s, _ := ctx.Value(sessionKey{}).(string)
	return s
}

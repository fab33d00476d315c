// BYH Music Store | 2026
// session.go

package webui

import (
	"context"
)

type sessionKey struct{}

// Session is the admin panel's login state, carried explicitly through the
// request context rather than read from ambient storage.
type Session struct {
	Token        string
	RefreshToken string
	UserName     string
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

func SessionToken(ctx context.Context) string {
	s, _ := SessionFromContext(ctx)
	return s.Token
}

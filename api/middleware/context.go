package middleware

import "context"

type contextKey string

const (
	ctxUserID      contextKey = "user_id"
	ctxIsAdmin     contextKey = "is_admin"
	ctxCartSession contextKey = "cart_session"
)

func UserIDFromContext(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxUserID).(int); ok {
		return v
	}
	return 0
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsAdmin).(bool); ok {
		return v
	}
	return false
}

func CartSessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartSession).(string); ok {
		return v
	}
	return ""
}

func contextWithAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, ctxIsAdmin, isAdmin)
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID int) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithCartSession injects the visitor cart session id into the context.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartSession, sessionID)
}

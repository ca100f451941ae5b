package httpx

import "context"

type ctxKey string

const (
	// CtxKeyAdminID carries the authenticated administrator's ID, set by the
	// session middleware.
	CtxKeyAdminID ctxKey = "admin_id"
)

// AdminIDFromContext returns the authenticated administrator's ID, if any.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyAdminID).(string)
	return id, ok && id != ""
}

// ContextWithAdminID injects the authenticated administrator's ID.
func ContextWithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, CtxKeyAdminID, adminID)
}

// internal/middleware/context.go
package middleware

import (
	"context"
)

// ContextKey types request-scoped metadata keys.
type ContextKey string

const (
	ContextKeyTenantID  ContextKey = "tenant_id"
	ContextKeyUserID    ContextKey = "user_id"
	ContextKeyUserEmail ContextKey = "user_email"
)

// WithScope returns a context carrying the tenant/user scope a request
// runs under. The auth interceptor is the normal writer; tests use it
// directly.
func WithScope(ctx context.Context, tenantID, userID, email string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyTenantID, tenantID)
	ctx = context.WithValue(ctx, ContextKeyUserID, userID)
	if email != "" {
		ctx = context.WithValue(ctx, ContextKeyUserEmail, email)
	}
	return ctx
}

// TenantIDFromContext extracts the tenant the request is scoped to.
func TenantIDFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(ContextKeyTenantID).(string)
	return tenantID, ok && tenantID != ""
}

// UserIDFromContext extracts the authenticated user ID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	return userID, ok && userID != ""
}

// UserEmailFromContext extracts the authenticated user's email, when
// the token carried one.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyUserEmail).(string)
	return email, ok && email != ""
}

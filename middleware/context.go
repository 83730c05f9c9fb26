package middleware

import "context"

// Context key type to avoid collisions
type contextKey string

// authUserKey is the context key for the authenticated caller
const authUserKey contextKey = "auth_user"

// AuthUser is the caller identity resolved from a bearer token. It lives
// for exactly one request: the guard creates it, handlers read it, nothing
// persists it.
type AuthUser struct {
	ID    string
	Email string
}

// WithAuthUser adds the authenticated caller to the context
func WithAuthUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// AuthUserFromContext retrieves the authenticated caller from context.
// Returns nil when the guard has not run.
func AuthUserFromContext(ctx context.Context) *AuthUser {
	if val := ctx.Value(authUserKey); val != nil {
		if user, ok := val.(*AuthUser); ok {
			return user
		}
	}
	return nil
}

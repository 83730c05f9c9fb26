package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lamaranku/lamaranku-api/utils"
	"go.uber.org/zap"
)

// User-facing guard messages. The text is part of the API contract.
const (
	MsgAuthHeaderMissing = "Header Authorization tidak ditemukan atau format salah"
	MsgSessionInvalid    = "Sesi tidak valid atau telah berakhir"
)

// bearerPrefix is the only accepted Authorization scheme, matched literally.
const bearerPrefix = "Bearer "

// IdentityResolver resolves a bearer token to the user it belongs to.
type IdentityResolver interface {
	// ResolveUser validates the token against the identity service and
	// returns the associated user, or an error for unknown/expired tokens.
	ResolveUser(ctx context.Context, token string) (*AuthUser, error)
}

// AuthGuard authenticates every request to the protected route group
type AuthGuard struct {
	resolver IdentityResolver
	logger   *zap.Logger
}

// NewAuthGuard creates a new AuthGuard
func NewAuthGuard(resolver IdentityResolver, logger *zap.Logger) *AuthGuard {
	return &AuthGuard{
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a well-formed, live bearer token and
// attaches the resolved caller to the request context. The header format
// check happens before any call to the identity service.
func (g *AuthGuard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := extractBearerToken(r)
		if !ok {
			g.logger.Warn("missing or malformed authorization header",
				zap.String("path", r.URL.Path))
			_ = utils.WriteUnauthorized(w, MsgAuthHeaderMissing)
			return
		}

		user, err := g.resolver.ResolveUser(ctx, token)
		if err != nil || user == nil {
			g.logger.Warn("token resolution failed",
				zap.String("path", r.URL.Path),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, MsgSessionInvalid)
			return
		}

		ctx = WithAuthUser(ctx, user)

		g.logger.Debug("authentication successful",
			zap.String("user_id", user.ID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken returns the raw token from the Authorization header.
// The scheme must be the literal "Bearer " prefix; no cookie fallback, no
// case folding.
func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(authHeader, bearerPrefix), true
}

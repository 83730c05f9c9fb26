package supabase

import (
	"context"
	"errors"
	"fmt"

	supa "github.com/nedpals/supabase-go"
	"go.uber.org/zap"

	"github.com/lamaranku/lamaranku-api/config"
	"github.com/lamaranku/lamaranku-api/middleware"
)

// NewClient creates the Supabase client shared by the repository and the
// identity resolver. CreateClient does not dial; an unconfigured URL/key
// only fails once a call is made.
func NewClient(cfg config.SupabaseConfig) *supa.Client {
	return supa.CreateClient(cfg.URL, cfg.ServiceRoleKey)
}

// IdentityResolver resolves bearer tokens against the Supabase auth
// endpoint. It implements middleware.IdentityResolver.
type IdentityResolver struct {
	client *supa.Client
	logger *zap.Logger
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(client *supa.Client, logger *zap.Logger) *IdentityResolver {
	return &IdentityResolver{
		client: client,
		logger: logger,
	}
}

// ResolveUser asks Supabase which user the token belongs to. One call per
// request, no caching, no retry.
func (r *IdentityResolver) ResolveUser(ctx context.Context, token string) (*middleware.AuthUser, error) {
	user, err := r.client.Auth.User(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user from token: %w", err)
	}
	if user == nil || user.ID == "" {
		return nil, errors.New("no user associated with token")
	}

	r.logger.Debug("resolved token to user", zap.String("user_id", user.ID))

	return &middleware.AuthUser{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}

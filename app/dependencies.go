package app

import (
	"context"

	supa "github.com/nedpals/supabase-go"
	"go.uber.org/zap"

	"github.com/lamaranku/lamaranku-api/config"
	"github.com/lamaranku/lamaranku-api/middleware"
	"github.com/lamaranku/lamaranku-api/repositories"
	supabaserepo "github.com/lamaranku/lamaranku-api/repositories/supabase"
)

// Dependencies holds all application dependencies. This is the central
// wiring point for dependency injection: clients are constructed once here
// and handed to the router and guard, so tests can substitute doubles
// through the Jobs and guard interfaces.
type Dependencies struct {
	// Infrastructure
	Config   *config.Config
	Logger   *zap.Logger
	Supabase *supa.Client

	// Repositories
	Jobs repositories.JobRepository

	// Auth
	AuthGuard *middleware.AuthGuard
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	// One Supabase project backs both the job table and token
	// verification. When unconfigured the process still serves: auth
	// calls fail, so protected routes answer 401.
	if !cfg.Supabase.IsConfigured() {
		logger.Warn("supabase not configured, every identity and store call will fail",
			zap.Bool("url_set", cfg.Supabase.URL != ""),
			zap.Bool("key_set", cfg.Supabase.ServiceRoleKey != ""))
	}
	deps.Supabase = supabaserepo.NewClient(cfg.Supabase)

	deps.Jobs = supabaserepo.NewJobRepository(deps.Supabase, logger)

	resolver := supabaserepo.NewIdentityResolver(deps.Supabase, logger)
	deps.AuthGuard = middleware.NewAuthGuard(resolver, logger)

	logger.Info("all dependencies initialized")
	return deps, nil
}

// Close gracefully shuts down all dependencies. The Supabase client is
// plain HTTP and holds nothing to release.
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/tannerbroberts/planner-api/config"
	"github.com/tannerbroberts/planner-api/middleware"
	"github.com/tannerbroberts/planner-api/repositories"
	"github.com/tannerbroberts/planner-api/repositories/postgres"
	"github.com/tannerbroberts/planner-api/token"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repositories
	Items repositories.ItemRepository

	// Identity resolution
	IdentityResolver *middleware.IdentityResolver
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initIdentity(cfg)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the PostgreSQL connection, schema, and repositories
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewDB(cfg.Database, d.Logger)
	if err != nil {
		return err
	}
	d.DB = db

	if err := db.InitSchema(ctx); err != nil {
		db.Close()
		return err
	}

	d.Items = postgres.NewItemRepository(db, d.Logger)
	return nil
}

// initIdentity initializes the token verifier and identity resolver
func (d *Dependencies) initIdentity(cfg *config.Config) {
	verifier := token.NewVerifier(token.Config{
		Secret: cfg.Auth.TokenSecret,
		Issuer: cfg.Auth.Issuer,
	})

	d.IdentityResolver = middleware.NewIdentityResolver(verifier, cfg.Auth.DevUserID, d.Logger)
}

// Close releases all resources held by the dependencies
func (d *Dependencies) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

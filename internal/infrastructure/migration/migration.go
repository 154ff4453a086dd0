package migration

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists the schema changes in the order they are applied. Every
// statement is idempotent so the list can run on each startup.
var Migrations = []Migration{
	{
		Name: "create_portfolios",
		SQL: `
		CREATE TABLE IF NOT EXISTS portfolios (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			template TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			completeness INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
	{
		Name: "add_source_columns_to_portfolios",
		SQL: `
		ALTER TABLE portfolios
		ADD COLUMN IF NOT EXISTS portfolio_type TEXT NOT NULL DEFAULT 'developer',
		ADD COLUMN IF NOT EXISTS source TEXT NOT NULL DEFAULT 'editor';`,
	},
	{
		Name: "add_published_at_to_portfolios",
		SQL: `
		ALTER TABLE portfolios
		ADD COLUMN IF NOT EXISTS published_at TIMESTAMPTZ;`,
	},
	{
		Name: "index_portfolios_user",
		SQL:  `CREATE INDEX IF NOT EXISTS portfolios_user_updated_idx ON portfolios (user_id, updated_at DESC);`,
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	log.Info("starting database migrations", zap.Int("count", len(Migrations)))

	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			log.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.Info("migration completed", zap.String("name", m.Name))
	}

	log.Info("all migrations completed successfully")
	return nil
}

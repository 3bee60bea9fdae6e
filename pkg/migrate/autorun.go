package migrate

import (
	"context"
	"fmt"

	"github.com/pchen-dev/storefront-backend/pkg/config"
	"github.com/pchen-dev/storefront-backend/pkg/db"
	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	"github.com/pchen-dev/storefront-backend/pkg/logger"
)

// MaybeRunDev prepares the schema automatically for local setups. The sqlite
// driver always auto-migrates through GORM (goose SQL targets Postgres);
// Postgres auto-runs goose only in dev with the feature flag set.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg.DB.IsSQLite() {
		logg.Info(logg.WithField(ctx, "driver", config.DriverSQLite), "auto-migrating sqlite schema")
		if err := client.DB().WithContext(ctx).AutoMigrate(
			&models.User{},
			&models.Product{},
			&models.CartItem{},
		); err != nil {
			return fmt.Errorf("sqlite auto-migrate: %w", err)
		}
		return nil
	}

	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}

package postgres

import (
	"context"
	"log/slog"

	"ecobazaar/config"
	"ecobazaar/internal/domain/lifecycle"
	"ecobazaar/internal/errors"
	"ecobazaar/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica pools through go-lib and ties them to the
// Fx lifecycle: the pool is pinged and monitored on start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager; single statements run bare.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB.Stats)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			go monitor.run(monitorCtx, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates the marketplace tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.NotificationModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"

	"ecobazaar/config"
	"ecobazaar/internal/delivery"
	"ecobazaar/internal/delivery/api"
	"ecobazaar/internal/delivery/api/middleware"
	"ecobazaar/internal/delivery/api/router/handler"
	"ecobazaar/internal/domain/lifecycle"
	"ecobazaar/internal/infra/auth"
	logs "ecobazaar/internal/infra/log"
	"ecobazaar/internal/infra/notification"
	"ecobazaar/internal/infra/persistence/postgres"
	"ecobazaar/internal/infra/pubsub"
	"ecobazaar/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrateSchema,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewOrderRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			notification.NewAccountNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCarbonEngine,
			impl.NewProductService,
			impl.NewCatalogRollup,
			impl.NewOrderRollup,
			impl.NewUserRollup,
			impl.NewActivityFeedBuilder,
			impl.NewAdminDashboard,
			impl.NewModerationService,
			impl.NewCategoryService,
			impl.NewNotificationService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProductHandler,
			handler.NewSellerHandler,
			handler.NewCategoryHandler,
			handler.NewAdminHandler,
			handler.NewModerationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrateSchema runs after the database hook has verified connectivity.
func migrateSchema(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Migrate(ctx, db); err != nil {
				return errors.Wrap(err, "failed to migrate database")
			}
			logger.Info("Database schema is up to date")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// Command seed loads the starter categories, the configured admin and seller
// accounts and a demo catalog into an empty database.
package main

import (
	"context"
	"flag"
	"log/slog"

	"ecobazaar/config"
	"ecobazaar/internal/domain/carbon"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/domain/service"
	"ecobazaar/internal/infra/auth"
	logs "ecobazaar/internal/infra/log"
	"ecobazaar/internal/infra/persistence/postgres"
	"ecobazaar/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config       *config.Config
	Logger       *slog.Logger
	DB           *gorm.DB
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Engine       *carbon.Engine
}

func main() {
	printToken := flag.Bool("token", false, "Log an access token for the seeded admin account")
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewCarbonEngine,
		),
		fx.Invoke(func(params seedParams) {
			params.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					s := newSeeder(params)
					if err := s.run(ctx, *printToken); err != nil {
						return err
					}

					return params.Shutdown()
				},
			})
		}),
	).Run()
}

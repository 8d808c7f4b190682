package main

import (
	"context"
	"log/slog"
	"strings"

	"ecobazaar/config"
	"ecobazaar/internal/domain/carbon"
	"ecobazaar/internal/domain/constants"
	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/domain/service"
	"ecobazaar/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const seedStockQuantity = 50

type seedCategory struct {
	name        string
	description string
}

var starterCategories = []seedCategory{
	{"Electronics", "Electronic devices and gadgets"},
	{"Fashion", "Clothing and fashion items"},
	{"Home & Garden", "Home improvement and gardening products"},
	{"Office", "Office supplies and stationery"},
	{"Personal Care", "Natural and organic personal care products"},
	{"Food & Beverages", "Organic and sustainable food products"},
}

type seedProduct struct {
	name        string
	description string
	price       string
	category    string
	weightKg    string
	distanceKm  string
	ecoFriendly bool
	imageURL    string
}

var demoProducts = []seedProduct{
	{
		name:        "Jute Cloth Bag",
		description: "Suitable for daily use like groceries.",
		price:       "59", category: "Home & Garden", weightKg: "0.5", distanceKm: "30", ecoFriendly: true,
		imageURL: "https://img.freepik.com/premium-photo/highresolution-jute-bag-image-4k-detailed-texture-ecofriendly-natural-fiber-material_1192771-5050.jpg",
	},
	{
		name:        "Cotton T-Shirt",
		description: "Comfortable cotton t-shirt made from 100% certified organic cotton.",
		price:       "199", category: "Fashion", weightKg: "0.2", distanceKm: "50", ecoFriendly: true,
		imageURL: "https://cdn.yourdesignstore.in/uploads/yds/productImages/full/17155845641871Main-Product-Image-1-1.png",
	},
	{
		name:        "Solar Power Bank",
		description: "Portable solar charger with 10,000mAh capacity.",
		price:       "1249", category: "Electronics", weightKg: "0.3", distanceKm: "100", ecoFriendly: true,
		imageURL: "https://5.imimg.com/data5/SELLER/Default/2024/6/427061773/QA/JS/JS/128786604/20-500x500.jpg",
	},
	{
		name:        "Reused Paper Notebook",
		description: "200 pages notebook made from 100% recycled papers.",
		price:       "119", category: "Office", weightKg: "0.1", distanceKm: "25", ecoFriendly: true,
		imageURL: "https://m.media-amazon.com/images/I/817mFy4yYkL.jpg",
	},
	{
		name:        "Re-chargeable battery cell",
		description: "USB re-chargeable cells. Single unit.",
		price:       "45", category: "Home & Garden", weightKg: "0.4", distanceKm: "40", ecoFriendly: true,
		imageURL: "https://5.imimg.com/data5/SELLER/Default/2025/2/492338752/EG/YX/GJ/11709116/18650-li-ion-2600mah-3c-rechargeable-battery-cell-500x500.jpg",
	},
	{
		name:        "Glass Vase",
		description: "Beautiful vase made from reuse glass powder and china-clay.",
		price:       "499", category: "Home & Garden", weightKg: "0.6", distanceKm: "35", ecoFriendly: true,
		imageURL: "https://www.shutterstock.com/image-photo/handcrafted-clay-vase-featuring-detailed-600nw-2623874541.jpg",
	},
}

type seeder struct {
	cfg          *config.SeedConfig
	production   bool
	logger       *slog.Logger
	db           *gorm.DB
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	engine       *carbon.Engine
}

func newSeeder(params seedParams) *seeder {
	return &seeder{
		cfg:          params.Config.Seed,
		production:   params.Config.Env.Env == constants.EnvProduction,
		logger:       params.Logger,
		db:           params.DB,
		userRepo:     params.UserRepo,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		engine:       params.Engine,
	}
}

func (s *seeder) run(ctx context.Context, printToken bool) error {
	if !s.cfg.Enabled {
		s.logger.Info("Seeding is disabled, nothing to do")

		return nil
	}

	if err := postgres.Migrate(ctx, s.db); err != nil {
		return err
	}

	categories, err := s.seedCategories(ctx)
	if err != nil {
		return err
	}

	admin, err := s.ensureAccount(ctx, s.cfg.Admin, entity.RoleAdmin)
	if err != nil {
		return err
	}

	seller, err := s.ensureAccount(ctx, s.cfg.Seller, entity.RoleSeller)
	if err != nil {
		return err
	}

	if seller != nil {
		if err := s.seedProducts(ctx, seller, categories); err != nil {
			return err
		}
	} else {
		s.logger.Warn("No seller account configured, skipping demo products")
	}

	if printToken && s.production {
		s.logger.Warn("Refusing to log an admin token in production")
	} else if printToken && admin != nil {
		token, expiresAt, err := s.tokenService.GenerateAccessToken(admin.ID, []string{entity.RoleAdmin.String()})
		if err != nil {
			return errors.Wrap(err, "failed to issue admin token")
		}
		s.logger.Info("Development admin token",
			slog.String("token", token),
			slog.Time("expires_at", expiresAt),
		)
	}

	return nil
}

// seedCategories creates the starter categories when the table is empty and
// returns every category keyed by name.
func (s *seeder) seedCategories(ctx context.Context) (map[string]*entity.Category, error) {
	existing, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	if len(existing) == 0 {
		for _, c := range starterCategories {
			category := &entity.Category{
				ID:          uuid.New(),
				Name:        c.name,
				Description: c.description,
				IsActive:    true,
			}
			if err := s.categoryRepo.Create(ctx, category); err != nil {
				return nil, errors.Wrapf(err, "failed to create category %q", c.name)
			}
			existing = append(existing, category)
		}
		s.logger.Info("Initialized categories", slog.Int("count", len(starterCategories)))
	}

	byName := make(map[string]*entity.Category, len(existing))
	for _, category := range existing {
		byName[category.Name] = category
	}

	return byName, nil
}

// ensureAccount returns the account with the configured email, creating it
// active when missing. A blank email means the account is not wanted.
func (s *seeder) ensureAccount(ctx context.Context, account config.SeedAccount, role entity.Role) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if email == "" {
		return nil, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrapf(err, "failed to look up %s account", role)
	}

	hash, err := s.hasher.Hash(account.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash seed password")
	}

	user = &entity.User{
		ID:           uuid.New(),
		Username:     account.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s account", role)
	}
	s.logger.Info("Created seed account", slog.String("role", role.String()), slog.String("email", email))

	return user, nil
}

func (s *seeder) seedProducts(ctx context.Context, seller *entity.User, categories map[string]*entity.Category) error {
	count, err := s.productRepo.Count(ctx, repository.ProductFilter{})
	if err != nil {
		return errors.Wrap(err, "failed to count products")
	}
	if count > 0 {
		return nil
	}

	for _, p := range demoProducts {
		product, err := s.buildProduct(p, seller, categories)
		if err != nil {
			return err
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return errors.Wrapf(err, "failed to create product %q", p.name)
		}
	}
	s.logger.Info("Initialized products", slog.Int("count", len(demoProducts)))

	return nil
}

func (s *seeder) buildProduct(p seedProduct, seller *entity.User, categories map[string]*entity.Category) (*entity.Product, error) {
	footprint, err := s.engine.Score(decimal.RequireFromString(p.weightKg), decimal.RequireFromString(p.distanceKm), p.ecoFriendly)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to score product %q", p.name)
	}

	product := &entity.Product{
		ID:            uuid.New(),
		Name:          p.name,
		Description:   p.description,
		Price:         decimal.RequireFromString(p.price),
		StockQuantity: seedStockQuantity,
		ImageURL:      p.imageURL,
		SellerID:      seller.ID,
		IsActive:      true,
		Footprint:     footprint,
	}
	if category, ok := categories[p.category]; ok {
		product.CategoryID = &category.ID
	}

	return product, nil
}

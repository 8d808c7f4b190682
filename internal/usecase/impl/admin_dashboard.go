package impl

import (
	"context"
	"log/slog"
	"time"

	"ecobazaar/config"
	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultQueryTimeout = 5 * time.Second

type adminDashboard struct {
	users        usecase.UserRollup
	catalog      usecase.CatalogRollup
	orders       usecase.OrderRollup
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	queryTimeout time.Duration
	logger       *slog.Logger
}

// AdminDashboardParams holds dependencies for the dashboard assembler, injected by Fx.
type AdminDashboardParams struct {
	fx.In

	Users       usecase.UserRollup
	Catalog     usecase.CatalogRollup
	Orders      usecase.OrderRollup
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminDashboard creates the dashboard assembler.
func NewAdminDashboard(params AdminDashboardParams) usecase.AdminDashboardUsecase {
	timeout := defaultQueryTimeout
	if params.Config != nil && params.Config.Dashboard != nil && params.Config.Dashboard.QueryTimeout > 0 {
		timeout = params.Config.Dashboard.QueryTimeout
	}

	return &adminDashboard{
		users:        params.Users,
		catalog:      params.Catalog,
		orders:       params.Orders,
		userRepo:     params.UserRepo,
		productRepo:  params.ProductRepo,
		orderRepo:    params.OrderRepo,
		queryTimeout: timeout,
		logger:       params.Logger,
	}
}

func (d *adminDashboard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Overview runs the eight counter reads concurrently, then derives the pending
// seller applications from the seller counts. The counters are read
// independently, so concurrent writes can make them disagree; a negative
// pending count is clamped to zero and logged.
func (d *adminDashboard) Overview(ctx context.Context) (*usecase.AdminOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, d.queryTimeout)
	defer cancel()

	overview := &usecase.AdminOverview{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		overview.TotalUsers, err = d.users.CountUsers(gctx)

		return err
	})
	g.Go(func() (err error) {
		overview.TotalSellers, err = d.users.CountByRole(gctx, entity.RoleSeller)

		return err
	})
	g.Go(func() (err error) {
		overview.TotalCustomers, err = d.users.CountByRole(gctx, entity.RoleCustomer)

		return err
	})
	g.Go(func() (err error) {
		overview.ActiveSellers, err = d.users.CountActiveByRole(gctx, entity.RoleSeller)

		return err
	})
	g.Go(func() (err error) {
		overview.TotalProducts, err = d.catalog.CountProducts(gctx)

		return err
	})
	g.Go(func() (err error) {
		overview.TotalCarbonImpact, err = d.catalog.TotalCarbonImpact(gctx)

		return err
	})
	g.Go(func() (err error) {
		overview.TotalOrders, err = d.orders.CountOrders(gctx)

		return err
	})
	g.Go(func() (err error) {
		overview.TotalRevenue, err = d.orders.TotalRevenue(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		d.log(ctx).Error("Failed to assemble admin overview", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to assemble admin overview")
	}

	overview.PendingSellerApplications = overview.TotalSellers - overview.ActiveSellers
	if overview.PendingSellerApplications < 0 {
		d.log(ctx).Warn("Seller counters out of step, clamping pending applications",
			slog.Int64("totalSellers", overview.TotalSellers),
			slog.Int64("activeSellers", overview.ActiveSellers),
		)
		overview.PendingSellerApplications = 0
	}

	return overview, nil
}

// SellersWithStats merges grouped catalog and sales aggregates into the seller list.
func (d *adminDashboard) SellersWithStats(ctx context.Context) ([]usecase.SellerStats, error) {
	role := entity.RoleSeller

	var (
		sellers []*entity.User
		catalog []repository.SellerCatalogTotals
		sales   []repository.SellerSalesTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sellers, err = d.userRepo.List(gctx, repository.UserFilter{Role: &role})

		return errors.Wrap(err, "failed to list sellers")
	})
	g.Go(func() (err error) {
		catalog, err = d.productRepo.TotalsBySeller(gctx)

		return errors.Wrap(err, "failed to aggregate catalog by seller")
	})
	g.Go(func() (err error) {
		sales, err = d.orderRepo.SalesBySeller(gctx)

		return errors.Wrap(err, "failed to aggregate sales by seller")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalogBySeller := make(map[uuid.UUID]repository.SellerCatalogTotals, len(catalog))
	for _, row := range catalog {
		catalogBySeller[row.SellerID] = row
	}
	salesBySeller := make(map[uuid.UUID]repository.SalesTotals, len(sales))
	for _, row := range sales {
		salesBySeller[row.SellerID] = row.SalesTotals
	}

	result := make([]usecase.SellerStats, 0, len(sellers))
	for _, seller := range sellers {
		result = append(result, newSellerStats(seller, catalogBySeller[seller.ID], salesBySeller[seller.ID]))
	}

	return result, nil
}

// UsersWithStats lists accounts with their order count and spend.
func (d *adminDashboard) UsersWithStats(ctx context.Context, role *entity.Role) ([]usecase.UserStats, error) {
	var (
		users []*entity.User
		spend []repository.CustomerSpendTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = d.userRepo.List(gctx, repository.UserFilter{Role: role})

		return errors.Wrap(err, "failed to list users")
	})
	g.Go(func() (err error) {
		spend, err = d.orderRepo.SpendByCustomer(gctx)

		return errors.Wrap(err, "failed to aggregate spend by customer")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spendByCustomer := make(map[uuid.UUID]repository.CustomerSpendTotals, len(spend))
	for _, row := range spend {
		spendByCustomer[row.CustomerID] = row
	}

	result := make([]usecase.UserStats, 0, len(users))
	for _, user := range users {
		row := spendByCustomer[user.ID]
		result = append(result, usecase.UserStats{
			ID:         user.ID,
			Username:   user.Username,
			Email:      user.Email,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Role:       user.Role,
			EcoPoints:  user.EcoPoints,
			IsActive:   user.IsActive,
			CreatedAt:  user.CreatedAt,
			UpdatedAt:  user.UpdatedAt,
			OrderCount: row.OrderCount,
			TotalSpent: row.TotalSpent,
		})
	}

	return result, nil
}

// SellerStats returns the figures of one seller.
func (d *adminDashboard) SellerStats(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerStats, error) {
	seller, err := findSeller(ctx, d.userRepo, sellerID)
	if err != nil {
		return nil, err
	}

	var (
		catalog []repository.SellerCatalogTotals
		sales   []repository.SellerSalesTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		catalog, err = d.productRepo.TotalsBySeller(gctx, sellerID)

		return errors.Wrap(err, "failed to aggregate seller catalog")
	})
	g.Go(func() (err error) {
		sales, err = d.orderRepo.SalesBySeller(gctx, sellerID)

		return errors.Wrap(err, "failed to aggregate seller sales")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		catalogRow repository.SellerCatalogTotals
		salesRow   repository.SalesTotals
	)
	if len(catalog) > 0 {
		catalogRow = catalog[0]
	}
	if len(sales) > 0 {
		salesRow = sales[0].SalesTotals
	}

	stats := newSellerStats(seller, catalogRow, salesRow)

	return &stats, nil
}

func newSellerStats(seller *entity.User, catalog repository.SellerCatalogTotals, sales repository.SalesTotals) usecase.SellerStats {
	return usecase.SellerStats{
		ID:                 seller.ID,
		Username:           seller.Username,
		Email:              seller.Email,
		FirstName:          seller.FirstName,
		LastName:           seller.LastName,
		IsActive:           seller.IsActive,
		CreatedAt:          seller.CreatedAt,
		ProductCount:       catalog.ProductCount,
		ActiveProductCount: catalog.ActiveProductCount,
		CarbonImpact:       catalog.CarbonImpact,
		CarbonReduction:    catalog.CarbonReduction,
		Revenue:            sales.Revenue,
		OrderCount:         sales.OrderCount,
	}
}

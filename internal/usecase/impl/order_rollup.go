package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type orderRollup struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewOrderRollup creates the order aggregate reader.
func NewOrderRollup(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.OrderRollup {
	return &orderRollup{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (r *orderRollup) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *orderRollup) CountOrders(ctx context.Context) (int64, error) {
	count, err := r.orderRepo.Count(ctx, repository.OrderFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (r *orderRollup) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := r.orderRepo.SumTotalPrice(ctx, repository.OrderFilter{})
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return total, nil
}

func (r *orderRollup) StatusBreakdown(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	counts, err := r.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	return counts, nil
}

func (r *orderRollup) SellerSales(ctx context.Context, sellerID uuid.UUID) (*usecase.SalesStats, error) {
	if _, err := findSeller(ctx, r.userRepo, sellerID); err != nil {
		return nil, err
	}

	rows, err := r.orderRepo.SalesBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller sales")
	}

	stats := &usecase.SalesStats{Revenue: decimal.Zero}
	for _, row := range rows {
		if row.SellerID == sellerID {
			stats.OrderCount = row.OrderCount
			stats.Revenue = row.Revenue
		}
	}

	return stats, nil
}

func (r *orderRollup) CustomerSpend(ctx context.Context, customerID uuid.UUID) (*usecase.CustomerSpend, error) {
	if err := r.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	rows, err := r.orderRepo.SpendByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate customer spend")
	}

	spend := &usecase.CustomerSpend{TotalSpent: decimal.Zero}
	for _, row := range rows {
		if row.CustomerID == customerID {
			spend.OrderCount = row.OrderCount
			spend.TotalSpent = row.TotalSpent
		}
	}

	return spend, nil
}

func (r *orderRollup) ProductSales(ctx context.Context, productID uuid.UUID) (*usecase.SalesStats, error) {
	if _, err := findProduct(ctx, r.productRepo, productID); err != nil {
		return nil, err
	}

	totals, err := r.orderRepo.SalesOfProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate product sales")
	}

	return &usecase.SalesStats{OrderCount: totals.OrderCount, Revenue: totals.Revenue}, nil
}

// OrderCarbonFootprint sums current product carbon score times quantity over the order lines.
// Lines whose product was deleted contribute zero.
func (r *orderRollup) OrderCarbonFootprint(ctx context.Context, orderID uuid.UUID) (*usecase.OrderCarbon, error) {
	order, err := r.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	ids := make([]uuid.UUID, 0, len(order.Items))
	seen := make(map[uuid.UUID]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	scores := make(map[uuid.UUID]decimal.Decimal, len(ids))
	if len(ids) > 0 {
		products, err := r.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order products")
		}
		for _, product := range products {
			scores[product.ID] = product.Footprint.CarbonScore()
		}
	}

	result := &usecase.OrderCarbon{
		OrderID:             order.ID,
		CarbonScore:         decimal.Zero,
		RecordedCarbonScore: order.TotalCarbonScore,
	}
	for _, item := range order.Items {
		score, ok := scores[item.ProductID]
		if !ok {
			result.MissingProducts++
			r.log(ctx).Warn("Order line references a missing product",
				slog.Any("orderID", order.ID),
				slog.Any("productID", item.ProductID),
			)

			continue
		}
		result.CarbonScore = result.CarbonScore.Add(score.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return result, nil
}

func (r *orderRollup) CustomerOrders(ctx context.Context, customerID *uuid.UUID) ([]usecase.CustomerOrder, error) {
	if customerID != nil {
		if err := r.requireCustomer(ctx, *customerID); err != nil {
			return nil, err
		}
	}

	orders, err := r.orderRepo.List(ctx, repository.OrderFilter{CustomerID: customerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	result := make([]usecase.CustomerOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, toCustomerOrder(order))
	}

	return result, nil
}

func (r *orderRollup) requireCustomer(ctx context.Context, customerID uuid.UUID) error {
	_, err := r.userRepo.FindByID(ctx, customerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrCustomerNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find customer")
	}

	return nil
}

func toCustomerOrder(order *entity.Order) usecase.CustomerOrder {
	items := make([]usecase.CustomerOrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		line := usecase.CustomerOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
		}
		items = append(items, line)
	}

	return usecase.CustomerOrder{
		ID:               order.ID,
		CustomerID:       order.CustomerID,
		CustomerName:     order.CustomerName(),
		Items:            items,
		TotalPrice:       order.TotalPrice,
		TotalCarbonScore: order.TotalCarbonScore,
		Status:           order.Status,
		ShippingAddress:  order.ShippingAddress,
		CreatedAt:        order.CreatedAt,
	}
}

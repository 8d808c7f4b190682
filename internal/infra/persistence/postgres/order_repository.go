package postgres

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
// Orders are written by checkout; this repository only reads them.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// FindByID returns the order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.reader(ctx).Preload("Items").Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns matching orders newest first with customer, items and item products.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := applyOrderFilter(repo.reader(ctx), filter).
		Preload("Customer").
		Preload("Items.Product")
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), nil
}

// ListRecent returns at most limit orders newest first, with their customer.
func (repo *orderRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.reader(ctx).
		Preload("Customer").
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return toOrderDomains(orderModels), nil
}

// Count returns the number of matching orders.
func (repo *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64
	if err := applyOrderFilter(repo.reader(ctx).Model(&model.OrderModel{}), filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SumTotalPrice returns the summed order totals.
func (repo *orderRepository) SumTotalPrice(ctx context.Context, filter repository.OrderFilter) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	query := applyOrderFilter(repo.reader(ctx).Model(&model.OrderModel{}), filter)
	if err := query.Select("COALESCE(SUM(total_price), 0) AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum order totals")
	}

	return row.Total, nil
}

// CountByStatus returns the number of orders per lifecycle status.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status     string
		OrderCount int64
	}

	if err := repo.reader(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS order_count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.OrderCount
	}

	return counts, nil
}

// SalesBySeller counts distinct orders and sums line revenue per product seller.
func (repo *orderRepository) SalesBySeller(ctx context.Context, sellerIDs ...uuid.UUID) ([]repository.SellerSalesTotals, error) {
	var rows []struct {
		SellerID   uuid.UUID
		OrderCount int64
		Revenue    decimal.Decimal
	}

	query := repo.reader(ctx).
		Table("order_items AS oi").
		Joins("JOIN products AS p ON p.id = oi.product_id").
		Select(`p.seller_id AS seller_id,
			COUNT(DISTINCT oi.order_id) AS order_count,
			COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue`).
		Group("p.seller_id")
	if len(sellerIDs) > 0 {
		query = query.Where("p.seller_id IN ?", sellerIDs)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales by seller")
	}

	totals := make([]repository.SellerSalesTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.SellerSalesTotals{
			SellerID:    row.SellerID,
			SalesTotals: repository.SalesTotals{OrderCount: row.OrderCount, Revenue: row.Revenue},
		})
	}

	return totals, nil
}

// SpendByCustomer counts orders and sums order totals per customer.
func (repo *orderRepository) SpendByCustomer(ctx context.Context, customerIDs ...uuid.UUID) ([]repository.CustomerSpendTotals, error) {
	var rows []repository.CustomerSpendTotals

	query := repo.reader(ctx).
		Model(&model.OrderModel{}).
		Select("customer_id, COUNT(*) AS order_count, COALESCE(SUM(total_price), 0) AS total_spent").
		Group("customer_id")
	if len(customerIDs) > 0 {
		query = query.Where("customer_id IN ?", customerIDs)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate spend by customer")
	}

	return rows, nil
}

// SalesOfProduct aggregates the order lines of one product.
func (repo *orderRepository) SalesOfProduct(ctx context.Context, productID uuid.UUID) (repository.SalesTotals, error) {
	var row struct {
		OrderCount int64
		Revenue    decimal.Decimal
	}

	if err := repo.reader(ctx).
		Model(&model.OrderItemModel{}).
		Select("COUNT(DISTINCT order_id) AS order_count, COALESCE(SUM(price * quantity), 0) AS revenue").
		Where("product_id = ?", productID).
		Scan(&row).Error; err != nil {
		return repository.SalesTotals{}, errors.Wrap(err, "failed to aggregate product sales")
	}

	return repository.SalesTotals{OrderCount: row.OrderCount, Revenue: row.Revenue}, nil
}

func applyOrderFilter(query *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	return query
}

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

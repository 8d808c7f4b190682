package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ActivityKind discriminates the variants of ActivityEvent.
type ActivityKind string

const (
	ActivityUserRegistration ActivityKind = "USER_REGISTRATION"
	ActivityProductAdded     ActivityKind = "PRODUCT_ADDED"
	ActivityOrderPlaced      ActivityKind = "ORDER_PLACED"
)

// Subject types attached to activity events.
const (
	SubjectUser    = "USER"
	SubjectProduct = "PRODUCT"
	SubjectOrder   = "ORDER"
)

// ActivityEvent is one entry of the admin recent-activity feed. It is
// synthesized from a source entity on every read and never persisted.
// Build values only through the New*Event constructors.
type ActivityEvent struct {
	Kind        ActivityKind `json:"type"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Timestamp   time.Time    `json:"timestamp"`
	SubjectID   uuid.UUID    `json:"subjectId"`
	SubjectType string       `json:"subjectType"`
}

// NewSellerRegisteredEvent projects a seller account into a registration event.
func NewSellerRegisteredEvent(seller *User) ActivityEvent {
	return ActivityEvent{
		Kind:        ActivityUserRegistration,
		Description: fmt.Sprintf("New seller %q registered", seller.FullName()),
		Status:      seller.ApprovalStatus(),
		Timestamp:   seller.CreatedAt,
		SubjectID:   seller.ID,
		SubjectType: SubjectUser,
	}
}

// NewProductAddedEvent projects a product listing into an event. The seller
// first name is taken from the preloaded Seller when present.
func NewProductAddedEvent(product *Product) ActivityEvent {
	sellerName := "unknown seller"
	if product.Seller != nil && product.Seller.FirstName != "" {
		sellerName = product.Seller.FirstName
	}

	return ActivityEvent{
		Kind:        ActivityProductAdded,
		Description: fmt.Sprintf("Product %q added by %s", product.Name, sellerName),
		Status:      product.ApprovalStatus(),
		Timestamp:   product.CreatedAt,
		SubjectID:   product.ID,
		SubjectType: SubjectProduct,
	}
}

// NewOrderPlacedEvent projects an order into an event carrying its lifecycle status.
func NewOrderPlacedEvent(order *Order) ActivityEvent {
	customer := order.CustomerName()
	if customer == "" {
		customer = "unknown customer"
	}

	return ActivityEvent{
		Kind:        ActivityOrderPlaced,
		Description: "Order placed by " + customer,
		Status:      order.Status.String(),
		Timestamp:   order.CreatedAt,
		SubjectID:   order.ID,
		SubjectType: SubjectOrder,
	}
}

// SortActivityNewestFirst orders events by timestamp descending in place,
// keeping the input order for equal timestamps.
func SortActivityNewestFirst(events []ActivityEvent) {
	slices.SortStableFunc(events, func(a, b ActivityEvent) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}

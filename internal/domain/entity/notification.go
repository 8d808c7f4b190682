package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags sent to accounts after moderation actions.
const (
	NotificationSellerApproval   = "SELLER_APPROVAL"
	NotificationSellerRejection  = "SELLER_REJECTION"
	NotificationAccountBlocked   = "ACCOUNT_BLOCKED"
	NotificationAccountStatus    = "ACCOUNT_STATUS"
	NotificationAccessApproved   = "ACCESS_APPROVED"
	NotificationAccountRejected  = "ACCOUNT_REJECTED"
	NotificationProductApproval  = "PRODUCT_APPROVAL"
	NotificationProductRejection = "PRODUCT_REJECTION"
	NotificationProductStatus    = "PRODUCT_STATUS"
	NotificationProductRemoval   = "PRODUCT_REMOVAL"
	NotificationProductUpdate    = "PRODUCT_UPDATE"
)

// Notification is an in-app message addressed to one account.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

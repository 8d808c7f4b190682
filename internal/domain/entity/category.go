package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups catalog products. Its product count is derived, never stored.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

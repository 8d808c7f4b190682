package postgres

import (
	"ecobazaar/internal/domain/carbon"
	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/infra/persistence/model"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         entity.Role(m.Role),
		EcoPoints:    m.EcoPoints,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role.String(),
		EcoPoints:    u.EcoPoints,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		ImageURL:      m.ImageURL,
		SellerID:      m.SellerID,
		CategoryID:    m.CategoryID,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Footprint: carbon.RestoreFootprint(
			m.WeightKg,
			m.ShippingDistanceKm,
			m.IsEcoFriendly,
			m.CarbonScore,
			m.CarbonReduction,
			m.EcoPoints,
		),
		Seller:   toUserDomain(m.Seller),
		Category: toCategoryDomain(m.Category),
	}
}

// fromProductDomain maps the product columns only; preloaded associations are never written back.
func fromProductDomain(p *entity.Product) *model.ProductModel {
	fp := p.Footprint

	return &model.ProductModel{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		StockQuantity:      p.StockQuantity,
		ImageURL:           p.ImageURL,
		SellerID:           p.SellerID,
		CategoryID:         p.CategoryID,
		IsActive:           p.IsActive,
		WeightKg:           fp.WeightKg(),
		ShippingDistanceKm: fp.ShippingDistanceKm(),
		IsEcoFriendly:      fp.EcoFriendly(),
		CarbonScore:        fp.CarbonScore(),
		EcoPoints:          fp.EcoPoints(),
		CarbonReduction:    fp.CarbonReduction(),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		item := &m.Items[i]
		items = append(items, entity.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Product:   toProductDomain(item.Product),
		})
	}

	return &entity.Order{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		Items:            items,
		TotalPrice:       m.TotalPrice,
		TotalCarbonScore: m.TotalCarbonScore,
		Status:           entity.OrderStatus(m.Status),
		ShippingAddress:  m.ShippingAddress,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Customer:         toUserDomain(m.Customer),
	}
}

func toNotificationDomain(m *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      m.Type,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func fromNotificationDomain(n *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

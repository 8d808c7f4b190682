package handler

import (
	"net/http"

	"ecobazaar/internal/delivery/api/response"
	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	ProductUC   usecase.ProductUsecase
	DashboardUC usecase.AdminDashboardUsecase
}

// SellerHandler serves the signed-in seller's catalog and dashboard.
type SellerHandler struct {
	productUC   usecase.ProductUsecase
	dashboardUC usecase.AdminDashboardUsecase
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		productUC:   params.ProductUC,
		dashboardUC: params.DashboardUC,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name               string          `json:"name" validate:"required,max=200"`
	Description        string          `json:"description" validate:"max=2000"`
	Price              decimal.Decimal `json:"price" validate:"gt=0"`
	StockQuantity      int             `json:"stockQuantity" validate:"gte=0"`
	ImageURL           string          `json:"imageUrl" validate:"omitempty,url"`
	CategoryID         *uuid.UUID      `json:"categoryId"`
	WeightKg           decimal.Decimal `json:"weightKg" validate:"gte=0"`
	ShippingDistanceKm decimal.Decimal `json:"shippingDistanceKm" validate:"gte=0"`
	IsEcoFriendly      bool            `json:"isEcoFriendly"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		StockQuantity:      r.StockQuantity,
		ImageURL:           r.ImageURL,
		CategoryID:         r.CategoryID,
		WeightKg:           r.WeightKg,
		ShippingDistanceKm: r.ShippingDistanceKm,
		IsEcoFriendly:      r.IsEcoFriendly,
	}
}

// ListProducts lists every product of the seller, pending ones included.
func (h *SellerHandler) ListProducts(c echo.Context) error {
	sellerID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), usecase.ProductFilter{SellerID: &sellerID})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct submits a new product for approval.
func (h *SellerHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), sellerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct replaces the fields of a product the seller owns.
func (h *SellerHandler) UpdateProduct(c echo.Context) error {
	sellerID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), sellerID, productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product the seller owns.
func (h *SellerHandler) DeleteProduct(c echo.Context) error {
	sellerID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), sellerID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// GetStats returns the catalog and sales figures of the seller.
func (h *SellerHandler) GetStats(c echo.Context) error {
	sellerID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.dashboardUC.SellerStats(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

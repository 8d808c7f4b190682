package handler

import (
	"net/http"

	"ecobazaar/internal/delivery/api/response"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the public catalog and the carbon calculator.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ScoreRequest represents the request body for a carbon score preview
type ScoreRequest struct {
	WeightKg           decimal.Decimal `json:"weightKg"`
	ShippingDistanceKm decimal.Decimal `json:"shippingDistanceKm"`
	IsEcoFriendly      bool            `json:"isEcoFriendly"`
}

// ListProducts lists approved products, optionally filtered by category,
// seller or eco flag.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := usecase.ProductFilter{ActiveOnly: true}

	var err error
	if filter.CategoryID, err = queryID(c, "categoryId"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.SellerID, err = queryID(c, "sellerId"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.EcoOnly, err = queryBool(c, "eco"); err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// PreviewScore scores product attributes without storing anything.
func (h *ProductHandler) PreviewScore(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("malformed request body"))
	}

	score, err := h.productUC.PreviewScore(c.Request().Context(), req.WeightKg, req.ShippingDistanceKm, req.IsEcoFriendly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, score)
}

package handler

import (
	"net/http"

	"ecobazaar/internal/delivery/api/response"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
}

// ModerationHandler serves the admin actions on accounts and listings.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{moderationUC: params.ModerationUC}
}

// NotesRequest carries optional admin notes sent to the account.
type NotesRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

// ReasonRequest carries the reason for a punitive action.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// StatusRequest switches an account or listing on or off.
type StatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// EcoDataRequest overrides the scoring inputs of a product.
type EcoDataRequest struct {
	IsEcoFriendly      bool             `json:"isEcoFriendly"`
	WeightKg           *decimal.Decimal `json:"weightKg" validate:"omitempty,gte=0"`
	ShippingDistanceKm *decimal.Decimal `json:"shippingDistanceKm" validate:"omitempty,gte=0"`
	AdminNotes         string           `json:"adminNotes" validate:"max=1000"`
}

// bindID parses the :id path parameter and binds the body into req.
func bindID(c echo.Context, req any) (uuid.UUID, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return uuid.Nil, err
	}

	if err := bind(c, req); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func done(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, MessageResponse{Message: message})
}

// ApproveSeller activates a seller account.
func (h *ModerationHandler) ApproveSeller(c echo.Context) error {
	var req NotesRequest
	sellerID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.ApproveSeller(c.Request().Context(), sellerID, req.Notes); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Seller approved successfully")
}

// RejectSeller deactivates a seller application.
func (h *ModerationHandler) RejectSeller(c echo.Context) error {
	var req NotesRequest
	sellerID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.RejectSeller(c.Request().Context(), sellerID, req.Notes); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Seller rejected successfully")
}

// BlockSeller deactivates a seller account for a reason.
func (h *ModerationHandler) BlockSeller(c echo.Context) error {
	var req ReasonRequest
	sellerID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.BlockSeller(c.Request().Context(), sellerID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Seller blocked successfully")
}

// UpdateUserStatus activates or deactivates any account.
func (h *ModerationHandler) UpdateUserStatus(c echo.Context) error {
	var req StatusRequest
	userID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.UpdateUserStatus(c.Request().Context(), userID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "User status updated successfully")
}

// RejectUser deactivates an account awaiting approval.
func (h *ModerationHandler) RejectUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.RejectUser(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "User rejected successfully")
}

// ApproveAdmin activates a pending admin account.
func (h *ModerationHandler) ApproveAdmin(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.ApproveAdmin(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Admin approved successfully")
}

// ApproveProduct publishes a pending product.
func (h *ModerationHandler) ApproveProduct(c echo.Context) error {
	var req NotesRequest
	productID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.ApproveProduct(c.Request().Context(), productID, req.Notes); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Product approved successfully")
}

// RejectProduct unpublishes a product for a reason.
func (h *ModerationHandler) RejectProduct(c echo.Context) error {
	var req ReasonRequest
	productID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.RejectProduct(c.Request().Context(), productID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Product rejected successfully")
}

// UpdateProductStatus publishes or unpublishes a product.
func (h *ModerationHandler) UpdateProductStatus(c echo.Context) error {
	var req StatusRequest
	productID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.UpdateProductStatus(c.Request().Context(), productID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Product status updated successfully")
}

// UpdateProductEcoData rescores a product from admin-corrected inputs.
func (h *ModerationHandler) UpdateProductEcoData(c echo.Context) error {
	var req EcoDataRequest
	productID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.moderationUC.UpdateProductEcoData(c.Request().Context(), productID, usecase.EcoDataInput{
		IsEcoFriendly:      req.IsEcoFriendly,
		WeightKg:           req.WeightKg,
		ShippingDistanceKm: req.ShippingDistanceKm,
		AdminNotes:         req.AdminNotes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// RemoveProduct deletes a listing and tells the seller why.
func (h *ModerationHandler) RemoveProduct(c echo.Context) error {
	var req ReasonRequest
	productID, err := bindID(c, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.RemoveProduct(c.Request().Context(), productID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return done(c, "Product removed successfully")
}

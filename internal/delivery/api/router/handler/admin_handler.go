package handler

import (
	"net/http"

	"ecobazaar/internal/delivery/api/response"
	"ecobazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DashboardUC usecase.AdminDashboardUsecase
	ActivityUC  usecase.ActivityFeedBuilder
	ProductUC   usecase.ProductUsecase
	Users       usecase.UserRollup
	Orders      usecase.OrderRollup
}

// AdminHandler serves the read side of the admin dashboard.
type AdminHandler struct {
	dashboardUC usecase.AdminDashboardUsecase
	activityUC  usecase.ActivityFeedBuilder
	productUC   usecase.ProductUsecase
	users       usecase.UserRollup
	orders      usecase.OrderRollup
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		dashboardUC: params.DashboardUC,
		activityUC:  params.ActivityUC,
		productUC:   params.ProductUC,
		users:       params.Users,
		orders:      params.Orders,
	}
}

// GetOverview returns the marketplace summary counters.
func (h *AdminHandler) GetOverview(c echo.Context) error {
	overview, err := h.dashboardUC.Overview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// GetRecentActivity returns the newest registrations, listings and orders.
func (h *AdminHandler) GetRecentActivity(c echo.Context) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	events, err := h.activityUC.Build(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// ListUsers lists accounts with their order figures, optionally of one role.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	role, err := queryRole(c, "role")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.dashboardUC.UsersWithStats(c.Request().Context(), role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// ListPendingAdmins lists admin accounts awaiting approval.
func (h *AdminHandler) ListPendingAdmins(c echo.Context) error {
	admins, err := h.users.PendingAdmins(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(admins))
}

// ListSellers lists sellers with their catalog and sales figures.
func (h *AdminHandler) ListSellers(c echo.Context) error {
	sellers, err := h.dashboardUC.SellersWithStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sellers)
}

// ListProducts lists every product, optionally of one seller or pending approval only.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	var (
		filter usecase.ProductFilter
		err    error
	)
	if filter.SellerID, err = queryID(c, "sellerId"); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.PendingOnly, err = queryBool(c, "pending"); err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// ListOrders lists orders with their items, optionally of one customer.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	customerID, err := queryID(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orders.CustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrderCarbon recomputes the carbon footprint of an order.
func (h *AdminHandler) GetOrderCarbon(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	carbon, err := h.orders.OrderCarbonFootprint(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, carbon)
}

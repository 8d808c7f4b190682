// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecobazaar/internal/delivery/api/middleware"
	"ecobazaar/internal/delivery/api/router/handler"
	"ecobazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ProductHandler    *handler.ProductHandler
	SellerHandler     *handler.SellerHandler
	CategoryHandler   *handler.CategoryHandler
	AdminHandler      *handler.AdminHandler
	ModerationHandler *handler.ModerationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	productHandler    *handler.ProductHandler
	sellerHandler     *handler.SellerHandler
	categoryHandler   *handler.CategoryHandler
	adminHandler      *handler.AdminHandler
	moderationHandler *handler.ModerationHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		productHandler:    params.ProductHandler,
		sellerHandler:     params.SellerHandler,
		categoryHandler:   params.CategoryHandler,
		adminHandler:      params.AdminHandler,
		moderationHandler: params.ModerationHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public catalog
	apiV1.POST("/auth/login", r.accountHandler.Login)
	apiV1.GET("/products", r.productHandler.ListProducts)
	apiV1.GET("/products/:id", r.productHandler.GetProduct)
	apiV1.GET("/categories", r.categoryHandler.ListCategories)
	apiV1.POST("/carbon/score", r.productHandler.PreviewScore)

	// Any signed-in account
	meGroup := apiV1.Group("/me", r.authMiddleware.Authenticate)
	{
		meGroup.GET("/notifications", r.accountHandler.ListNotifications)
		meGroup.GET("/stats", r.accountHandler.GetStats)
	}

	sellerGroup := apiV1.Group("/seller", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleSeller))
	{
		sellerGroup.GET("/products", r.sellerHandler.ListProducts)
		sellerGroup.POST("/products", r.sellerHandler.CreateProduct)
		sellerGroup.PUT("/products/:id", r.sellerHandler.UpdateProduct)
		sellerGroup.DELETE("/products/:id", r.sellerHandler.DeleteProduct)
		sellerGroup.GET("/stats", r.sellerHandler.GetStats)
	}

	adminGroup := apiV1.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/overview", r.adminHandler.GetOverview)
		adminGroup.GET("/recent-activity", r.adminHandler.GetRecentActivity)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id/status", r.moderationHandler.UpdateUserStatus)
		adminGroup.POST("/users/:id/reject", r.moderationHandler.RejectUser)
		adminGroup.GET("/admins/pending", r.adminHandler.ListPendingAdmins)
		adminGroup.POST("/admins/:id/approve", r.moderationHandler.ApproveAdmin)

		adminGroup.GET("/sellers", r.adminHandler.ListSellers)
		adminGroup.POST("/sellers/:id/approve", r.moderationHandler.ApproveSeller)
		adminGroup.POST("/sellers/:id/reject", r.moderationHandler.RejectSeller)
		adminGroup.POST("/sellers/:id/block", r.moderationHandler.BlockSeller)

		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/products/:id/approve", r.moderationHandler.ApproveProduct)
		adminGroup.POST("/products/:id/reject", r.moderationHandler.RejectProduct)
		adminGroup.PUT("/products/:id/status", r.moderationHandler.UpdateProductStatus)
		adminGroup.PUT("/products/:id/eco-data", r.moderationHandler.UpdateProductEcoData)
		adminGroup.DELETE("/products/:id", r.moderationHandler.RemoveProduct)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/orders/:id/carbon", r.adminHandler.GetOrderCarbon)

		adminGroup.GET("/categories", r.categoryHandler.ListCategories)
		adminGroup.POST("/categories", r.categoryHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.categoryHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.DeleteCategory)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler that registers routes.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CommentHandler  *handler.CommentHandler
	CheckoutHandler *handler.CheckoutHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	commentHandler  *handler.CommentHandler
	checkoutHandler *handler.CheckoutHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router; Fx injects the handlers.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		commentHandler:  params.CommentHandler,
		checkoutHandler: params.CheckoutHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	requireAdmin := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin.String()),
	}

	// Session
	api.POST("/auth", r.authHandler.Login)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog
	api.GET("/products", r.productHandler.ListProducts)
	api.GET("/products/search", r.productHandler.SearchProducts)
	api.GET("/products/:id", r.productHandler.GetProduct)
	api.POST("/products", r.productHandler.CreateProduct, requireAdmin...)
	api.PUT("/products/:id", r.productHandler.UpdateProduct, requireAdmin...)
	api.DELETE("/products/:id", r.productHandler.DeleteProduct, requireAdmin...)
	api.PUT("/products/:id/rating", r.commentHandler.RecomputeRating)
	api.GET("/categories", r.productHandler.ListCategories)

	// Cart
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddToCart)
		cartGroup.DELETE("/remove", r.cartHandler.RemoveItems)
		cartGroup.DELETE("/clear", r.cartHandler.ClearCart)
	}

	// Reviews
	api.GET("/comments", r.commentHandler.ListComments)
	api.POST("/comments", r.commentHandler.AddComment)

	// Address and checkout
	api.GET("/user/address", r.userHandler.GetAddress)
	api.POST("/user/address", r.userHandler.SaveAddress)
	api.POST("/checkout", r.checkoutHandler.Checkout)

	// Admin panel user management
	api.GET("/users", r.userHandler.ListUsers, requireAdmin...)
	api.POST("/users", r.userHandler.CreateUser, requireAdmin...)
	api.GET("/users/:id", r.userHandler.GetUser)
	api.POST("/users/:id", r.userHandler.UpdateProfile)
	api.PUT("/users/:id", r.userHandler.UpdateAddress)
	api.DELETE("/users/:id", r.userHandler.DeleteUser, requireAdmin...)
}

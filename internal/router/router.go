// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tadelakiran/Book-Library-Management/internal/handler"
	"github.com/tadelakiran/Book-Library-Management/internal/middleware"
	"github.com/tadelakiran/Book-Library-Management/internal/model"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Books      *handler.BookHandler
	Categories *handler.CategoryHandler
	Users      *handler.UserHandler
	Lending    *handler.LendingHandler
	Reports    *handler.ReportHandler
}

// Register wires all routes onto the Echo instance.  cache may be a
// pass-through middleware when Redis is unavailable.
//
// Route groups:
//
//	/healthz            – liveness, no auth
//	/v1/auth/*          – register, login, refresh, logout
//	/v1 (public GETs)   – catalog browsing, response-cached
//	/v1 (JWT, any role) – borrow/return/renew, own records, /me
//	/v1 (JWT, admin)    – catalog and member administration, reports
func Register(e *echo.Echo, h Handlers, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Operations that do not require an existing session.
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.POST("/logout", h.Auth.Logout)

	// Public catalog browsing; guests can inspect books and categories
	// before signing in.  Responses are cached.
	public := e.Group("/v1", cache)
	public.GET("/books", h.Books.List)
	public.GET("/books/:id", h.Books.Get)
	public.GET("/categories", h.Categories.List)

	// Endpoints for any authenticated member.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	auth.GET("/me", h.Auth.Me)
	auth.POST("/books/:id/borrow", h.Lending.Borrow)
	auth.POST("/records/:id/return", h.Lending.Return)
	auth.POST("/records/:id/renew", h.Lending.Renew)
	auth.GET("/my/records", h.Lending.MyRecords)

	// Administration.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/books", h.Books.Create)
	admin.PUT("/books/:id", h.Books.Update)
	admin.DELETE("/books/:id", h.Books.Delete)
	admin.POST("/categories", h.Categories.Create)
	admin.PUT("/categories/:id", h.Categories.Update)
	admin.DELETE("/categories/:id", h.Categories.Delete)
	admin.GET("/users", h.Users.List)
	admin.DELETE("/users/:id", h.Users.Delete)
	admin.GET("/records/overdue", h.Lending.Overdue)
	admin.GET("/reports/stats", h.Reports.Stats)
}

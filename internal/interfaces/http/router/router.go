package router

import (
	"github.com/byserkan/backend/internal/domain/identity"
	"github.com/byserkan/backend/internal/infrastructure/auth"
	"github.com/byserkan/backend/internal/interfaces/http/handler"
	"github.com/byserkan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles everything the router needs to wire up the API
type Handlers struct {
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	MenuItem *handler.MenuItemHandler
	Settings *handler.SettingsHandler
	Monitor  *handler.MonitorHandler
}

// Setup registers all API routes on the engine. The API splits into three
// surfaces: the public storefront, the admin back office and the order
// monitor. Staff tokens carry a role deciding which protected surface they
// can reach; admin accounts can use both.
func Setup(engine *gin.Engine, h Handlers, jwtService *auth.JWTService, log *zap.Logger) {
	api := engine.Group("/api/v1")

	// Public storefront
	api.GET("/menu", h.Menu.Sections)
	api.GET("/menu/popular", h.Menu.Popular)
	api.GET("/menu/items/:id/options", h.Menu.ItemOptions)
	api.GET("/availability", h.Settings.Availability)

	cart := api.Group("/cart")
	cart.GET("", h.Cart.View)
	cart.POST("/lines", h.Cart.AddLine)
	cart.PATCH("/lines", h.Cart.UpdateQuantity)
	cart.DELETE("/lines", h.Cart.RemoveLine)
	cart.DELETE("", h.Cart.Clear)

	api.POST("/checkout", h.Order.Checkout)
	api.GET("/orders/:id", h.Order.GetByID)

	api.POST("/auth/login", h.Auth.SignIn)

	// Account routes for any authenticated staff member
	account := api.Group("/auth")
	account.Use(middleware.JWTAuth(jwtService, log))
	account.GET("/me", h.Auth.Me)
	account.PUT("/password", h.Auth.ChangePassword)

	// Admin back office
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(jwtService, log))
	admin.Use(middleware.RequireRole(identity.RoleAdmin))

	admin.POST("/categories", h.Category.Create)
	admin.GET("/categories", h.Category.List)
	admin.PUT("/categories/reorder", h.Category.Reorder)
	admin.POST("/categories/repair-slugs", h.Category.RepairSlugs)
	admin.GET("/categories/:id", h.Category.GetByID)
	admin.PUT("/categories/:id", h.Category.Update)
	admin.POST("/categories/:id/activate", h.Category.Activate)
	admin.POST("/categories/:id/deactivate", h.Category.Deactivate)
	admin.DELETE("/categories/:id", h.Category.Delete)

	admin.POST("/items", h.MenuItem.Create)
	admin.GET("/items", h.MenuItem.List)
	admin.PUT("/items/reorder", h.MenuItem.Reorder)
	admin.GET("/items/by-number/:number", h.MenuItem.GetByNumber)
	admin.GET("/items/:id", h.MenuItem.GetByID)
	admin.PUT("/items/:id", h.MenuItem.Update)
	admin.POST("/items/:id/duplicate", h.MenuItem.Duplicate)
	admin.DELETE("/items/:id", h.MenuItem.Delete)

	admin.GET("/settings", h.Settings.Get)
	admin.PUT("/settings", h.Settings.Update)
	admin.POST("/settings/pause/:service", h.Settings.Pause)
	admin.POST("/settings/resume/:service", h.Settings.Resume)

	// Order monitor, reachable by both roles
	monitor := api.Group("/monitor")
	monitor.Use(middleware.JWTAuth(jwtService, log))
	monitor.Use(middleware.RequireRole(identity.RoleAdmin, identity.RoleMonitor))

	monitor.GET("/orders", h.Monitor.List)
	monitor.POST("/orders/:id/accept", h.Monitor.Accept)
	monitor.POST("/orders/:id/close", h.Monitor.CloseOut)
	monitor.GET("/stream", h.Monitor.Stream)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vivaha/internal/delivery/http/middleware"
	"vivaha/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	SyncHandler      *handler.SyncHandler
	GuestHandler     *handler.GuestHandler
	BudgetHandler    *handler.BudgetHandler
	TodoHandler      *handler.TodoHandler
	RegistryHandler  *handler.RegistryHandler
	VendorHandler    *handler.VendorHandler
	SeatingHandler   *handler.SeatingHandler
	WorkspaceHandler *handler.WorkspaceHandler
	PostHandler      *handler.PostHandler
	AssistantHandler *handler.AssistantHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
	}
	e.POST("/auth/logout", p.UserHandler.Logout, p.AuthMiddleware.Authenticate)

	// Everything below operates on the caller's planning data.
	api := e.Group("/api")
	api.Use(p.AuthMiddleware.Authenticate)

	userGroup := api.Group("/user")
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.POST("/onboarding", p.UserHandler.CompleteOnboarding)
		userGroup.PUT("/navigation", p.UserHandler.UpdateNavigation)
		userGroup.GET("/sync", p.SyncHandler.Sync)
		userGroup.POST("/push", p.SyncHandler.Push)
	}

	guestGroup := api.Group("/guests")
	{
		guestGroup.GET("", p.GuestHandler.List)
		guestGroup.POST("", p.GuestHandler.Create)
		guestGroup.GET("/stats", p.GuestHandler.Stats)
		guestGroup.PUT("/:id", p.GuestHandler.Update)
		guestGroup.DELETE("/:id", p.GuestHandler.Delete)
	}

	budgetGroup := api.Group("/budget")
	{
		budgetGroup.GET("", p.BudgetHandler.List)
		budgetGroup.POST("", p.BudgetHandler.Create)
		budgetGroup.GET("/summary", p.BudgetHandler.Summary)
		budgetGroup.PUT("/:id", p.BudgetHandler.Update)
		budgetGroup.DELETE("/:id", p.BudgetHandler.Delete)
	}

	todoGroup := api.Group("/todos")
	{
		todoGroup.GET("", p.TodoHandler.List)
		todoGroup.POST("", p.TodoHandler.Create)
		todoGroup.PUT("/:id", p.TodoHandler.Update)
		todoGroup.POST("/:id/toggle", p.TodoHandler.Toggle)
		todoGroup.DELETE("/:id", p.TodoHandler.Delete)
	}

	registryGroup := api.Group("/registries")
	{
		registryGroup.GET("", p.RegistryHandler.List)
		registryGroup.POST("", p.RegistryHandler.Add)
		registryGroup.DELETE("/:id", p.RegistryHandler.Remove)
	}

	vendorGroup := api.Group("/vendors")
	{
		vendorGroup.GET("", p.VendorHandler.List)
		vendorGroup.POST("", p.VendorHandler.Create)
		vendorGroup.PUT("/:id", p.VendorHandler.Update)
		vendorGroup.DELETE("/:id", p.VendorHandler.Delete)
		vendorGroup.GET("/:id/locate", p.VendorHandler.Locate)
	}

	seatingGroup := api.Group("/seating")
	{
		seatingGroup.GET("", p.SeatingHandler.Get)
		seatingGroup.PUT("", p.SeatingHandler.Save)
	}

	workspaceGroup := api.Group("/workspaces")
	{
		workspaceGroup.GET("", p.WorkspaceHandler.List)
		workspaceGroup.POST("", p.WorkspaceHandler.Create)
		workspaceGroup.POST("/select/clear", p.WorkspaceHandler.ClearSelection)
		workspaceGroup.GET("/:id", p.WorkspaceHandler.Get)
		workspaceGroup.PUT("/:id", p.WorkspaceHandler.Update)
		workspaceGroup.DELETE("/:id", p.WorkspaceHandler.Delete)
		workspaceGroup.POST("/:id/rename", p.WorkspaceHandler.Rename)
		workspaceGroup.POST("/:id/archive", p.WorkspaceHandler.Archive)
		workspaceGroup.POST("/:id/unarchive", p.WorkspaceHandler.Unarchive)
		workspaceGroup.POST("/:id/duplicate", p.WorkspaceHandler.Duplicate)
		workspaceGroup.POST("/:id/select", p.WorkspaceHandler.Select)
		workspaceGroup.POST("/:id/members", p.WorkspaceHandler.AddTeamMember)
		workspaceGroup.POST("/:id/metrics", p.WorkspaceHandler.RecomputeMetrics)
		workspaceGroup.GET("/:id/invite-qr", p.WorkspaceHandler.InviteQR)
	}

	postGroup := api.Group("/posts")
	{
		postGroup.GET("", p.PostHandler.Feed)
		postGroup.POST("", p.PostHandler.Create)
		postGroup.PUT("/:id", p.PostHandler.Update)
		postGroup.DELETE("/:id", p.PostHandler.Delete)
		postGroup.POST("/:id/like", p.PostHandler.ToggleLike)
		postGroup.POST("/:id/comments", p.PostHandler.AddComment)
	}

	api.POST("/assistant/chat", p.AssistantHandler.Chat)
}

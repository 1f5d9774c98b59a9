// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"neighborly/internal/delivery/http/middleware"
	"neighborly/internal/delivery/http/router/handler"
	"neighborly/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	ProfileHandler      *handler.ProfileHandler
	VolunteerHandler    *handler.VolunteerHandler
	RequestHandler      *handler.RequestHandler
	ReviewHandler       *handler.ReviewHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	catalogHandler      *handler.CatalogHandler
	profileHandler      *handler.ProfileHandler
	volunteerHandler    *handler.VolunteerHandler
	requestHandler      *handler.RequestHandler
	reviewHandler       *handler.ReviewHandler
	favoriteHandler     *handler.FavoriteHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		catalogHandler:      params.CatalogHandler,
		profileHandler:      params.ProfileHandler,
		volunteerHandler:    params.VolunteerHandler,
		requestHandler:      params.RequestHandler,
		reviewHandler:       params.ReviewHandler,
		favoriteHandler:     params.FavoriteHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a bearer token
	secured := api.Group("")
	secured.Use(r.authMiddleware.Authenticate)

	secured.GET("/services", r.catalogHandler.ListServices)

	userGroup := secured.Group("/user")
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.PUT("/role", r.profileHandler.SwitchRole)
		userGroup.GET("/services", r.profileHandler.GetServices)
		userGroup.PUT("/services", r.profileHandler.UpdateServices)
		userGroup.GET("/availability", r.profileHandler.GetAvailability)
		userGroup.PUT("/availability", r.profileHandler.UpdateAvailability)
		userGroup.PUT("/preferences", r.profileHandler.SavePreferences)
		userGroup.GET("/:volunteerId/reviews", r.reviewHandler.ListReviews)
	}

	volunteersGroup := secured.Group("/volunteers")
	{
		volunteersGroup.GET("", r.volunteerHandler.ListVolunteers)
		// Static segment wins over /:id in echo's router.
		volunteersGroup.GET("/match", r.volunteerHandler.MatchVolunteers, r.authMiddleware.RequireRole(entity.RoleElder))
		volunteersGroup.POST("/scan", r.volunteerHandler.ScanProfile)
		volunteersGroup.GET("/:id", r.volunteerHandler.GetVolunteer)
		volunteersGroup.GET("/:id/qrcode", r.volunteerHandler.GetVolunteerQRCode)
	}

	requestsGroup := secured.Group("/requests")
	{
		requestsGroup.POST("/new", r.requestHandler.CreateRequest, r.authMiddleware.RequireRole(entity.RoleElder))
		requestsGroup.GET("/elder", r.requestHandler.ListElderRequests)
		requestsGroup.GET("/volunteer", r.requestHandler.ListVolunteerRequests)
		requestsGroup.PATCH("/:id/status", r.requestHandler.UpdateStatus)
	}

	secured.POST("/reviews/new", r.reviewHandler.SubmitReview, r.authMiddleware.RequireRole(entity.RoleElder))

	favoritesGroup := secured.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("/:volunteerId", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:volunteerId", r.favoriteHandler.RemoveFavorite)
	}

	notificationsGroup := secured.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.PATCH("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
	}

	devicesGroup := secured.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bpaml/internal/delivery/api/middleware"
	"bpaml/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const stravaIDParam = "stravaId"

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	OAuthHandler    *handler.OAuthHandler
	AthleteHandler  *handler.AthleteHandler
	ActivityHandler *handler.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	oauthHandler    *handler.OAuthHandler
	athleteHandler  *handler.AthleteHandler
	activityHandler *handler.ActivityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		oauthHandler:    params.OAuthHandler,
		athleteHandler:  params.AthleteHandler,
		activityHandler: params.ActivityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Strava account linking
	oauthGroup := e.Group("/oauth/strava")
	{
		oauthGroup.GET("/connect", r.oauthHandler.StravaConnect)
		oauthGroup.GET("/callback", r.oauthHandler.StravaCallback)
	}

	apiV1 := e.Group("/api/v1")

	// Public athlete pages
	athletesGroup := apiV1.Group("/athletes")
	{
		athletesGroup.GET("", r.athleteHandler.ListAthletes)
		athletesGroup.GET("/:stravaId", r.athleteHandler.GetAthlete)
	}

	// Activity sync is limited to the athlete's own session
	activitiesGroup := athletesGroup.Group("/:stravaId/activities")
	activitiesGroup.Use(r.authMiddleware.Authenticate)
	activitiesGroup.Use(r.authMiddleware.RequireSelf(stravaIDParam))
	{
		activitiesGroup.GET("", r.activityHandler.ListActivities)
		activitiesGroup.GET("/remote", r.activityHandler.ListUnsaved)
		activitiesGroup.POST("/:activityId", r.activityHandler.SaveActivity)
		activitiesGroup.DELETE("/:activityId", r.activityHandler.DeleteActivity)
		activitiesGroup.GET("/:activityId/route", r.activityHandler.GetRoute)
	}
}

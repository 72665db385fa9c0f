package api

import (
	"github.com/gin-gonic/gin"

	"github.com/astromitra/astro-ai-go/internal/api/handlers"
	"github.com/astromitra/astro-ai-go/internal/middleware"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Profiles    *handlers.ProfileHandler
	Snapshots   *handlers.SnapshotHandler
	Predictions *handlers.PredictionHandler
}

// SetupRoutes registers every endpoint on the router.
func SetupRoutes(router *gin.Engine, h *Handlers, jwtSecret string) {
	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// Anonymous one-shot calculation: nothing is stored.
	v1.POST("/calculate", h.Snapshots.Calculate)

	authed := v1.Group("")
	authed.Use(middleware.AuthRequired(jwtSecret))
	{
		authed.POST("/profiles", h.Profiles.Create)
		authed.GET("/profiles", h.Profiles.List)
		authed.GET("/profiles/:id", h.Profiles.Get)
		authed.DELETE("/profiles/:id", h.Profiles.Delete)

		authed.POST("/profiles/:id/snapshot", h.Snapshots.ComputeForProfile)
		authed.GET("/profiles/:id/snapshots", h.Snapshots.List)
		authed.GET("/profiles/:id/snapshots/:hash", h.Snapshots.Get)
		authed.GET("/profiles/:id/snapshots/:hash/summary", h.Snapshots.GetSummary)

		authed.POST("/profiles/:id/predict", h.Predictions.Predict)
		authed.GET("/profiles/:id/predictions", h.Predictions.History)
	}
}

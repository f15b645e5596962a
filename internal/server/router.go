package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hirecharm/onboarding-backend/internal/handlers"
)

type RouterConfig struct {
	OnboardingHandler *handlers.OnboardingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Fully open on purpose: the form is embedded on arbitrary client sites.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	router.GET("/health", handlers.HealthCheck)

	onboarding := router.Group("/onboarding")
	{
		onboarding.POST("/submit", cfg.OnboardingHandler.Submit)
		onboarding.GET("/:submission_id", cfg.OnboardingHandler.GetByID)
	}

	return router
}

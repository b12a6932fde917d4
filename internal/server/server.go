package server

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ustaxcalc/ustax-api/internal/constants"
	"github.com/ustaxcalc/ustax-api/internal/handlers"
	"github.com/ustaxcalc/ustax-api/internal/logger"
	"github.com/ustaxcalc/ustax-api/internal/middleware"
	"github.com/ustaxcalc/ustax-api/internal/services"
)

var (
	calculationHandler *handlers.CalculationHandler
	healthHandler      *handlers.HealthHandler
)

// InitializeHandlers loads environment configuration, validates the stage,
// initializes logging, and builds the handler set. It must run before
// InitializeRoutes.
func InitializeHandlers() {
	// Load environment variables from .env file for local development.
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !constants.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, constants.StageProd, constants.StageDev, constants.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Log.Info("Initializing handlers",
		zap.String("stage", stage),
		zap.Int("tax_year", constants.TaxYear))

	calculationService := services.NewCalculationService()
	calculationHandler = handlers.NewCalculationHandler(calculationService)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware and the API routes on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/states", calculationHandler.ListStates)
		v1.POST("/calculations/federal", calculationHandler.CalculateFederal)
		v1.POST("/calculations/state/:code", calculationHandler.CalculateState)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	return cors.New(corsConfig)
}

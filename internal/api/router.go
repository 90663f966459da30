// Package api wires the HTTP surface. It is a collaborator of the valuation
// engine: it validates and converts payloads, the engine does the math.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api/handlers"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api/middleware"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/config"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/data"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(cfg *config.Config, cache *data.TableCache, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	evaluateHandler := handlers.NewEvaluateHandler(cfg, cache, log)
	referenceHandler := handlers.NewReferenceHandler(cfg, cache, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/evaluate", evaluateHandler.Evaluate)
		v1.GET("/localities", referenceHandler.ListLocalities)
		v1.GET("/reference", referenceHandler.GetReference)
	}

	return router
}

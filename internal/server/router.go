// Package server exposes the tutoring engine over HTTP.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig carries the handler and middleware dependencies.
type RouterConfig struct {
	Handler *Handler
	Logger  *zap.Logger

	// AllowOrigins lists the CORS origins. Empty means same-origin only.
	AllowOrigins []string
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Logger != nil {
		router.Use(requestLogger(cfg.Logger))
	}

	if len(cfg.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
			AllowCredentials: true,
		}))
	}

	router.GET("/healthcheck", HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/login", cfg.Handler.Login)
		api.POST("/logout", cfg.Handler.Logout)
		api.GET("/lesson", cfg.Handler.GetLesson)
		api.POST("/answer", cfg.Handler.CheckAnswer)
		api.POST("/speak", cfg.Handler.Speak)
		api.GET("/progress", cfg.Handler.GetProgress)
		api.POST("/pacing", cfg.Handler.Pacing)
	}

	return router
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
	}
}

package http

import (
	"context"
	"net/http"
	"time"

	"draw-tool-backend/internal/common/config"
	apperrors "draw-tool-backend/internal/common/errors"
	"draw-tool-backend/internal/common/middleware"
	drawhttp "draw-tool-backend/internal/features/draw/delivery/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// NewRouter builds the gin engine with middlewares and routes wired.
func NewRouter(cfg *config.Config, draws *drawhttp.Handler, store Pinger, log zerolog.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))

	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		middleware.RespondError(c, apperrors.New(apperrors.ErrCodeNotFound, "Route not found"), log)
	})

	draws.RegisterRoutes(router.Group("/api/v1"))
	return router
}

// Package server assembles the HTTP router and the gRPC health endpoint.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

// Pinger reports whether the database answers. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// NewRouter builds the gin engine with the common middleware chain, the
// liveness endpoint and every feature's routes.
func NewRouter(log logger.ZapLogger, db Pinger, registrars ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, reg := range registrars {
		reg.RegisterRoutes(r)
	}
	return r
}

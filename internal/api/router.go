package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Paths       PathFinder
	CORSOrigins []string
	Version     string
	Upstream    string
}

// Router-level limits. A single search can issue hundreds of upstream
// requests, so the inbound budget is small.
const (
	rateLimit = 2 // requests per second per IP
	rateBurst = 5 // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) error {
	limiter, err := middleware.NewRateLimiter(rateLimit, rateBurst)
	if err != nil {
		return fmt.Errorf("creating rate limiter: %w", err)
	}

	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health is mounted before the limiter so probes are never throttled.
	health := NewHealthHandler(deps.Version, deps.Upstream)
	r.GET("/api/v1/health", health.Liveness)

	r.Use(limiter.Handler())

	return nil
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	paths := NewPathHandler(deps.Paths, deps.Log)

	api.GET("/path", paths.Find)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(deps *RouterDeps) (http.Handler, error) {
	r := gin.New()
	if err := setupMiddleware(r, deps); err != nil {
		return nil, err
	}
	registerRoutes(r.Group("/api/v1"), deps)

	return r, nil
}

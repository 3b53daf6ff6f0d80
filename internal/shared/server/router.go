package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/decks"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/config"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/metrics"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/server/middleware"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/server/respond"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/web"
)

// RouterDeps carries everything NewRouter needs to register routes.
type RouterDeps struct {
	Config      config.Config
	DeckHandler *decks.Handler
	UI          *web.UI
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.AccessKey),
		middleware.RateLimit(rateLimits()),
	)

	if deps.UI != nil {
		deps.UI.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	deps.DeckHandler.RegisterRoutes(api)

	return r
}

// rateLimits keeps generation noticeably stricter than reads; generation is
// CPU-bound on image decode and resize.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/decks" {
				return "GENERATE"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":  {Rate: 10, Burst: 30},
			"GENERATE": {Rate: 0.5, Burst: 3},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

package middleware

import (
	"log/slog"
	"slices"

	"hotel-pricing/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// POS front ends identify themselves with this header; it is always allowed
// so a narrowed CORS_ALLOW_HEADERS cannot break terminal tagging.
const terminalHeader = "X-POS-Terminal"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, terminalHeader) {
		allowHeaders = append(allowHeaders, terminalHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(corsCfg)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-pricing/internal/handler/api"
	"hotel-pricing/internal/handler/middleware"
	"hotel-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, posHandler *api.POSHandler, quoteHandler *api.ReservationQuoteHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, posHandler, quoteHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, posHandler *api.POSHandler, quoteHandler *api.ReservationQuoteHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		pos := apiGroup.Group("/pos")
		{
			addRoutes(pos, []route{
				{Method: http.MethodPost, Path: "/totals", Handler: posHandler.ComputeTotals},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/allocations", Handler: quoteHandler.Allocate},
				{Method: http.MethodPost, Path: "/quote", Handler: quoteHandler.Quote},
				{Method: http.MethodPost, Path: "/package-quotes", Handler: quoteHandler.ComparePackages},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

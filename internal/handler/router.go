package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cineseat/internal/handler/api"
	"cineseat/internal/handler/middleware"
	"cineseat/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, sessionHandler *api.SessionHandler, showtimeHandler *api.ShowtimeHandler, rateLimiter gin.HandlerFunc) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, sessionHandler, showtimeHandler, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, sessionHandler *api.SessionHandler, showtimeHandler *api.ShowtimeHandler, rateLimiter gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		showtimes := apiGroup.Group("/showtimes")
		{
			addRoutes(showtimes, []route{
				{Method: http.MethodGet, Path: "/:id/seats", Handler: showtimeHandler.GetSeatMap},
				{Method: http.MethodGet, Path: "/:id/seats/stream", Handler: showtimeHandler.StreamSeatEvents},
			})
		}

		sessions := apiGroup.Group("/booking-sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: sessionHandler.CreateSession},
				{Method: http.MethodGet, Path: "/:id", Handler: sessionHandler.GetSession},
				{Method: http.MethodDelete, Path: "/:id", Handler: sessionHandler.CancelSession},
				{Method: http.MethodPatch, Path: "/:id/touch", Handler: sessionHandler.TouchSession},
				{Method: http.MethodPut, Path: "/:id/combos", Handler: sessionHandler.SetCombos},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: sessionHandler.ConfirmSession},
			})

			// Seat mutations are the contended paths; they get the
			// per-client token bucket.
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "/:id/seats/lock", Handler: sessionHandler.LockSeats, Mw: []gin.HandlerFunc{rateLimiter}},
				{Method: http.MethodPost, Path: "/:id/seats/release", Handler: sessionHandler.ReleaseSeats, Mw: []gin.HandlerFunc{rateLimiter}},
				{Method: http.MethodPost, Path: "/:id/seats/replace", Handler: sessionHandler.ReplaceSeats, Mw: []gin.HandlerFunc{rateLimiter}},
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

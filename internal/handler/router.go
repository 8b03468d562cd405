package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turf-booking/internal/domain/user"
	"turf-booking/internal/handler/api"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, bookingHandler *api.BookingHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ownerOnly := authMiddleware.RequireRole(user.RoleOwner)
	organizerOnly := authMiddleware.RequireRole(user.RoleOrganizer)

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create, Mw: []gin.HandlerFunc{organizerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.Approve, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: bookingHandler.Reject, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/cash-collected", Handler: bookingHandler.ConfirmCashCollected, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel, Mw: []gin.HandlerFunc{organizerOnly}},
				{Method: http.MethodPost, Path: "/:id/pay/cash", Handler: bookingHandler.PayCash, Mw: []gin.HandlerFunc{organizerOnly}},
				{Method: http.MethodPost, Path: "/:id/pay/online", Handler: bookingHandler.PayOnline, Mw: []gin.HandlerFunc{organizerOnly}},
			})
		}

		turfs := apiGroup.Group("/turfs")
		turfs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(turfs, []route{
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListTurfDay, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		billing := apiGroup.Group("/billing")
		billing.Use(middleware.RequireBillingSecret(cfg.Billing))
		{
			addRoutes(billing, []route{
				{Method: http.MethodPost, Path: "/callback", Handler: bookingHandler.BillingCallback},
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

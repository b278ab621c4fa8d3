package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtside/internal/domain/user"
	"courtside/internal/handler/api"
	"courtside/internal/handler/middleware"
	"courtside/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, bookingHandler, catalogHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			addRoutes(courts, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetCourt},
				{Method: http.MethodGet, Path: "/:id/templates", Handler: catalogHandler.ListTemplates},
				{Method: http.MethodGet, Path: "/:id/promotions", Handler: catalogHandler.ListPromotions},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetGrid},
			})

			ownerSide := courts.Group("")
			ownerSide.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
			addRoutes(ownerSide, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateCourt},
				{Method: http.MethodPost, Path: "/:id/templates", Handler: catalogHandler.CreateTemplate},
				{Method: http.MethodPost, Path: "/:id/promotions", Handler: catalogHandler.CreatePromotion},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/deposit", Handler: bookingHandler.Deposit},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: bookingHandler.Pay},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
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

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/handler/api"
	"ticket-seckill/internal/handler/middleware"
	"ticket-seckill/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	AuthHandler    *api.AuthHandler
	CatalogHandler *api.CatalogHandler
	OrderHandler   *api.OrderHandler
	IntentHandler  *api.IntentHandler
	HealthHandler  *api.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", p.HealthHandler.Live)
	engine.GET("/healthz", p.HealthHandler.Ready)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{p.RateLimit.Limit()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(p.AuthMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events", Handler: p.CatalogHandler.ListEvents},
			{Method: http.MethodGet, Path: "/events/:event_id/ticket_types", Handler: p.CatalogHandler.ListTicketTypes},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/events", Handler: p.CatalogHandler.CreateEvent},
				{Method: http.MethodPost, Path: "/events/:event_id/ticket_types", Handler: p.CatalogHandler.CreateTicketType},
				{Method: http.MethodPost, Path: "/ticket-types", Handler: p.CatalogHandler.CreateTicketTypeFromBody},
			})
		}

		buyer := apiGroup.Group("")
		buyer.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(buyer, []route{
				{Method: http.MethodPost, Path: "/tickets/grab", Handler: p.OrderHandler.Grab, Mw: limited},
				{Method: http.MethodPost, Path: "/seckill", Handler: p.OrderHandler.Grab, Mw: limited},
				{Method: http.MethodGet, Path: "/orders/me", Handler: p.OrderHandler.ListMine},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: p.OrderHandler.Get},
				{Method: http.MethodPost, Path: "/orders/:id/pay", Handler: p.OrderHandler.Pay},

				{Method: http.MethodPost, Path: "/purchase-intents", Handler: p.IntentHandler.Create, Mw: limited},
				{Method: http.MethodGet, Path: "/purchase-intents/mine", Handler: p.IntentHandler.ListMine},
				{Method: http.MethodGet, Path: "/purchase-intents/me", Handler: p.IntentHandler.ListMine},
			})
		}
	}
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

// Package router assembles the HTTP API from the controllers and the
// middleware stack.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/ledgerlite/backend/api"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/config"
	"github.com/ledgerlite/backend/internal/controllers/healthz"
	v1 "github.com/ledgerlite/backend/internal/controllers/v1"
	"github.com/ledgerlite/backend/internal/httperror"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/progress"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Set at release build time via -ldflags "-X ...router.version=".
var version = "0.0.0"

// New sets up the router with all middlewares and routes.
func New(cfg config.Config, db *gorm.DB) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("This HTTP method is not allowed for the endpoint you called"))
	})

	r.Use(gin.Recovery())
	r.Use(requestid.New())

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}
	r.Use(MetricsMiddleware())

	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings. Origins are matched against the configured patterns,
	// which may contain * wildcards.
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc: func(origin string) bool {
				for _, pattern := range cfg.CORSAllowOrigins {
					if glob.Glob(pattern, origin) {
						return true
					}
				}
				return false
			},
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// pprof performance profiles, only in debug mode
	if gin.IsDebugging() {
		pprof.Register(r, "debug/pprof")
	}

	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Title = "LedgerLite"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for LedgerLite, a personal finance tracker."
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(r.Group("/healthz"), db)

	users := repository.NewUserRepository(db)
	transactions := repository.NewTransactionRepository(db)
	budgets := repository.NewBudgetRepository(db)
	categories := repository.NewCategoryRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	thresholds := progress.Thresholds{
		Warning:  cfg.BudgetWarnPercent,
		Critical: cfg.BudgetCriticalPercent,
	}

	authController := v1.NewAuthController(users, tokens)

	categoryController := v1.NewCategoryController(categories)

	api := r.Group("/api/v1")
	authController.RegisterPublicRoutes(api.Group("/auth"))
	categoryController.RegisterPublicRoutes(api.Group("/categories"))

	protected := api.Group("")
	protected.Use(auth.Middleware(tokens, users))

	authController.RegisterProtectedRoutes(protected.Group("/auth"))
	v1.NewTransactionController(transactions).RegisterRoutes(protected.Group("/transactions"))
	v1.NewBudgetController(budgets, transactions, thresholds).RegisterRoutes(protected.Group("/budgets"))
	categoryController.RegisterAdminRoutes(protected.Group("/categories"))
	v1.NewExportController(transactions, categories).RegisterRoutes(protected.Group("/export"))
	v1.NewAccountController(users).RegisterRoutes(protected.Group("/user"))

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // Application health
	Metrics string `json:"metrics" example:"https://example.com/metrics"`      // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/version"`      // Backend version
	V1      string `json:"v1" example:"https://example.com/api/v1"`            // The API
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    "/docs/index.html",
			Healthz: "/healthz",
			Metrics: "/metrics",
			Version: "/version",
			V1:      "/api/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

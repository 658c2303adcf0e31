package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/jwtx"
	"github.com/harvestnet/platform/pkg/slogx"

	_ "github.com/harvestnet/platform/api/platform" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate swag init -g router.go -o ../../../api/platform --parseDependency --outputTypes go

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	verifier     jwtx.Verifier
	buildVersion string
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles
	now          func() time.Time

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	AnalyticsService *service.AnalyticsService
	WeatherService   *service.WeatherService
	ExportService    *service.ExportService
	Validate         *validator.Validate
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	limits httpx.RateLimitProfiles,
	corsOrigin string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		store:        st,
		logger:       logger,
		limits:       limits,
		now:          time.Now,
	}

	// CORS sits inside the logger so preflights show up in the access log.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigin),
	}
	r.handler = httpx.Chain(r.Mux, r.middlewares...)

	return r
}

func (r *Router) ApplyRoutes() {
	if r.Validate == nil {
		r.Validate = service.NewValidator()
	}

	r.registerSystem()
	r.registerAuth()
	r.registerUsers()
	r.registerAnalytics()
	r.registerWeather()
	r.registerExport()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			HarvestNet Platform API
//	@version		1.0.0
//	@description	Backend for the HarvestNet farming platform: login, user listing, dashboard analytics, cached weather forecasts and data export.
//	@description
//	@description				Protected endpoints take an HS256 bearer token returned by /api/auth/login.
//
//	@contact.name				HarvestNet Team
//	@contact.url				https://github.com/harvestnet/platform
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// secured wraps h with bearer authentication and a per-user limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerSystem() {
	// Monitoring may poll; the health check is public and unthrottled.
	r.Mux.Handle("GET /api/health", HealthHandler(r.buildVersion, r.store, r.now))
}

func (r *Router) registerAuth() {
	h := &LoginHandler{AuthService: r.AuthService, Validate: r.Validate}

	// POST /login - strict rate limit by IP (credential stuffing)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(h,
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/users", r.secured(h, r.limits.Lenient))
}

func (r *Router) registerAnalytics() {
	h := &DashboardHandler{AnalyticsService: r.AnalyticsService}
	r.Mux.Handle("GET /api/analytics/dashboard", r.secured(h, r.limits.Lenient))
}

func (r *Router) registerWeather() {
	// Misses reach the upstream, so a tighter budget than the plain reads.
	h := &WeatherHandler{WeatherService: r.WeatherService}
	r.Mux.Handle("GET /api/weather", r.secured(h, r.limits.Moderate))
}

func (r *Router) registerExport() {
	h := &ExportHandler{ExportService: r.ExportService}
	r.Mux.Handle("GET /api/data/export", r.secured(h, r.limits.Moderate))
}

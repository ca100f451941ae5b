package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"

	_ "github.com/solclone/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	sessionTTL    time.Duration
	secureCookies bool

	store               store.Store
	AuthService         *service.AuthService
	RegistrationService *service.RegistrationService
}

func NewRouter(
	buildVersion string,
	sessionTTL time.Duration,
	secureCookies bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		store:         st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portal Service API
//	@version		0.1.0
//	@description	Loyalty and referral portal: public wallet registration with referral points, plus a session-cookie administrator API with optional TOTP second factor.
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /api/login - strict rate limit (authentication attempts)
	loginHandler := &LoginHandler{
		AuthService: r.AuthService,
		SessionTTL:  r.sessionTTL,
		Secure:      r.secureCookies,
	}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// POST /api/logout - always succeeds, lenient limit
	logoutHandler := &LogoutHandler{AuthService: r.AuthService, Secure: r.secureCookies}
	r.Mux.Handle("POST /api/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /api/admin - resolves the cookie itself, no session middleware
	adminHandler := &AdminHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /api/admin",
		httpx.Chain(adminHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /api/change-password - session required, moderate limit
	changePasswordHandler := &ChangePasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/change-password",
		httpx.Chain(changePasswordHandler,
			SessionMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /api/setup-2fa - session required, moderate limit
	setupTwoFactorHandler := &SetupTwoFactorHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/setup-2fa",
		httpx.Chain(setupTwoFactorHandler,
			SessionMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{RegistrationService: r.RegistrationService}

	// Public registration endpoints - moderate rate limit by IP
	r.Mux.Handle("POST /api/users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/store-referral",
		httpx.Chain(http.HandlerFunc(h.HandleStoreReferral),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Public wallet lookup - lenient limit
	r.Mux.Handle("GET /api/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Admin listing - session required
	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			SessionMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

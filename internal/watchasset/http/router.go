package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/internal/watchasset/store"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/watchasset/watchasset/pkg/slogx"

	_ "github.com/watchasset/watchasset/api/watchasset" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	frontendURL  string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	WatchService     *service.WatchService
	UserWatchService *service.UserWatchService
}

func NewRouter(
	frontendURL, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		frontendURL:  frontendURL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerWatches()
	r.registerUserWatches()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			WatchAsset API
//	@version		0.1.0
//	@description	Backend for the WatchAsset watch-collection tracker. Login is
//	@description	delegated to an external SSO provider via the OAuth2
//	@description	authorization-code flow; tokens are opaque bearer credentials.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3001
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				SSO access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	callbackHandler := &CallbackHandler{
		AuthService: r.AuthService,
		FrontendURL: r.frontendURL,
	}
	userInfoHandler := &UserInfoHandler{AuthService: r.AuthService}
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}

	r.Mux.Handle("GET /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /auth/callback",
		httpx.Chain(callbackHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /auth/userinfo",
		httpx.Chain(userInfoHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerWatches() {
	listHandler := &WatchListHandler{WatchService: r.WatchService}
	getHandler := &WatchGetHandler{WatchService: r.WatchService}

	r.Mux.Handle("GET /watches",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /watches/{id}",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerUserWatches() {
	listHandler := &UserWatchListHandler{UserWatchService: r.UserWatchService}
	createHandler := &UserWatchCreateHandler{UserWatchService: r.UserWatchService}
	deleteHandler := &UserWatchDeleteHandler{UserWatchService: r.UserWatchService}

	// Protected routes resolve the caller's subject through the SSO
	// provider; tokens are opaque so there is nothing to verify locally.
	bearer := httpx.BearerMiddleware(r.AuthService.ResolveSubject)

	r.Mux.Handle("GET /user-watches",
		httpx.Chain(listHandler,
			bearer,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /user-watches",
		httpx.Chain(createHandler,
			bearer,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /user-watches/{id}",
		httpx.Chain(deleteHandler,
			bearer,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /healthz", HealthzHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

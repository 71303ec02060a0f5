package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/harborbank/authd/internal/authd/domain"
	"github.com/harborbank/authd/internal/authd/service"
	"github.com/harborbank/authd/internal/authd/store"
	"github.com/harborbank/authd/pkg/httpx"
	"github.com/harborbank/authd/pkg/jwtx"
	"github.com/harborbank/authd/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers and declares every
// route together with its guard chain, so the gate ordering is visible in
// one place.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	TokenService *service.TokenService
	UserService  *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerIssuance()
	r.registerAccount()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerIssuance() {
	// Client-credential issuance is the entry point: no prior auth.
	r.Mux.Handle("POST /v1/auth/client", &ClientTokenHandler{TokenService: r.TokenService})

	// Account-holder and consent issuance both require an authenticated
	// application.
	r.Mux.Handle("POST /v1/auth/account-holder",
		httpx.Protect(&UserTokenHandler{TokenService: r.TokenService},
			httpx.ClientAuthenticated(r.verifier),
		),
	)

	r.Mux.Handle("POST /v1/consent",
		httpx.Protect(&ConsentHandler{TokenService: r.TokenService},
			httpx.ClientAuthenticated(r.verifier),
		),
	)
}

func (r *Router) registerAccount() {
	// Client gate first, scope gate second: a consent token's scopes mean
	// nothing before the calling application itself is authenticated.
	r.Mux.Handle("GET /v1/account/balance",
		httpx.Protect(&BalanceHandler{UserService: r.UserService},
			httpx.ClientAuthenticated(r.verifier),
			httpx.ScopeAuthorized(r.verifier, domain.ScopeReadBalance),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier != nil))
}

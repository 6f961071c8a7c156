package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/webmob/auth-api/internal/api/http/handler"
	"github.com/webmob/auth-api/internal/api/http/middleware"
	"github.com/webmob/auth-api/internal/logger"
	"github.com/webmob/auth-api/internal/model"
)

// requestTimeout bounds the total time a handler may take.
const requestTimeout = 60 * time.Second

// endpoints is the route list advertised by the root endpoint.
var endpoints = []string{"/auth/signup", "/auth/login", "/me", "/healthz"}

// Router wires handlers and middleware into the HTTP mux.
type Router struct {
	authService    handler.AuthService
	tokens         model.TokenManager
	contextManager model.ContextManager
	corsOrigins    []string
	version        string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	tokens model.TokenManager,
	contextManager model.ContextManager,
	corsOrigins []string,
	version string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokens:         tokens,
		contextManager: contextManager,
		corsOrigins:    corsOrigins,
		version:        version,
		logger:         logger,
	}
}

// Register builds the mux with all routes and middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.authService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.version, endpoints)

	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(chimiddleware.Timeout(requestTimeout))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Route("/auth", func(mux chi.Router) {
		mux.Post("/signup", authHandler.Signup)
		mux.Post("/login", authHandler.Login)
	})

	mux.Group(func(mux chi.Router) {
		mux.Use(authenticate.Handle)
		mux.Get("/me", userHandler.Me)
	})

	mux.Get("/", healthHandler.Root)
	mux.Get("/healthz", healthHandler.Healthz)

	mux.NotFound(healthHandler.NotFound)
	mux.MethodNotAllowed(healthHandler.MethodNotAllowed)

	return mux
}

package http

import (
	"context"
	"errors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"t9dict/internal/app/adapters/http/handlers"
	"t9dict/internal/app/adapters/http/middlewares"
	"t9dict/internal/app/infrastructure/config"
	"t9dict/internal/app/ports"
	"t9dict/pkg/logger"
	"time"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares
	server      *http.Server

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, dict ports.DictionaryPort) *Router {
	r := &Router{
		router:      gin.New(),
		handlers:    handlers.New(log, dict),
		middlewares: middlewares.New(),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	r.router.Use(gin.Recovery())

	admin := r.router.Group("/", r.middlewares.Auth(cfg.App.AuthToken))
	pprof.RouteRegister(admin)
	admin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	admin.GET("/dump", r.handlers.DumpHandler)
	admin.POST("/reload", r.handlers.ReloadHandler)

	api := r.router.Group("/", r.middlewares.RateLimit(cfg.Limiter.Requests, cfg.Limiter.Per))
	api.GET("/lookup/:keys", r.handlers.LookupHandler)
	api.GET("/encode/:word", r.handlers.EncodeHandler)
	api.GET("/status", r.handlers.StatusHandler)
	api.GET("/ws", r.handlers.KeypadHandler)

	return r
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// Run serves until Shutdown is called.
func (r *Router) Run() error {
	r.server = r.newServer(r.manager.Get().App.ListenAddr, r.router)
	r.log.Info("HTTP server started", "addr", r.server.Addr)

	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}

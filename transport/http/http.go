package http

import (
	"context"
	"errors"
	"frontdesk/config"
	_ "frontdesk/docs"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/internal/domains/booking/event"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"frontdesk/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthTimeout     = 2 * time.Second
)

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	App       middleware.AppMiddleware
	AuthRole  middleware.AuthRole
	db        *postgres.Connection
	cache     *goRedis.Client
	publisher event.Publisher
	otel      otel.Otel
	state     atomic.Int32
	mux       *chi.Mux
	server    *http.Server
	once      sync.Once
	stop      chan os.Signal
	done      chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	authRole middleware.AuthRole,
	db *postgres.Connection,
	cache *goRedis.Client,
	publisher event.Publisher,
	otel otel.Otel,
) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		App:       app,
		AuthRole:  authRole,
		db:        db,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
		stop:      make(chan os.Signal, 1),
		done:      make(chan struct{}),
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.once.Do(h.setup)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	// ListenAndServe returns as soon as Shutdown starts; cleanup is still running.
	<-h.done
}

// Stop starts the same shutdown sequence as SIGTERM.
func (h *HTTP) Stop() {
	select {
	case h.stop <- syscall.SIGTERM:
	default:
	}
}

// ServeHTTP serves a single request without owning a listener, for serverless runtimes.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(h.setup)

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	response.ExposeDiagnostics(h.Config.Server.Env != constant.ServerEnvProduction)

	if h.Config.App.CORS.Enable {
		corsConfig := h.Config.App.CORS

		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.App.Tracing)
	h.mux.Use(h.App.RateLimit())

	h.mux.Get("/health", h.health)

	if h.Config.Server.Env != constant.ServerEnvProduction {
		h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	h.mux.Group(func(r chi.Router) {
		r.Use(h.AuthRole.APIKey)
		r.Use(h.AuthRole.Auth)
		r.Use(h.AuthRole.RBAC)

		h.Router.SetupRoutes(r)
	})

	h.state.Store(int32(ServerStateReady))
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	switch h.State() {
	case ServerStateReady:
		if err := h.ping(r.Context()); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			response.WithUnhealthy(w)

			return
		}

		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

// ping checks the stores every request depends on. Missing handles are skipped.
func (h *HTTP) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			return err
		}
	}

	if h.cache != nil {
		return redis.Ping(ctx, h.cache)
	}

	return nil
}

func (h *HTTP) setupGracefulShutdown() {
	signal.Notify(h.stop, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(h.stop)
}

// respondToSigterm keeps serving through the grace period so the load balancer sees the failing
// health check, then drains in-flight requests and pending booking events before closing the pools.
func (h *HTTP) respondToSigterm(stop chan os.Signal) {
	defer close(h.done)

	<-stop

	signal.Stop(stop)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Received SIGTERM. Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup flushes pending booking events and traces, then closes the stores. Handles that were
// never wired are skipped.
func (h *HTTP) cleanup(ctx context.Context) {
	if h.publisher != nil {
		if err := h.publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to flush booking events")
		}
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if h.db != nil {
		if err := h.db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connections")
		}
	}

	if h.cache != nil {
		if err := h.cache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}
}

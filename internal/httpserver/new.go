package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"item-store-api/internal/middleware"
	"item-store-api/pkg/cosmos"
	"item-store-api/pkg/log"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Shared middleware
	mw middleware.Middleware

	// Item domain
	container cosmos.Container
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Middleware
	AllowedOrigins  []string
	RateLimitPerMin int

	// Item domain
	Container cosmos.Container
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     orDefault(cfg.ReadTimeout, defaultReadTimeout),
		writeTimeout:    orDefault(cfg.WriteTimeout, defaultWriteTimeout),
		shutdownTimeout: orDefault(cfg.ShutdownTimeout, defaultShutdownTimeout),
		container:       cfg.Container,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{
		Environment:     cfg.Environment,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port <= 0 {
		return errors.New("port is required")
	}
	if srv.container == nil {
		return errors.New("cosmos container is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

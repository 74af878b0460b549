package httpserver

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	invoiceHTTP "billomat-invoicing/internal/invoice/delivery/http"
	"billomat-invoicing/internal/middleware"
	"billomat-invoicing/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Readiness
	draining        *atomic.Bool
	readinessChecks map[string]ReadinessCheck

	// Invoice domain
	invoiceHandler invoiceHTTP.Handler
}

// ReadinessCheck reports why the server cannot take traffic, or nil.
type ReadinessCheck func(ctx context.Context) error

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// ReadinessChecks are run by /ready, keyed by the name reported back.
	ReadinessChecks map[string]ReadinessCheck

	// Invoice domain
	InvoiceHandler invoiceHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		invoiceHandler: cfg.InvoiceHandler,

		draining:        &atomic.Bool{},
		readinessChecks: cfg.ReadinessChecks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

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
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

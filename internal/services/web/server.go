package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/ems-protocols/internal/platform/timeouts"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/services/web/composition"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/httpx"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/observability"
	"github.com/louisbranch/ems-protocols/internal/services/web/static"
	webhttp "github.com/louisbranch/ems-protocols/internal/services/web/transport/http"
	"github.com/louisbranch/ems-protocols/internal/services/web/transport/httpmux"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	Catalog  *catalog.Catalog
	// Logger receives request and panic logs. Nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the protocol browser HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler builds the root handler with health, static assets, and modules.
func NewHandler(config Config) (http.Handler, error) {
	if config.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	appHandler, err := composition.ComposeAppHandler(composition.ComposeInput{
		Catalog:         config.Catalog,
		ResolveLanguage: resolveRequestLanguage,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	root := http.NewServeMux()
	httpmux.MountHealth(root)
	httpmux.MountStatic(root, static.FS, webhttp.WithStaticMime)
	httpmux.MountModules(root, appHandler)

	return httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing("web"),
		observability.RequestLogger(logger),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          logger,
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close immediately closes listeners and connections.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Printf("close http server: %v", err)
	}
}

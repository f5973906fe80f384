// Package server hosts the HTTP surface: the REST API under /api/v1,
// the MCP streamable handler at /mcp/stream, and /healthz.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/employeah/employeah/internal/config"
	"github.com/employeah/employeah/internal/domain/market"
	mcpapi "github.com/employeah/employeah/internal/mcp"
	"github.com/employeah/employeah/pkg/logging"
	"github.com/employeah/employeah/pkg/sheets"
)

const version = "0.1.0"

// Server wraps the shared http.Server for both surfaces.
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	started atomic.Bool
}

// New constructs the server. sheetsClient may be nil; the export tool
// then reports a configuration error when called.
func New(cfg config.Config, svc *market.Service, sheetsClient *sheets.Client, logger *logging.Logger) *Server {
	mcpServer := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "employeah",
		Version: version,
	}, nil)

	mcpapi.Register(mcpServer,
		mcpapi.WithSearchByJob(svc),
		mcpapi.WithSearchBySkills(svc),
		mcpapi.WithHistoricalStats(svc),
		mcpapi.WithSkillTrend(svc),
		mcpapi.WithJobFieldsBySkill(svc),
		mcpapi.WithCoursesBySkill(svc),
		mcpapi.WithExportReport(svc, sheetsClient, logger),
	)

	streamHandler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", streamHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	api := &api{svc: svc, logger: logger}
	api.routes(mux)

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           withRequestLogging(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: logger,
		config: cfg,
		srv:    httpSrv,
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

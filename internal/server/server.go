// Package server assembles the HTTP surface of the bar: the gin router, the
// session layer and the http.Server that serves them.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-bar-api/internal/auth"
	"github.com/franciscosanchezn/gin-bar-api/internal/config"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Server wraps an http.Server serving the gin router behind the session middleware
type Server struct {
	config     *config.Config
	httpServer *http.Server
}

// New builds a Server for cfg on top of an open, migrated database
func New(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: configuration is required")
	}
	if db == nil {
		return nil, errors.New("server: database is required")
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := auth.NewSessions(cfg.Session)
	router := newRouter(cfg, db, sessions)

	log.WithFields(log.Fields{
		"addr":           cfg.Addr(),
		"session_cookie": sessions.CookieName(),
	}).Debug("HTTP handler chain prepared")

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           sessions.LoadAndSave(router),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	log.Infof("Starting server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server with a timeout
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the full handler chain for integration tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

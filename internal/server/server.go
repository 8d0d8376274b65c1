// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/claceio/passmeter/internal/types"
)

// PM_HOME is the root directory for passmeter logs and profiles
var PM_HOME = os.ExpandEnv("$" + types.PM_HOME)

func init() {
	if len(PM_HOME) == 0 {
		// Default to current directory if PM_HOME is not set
		PM_HOME = "."
		os.Setenv(types.PM_HOME, PM_HOME)
	}
}

// Server is the instance of the passmeter HTTP server
type Server struct {
	*types.Logger
	config     *types.ServerConfig
	httpServer *http.Server
	handler    *Handler
	listener   net.Listener
}

// NewServer creates a new instance of the passmeter server
func NewServer(config *types.ServerConfig) (*Server, error) {
	if config.Generator.MinLength <= 0 || config.Generator.MaxLength < config.Generator.MinLength {
		return nil, fmt.Errorf("invalid generator length range %d-%d", config.Generator.MinLength, config.Generator.MaxLength)
	}
	logger := types.NewLogger(&config.Log)
	server := &Server{
		Logger: logger,
		config: config,
	}
	server.handler = NewHandler(logger, config, server)
	return server, nil
}

// Handler returns the http handler, used for testing without a listener
func (s *Server) Handler() http.Handler {
	return s.handler.router
}

// Start starts the HTTP server in the background
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Http.Host, s.config.Http.Port)
	s.Info().Str("address", addr).Msg("Starting HTTP server")
	s.httpServer = &http.Server{
		Addr:         addr,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  30 * time.Second,
		IdleTimeout:  30 * time.Second,
		Handler:      s.handler.router,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", addr, err)
	}
	s.listener = listener

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()
	return nil
}

// Addr returns the address the server is listening on
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.Info().Msg("Stopping service")
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

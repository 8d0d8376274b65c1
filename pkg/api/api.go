// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/claceio/passmeter/internal/passwd"
	pmserver "github.com/claceio/passmeter/internal/server"
	"github.com/claceio/passmeter/internal/strength"
	"github.com/claceio/passmeter/internal/system"
	"github.com/claceio/passmeter/internal/types"
)

// StrengthReport is the result of evaluating a password
type StrengthReport = strength.Report

// InvalidLengthError is returned by Generate for lengths that cannot cover all character classes
type InvalidLengthError = passwd.InvalidLengthError

// ErrInvalidLength matches InvalidLengthError with errors.Is
var ErrInvalidLength = passwd.ErrInvalidLength

// Generate returns a random password of the given length with at least one
// uppercase letter, lowercase letter, digit and special character
func Generate(length int) (string, error) {
	return passwd.Generate(length)
}

// Evaluate scores the strength of the password
func Evaluate(password string) StrengthReport {
	return strength.Evaluate(password)
}

// ServerConfig is the configuration for the passmeter server
type ServerConfig struct {
	*types.ServerConfig
}

// NewServerConfig returns the default server configuration
func NewServerConfig() (*ServerConfig, error) {
	embedConfig, err := system.NewServerConfigEmbedded()
	if err != nil {
		return nil, err
	}
	return &ServerConfig{embedConfig}, nil
}

// Server is the instance of the passmeter server
type Server struct {
	config *ServerConfig
	server *pmserver.Server
}

// NewServer creates a new instance of the passmeter server
func NewServer(config *ServerConfig) (*Server, error) {
	server, err := pmserver.NewServer(config.ServerConfig)
	if err != nil {
		return nil, err
	}

	return &Server{
		config: config,
		server: server,
	}, nil
}

// Start starts the passmeter server
func (s *Server) Start() error {
	return s.server.Start()
}

// Addr returns the address the server is listening on
func (s *Server) Addr() string {
	return s.server.Addr()
}

// Stop stops the passmeter server
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Stop(ctx)
}

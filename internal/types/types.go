// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
)

const (
	PM_HOME             = "PM_HOME"
	INTERNAL_URL_PREFIX = "/_passmeter"
	REQUEST_ID_PREFIX   = "rid_"
	REQUEST_ID_HEADER   = "X-Request-Id"
)

type ContextKey string

const (
	REQUEST_ID ContextKey = "request_id"
)

// Config entries shared between client and server
type GlobalConfig struct {
	ConfigFile string `toml:"config_file"`
}

// ServerConfig is the configuration for the passmeter HTTP server
type ServerConfig struct {
	GlobalConfig
	Http        HttpConfig      `toml:"http"`
	Log         LogConfig       `toml:"logging"`
	Generator   GeneratorConfig `toml:"generator"`
	ProfileMode string          `toml:"profile_mode"`
}

// ClientConfig is the configuration for the passmeter CLI commands
type ClientConfig struct {
	GlobalConfig
	Client    ClientConfigStruct `toml:"client"`
	Generator GeneratorConfig    `toml:"generator"`
}

// ClientConfigStruct is the configuration for the CLI output
type ClientConfigStruct struct {
	DefaultFormat string `toml:"default_format"` // the default format for the CLI output
}

// HttpConfig is the configuration for the HTTP server
type HttpConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LogConfig is the configuration for the Logger
type LogConfig struct {
	Level         string `toml:"level"`
	MaxBackups    int    `toml:"max_backups"`
	MaxSizeMB     int    `toml:"max_size_mb"`
	Console       bool   `toml:"console"`
	File          bool   `toml:"file"`
	AccessLogging bool   `toml:"access_logging"`
}

// GeneratorConfig bounds the lengths accepted by the generate command and API
type GeneratorConfig struct {
	DefaultLength int `toml:"default_length"`
	MinLength     int `toml:"min_length"`
	MaxLength     int `toml:"max_length"`
}

// CheckLength returns an error if length is outside the configured range
func (g GeneratorConfig) CheckLength(length int) error {
	if length < g.MinLength || length > g.MaxLength {
		return fmt.Errorf("password length %d out of range, must be between %d and %d", length, g.MinLength, g.MaxLength)
	}
	return nil
}

// RequestError is the error returned by the API
type RequestError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func CreateRequestError(message string, code int) RequestError {
	return RequestError{
		Message: message,
		Code:    code,
	}
}

func (r RequestError) Error() string {
	if r.Message == "" {
		return fmt.Sprintf("status code %d", r.Code)
	} else {
		return r.Message
	}
}

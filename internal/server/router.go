// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/claceio/passmeter/internal/passwd"
	"github.com/claceio/passmeter/internal/strength"
	"github.com/claceio/passmeter/internal/types"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

const (
	LENGTH_ARG   = "length"
	EVALUATE_ARG = "evaluate"

	// MAX_BODY_BYTES limits the check request body
	MAX_BODY_BYTES = 64 * 1024
)

var COMPRESSION_ENABLED_MIME_TYPES = []string{
	"application/json",
	"text/plain",
}

// CheckRequest is the request body for the check API
type CheckRequest struct {
	Password string `json:"password"`
}

// GenerateResponse is the response for the generate API
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Report   *strength.Report `json:"report,omitempty"`
}

type Handler struct {
	*types.Logger
	config *types.ServerConfig
	server *Server
	router *chi.Mux
}

func (h *Handler) panicRecovery(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				msg := fmt.Sprint(rvr)
				fmt.Fprintf(os.Stderr, "Panic %s: %s\n", msg, string(debug.Stack()))
				h.Error().Str("request_id", getRequestId(r)).Str("panic", msg).Msg("Recovered from panic")
				h.writeError(w, types.CreateRequestError(msg, http.StatusInternalServerError))
			}
		}()

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// NewHandler creates a new handler for the passmeter APIs
func NewHandler(logger *types.Logger, config *types.ServerConfig, server *Server) *Handler {
	router := chi.NewRouter()
	handler := &Handler{
		Logger: logger,
		config: config,
		server: server,
		router: router,
	}

	router.Use(handler.handleStatus)
	router.Use(handler.panicRecovery)
	if config.Log.AccessLogging {
		router.Use(middleware.Logger)
	}
	router.Use(middleware.CleanPath)
	router.Use(middleware.Compress(5, COMPRESSION_ENABLED_MIME_TYPES...))

	router.Mount(types.INTERNAL_URL_PREFIX, handler.serveInternal())
	return handler
}

func (h *Handler) serveInternal() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.health)
	r.Post("/check", h.check)
	r.Get("/generate", h.generate)
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeResponse(w, map[string]string{"status": "ok"})
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)).Decode(&req); err != nil {
		h.Warn().Err(err).Str("request_id", getRequestId(r)).Msg("Error parsing check body")
		h.writeError(w, types.CreateRequestError("invalid request body: "+err.Error(), http.StatusBadRequest))
		return
	}
	if req.Password == "" {
		h.writeError(w, types.CreateRequestError("please enter a password to check", http.StatusBadRequest))
		return
	}

	report := strength.Evaluate(req.Password)
	h.Debug().Str("request_id", getRequestId(r)).Int("score", report.Score).
		Str("strength", string(report.Strength)).Msg("Password checked")
	h.writeResponse(w, report)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	length := h.config.Generator.DefaultLength
	if lengthStr := r.URL.Query().Get(LENGTH_ARG); lengthStr != "" {
		var err error
		length, err = strconv.Atoi(lengthStr)
		if err != nil {
			h.writeError(w, types.CreateRequestError("invalid length: "+lengthStr, http.StatusBadRequest))
			return
		}
	}
	if err := h.config.Generator.CheckLength(length); err != nil {
		h.writeError(w, types.CreateRequestError(err.Error(), http.StatusBadRequest))
		return
	}

	evaluate := false
	if evaluateStr := r.URL.Query().Get(EVALUATE_ARG); evaluateStr != "" {
		var err error
		evaluate, err = strconv.ParseBool(evaluateStr)
		if err != nil {
			h.writeError(w, types.CreateRequestError("invalid evaluate value: "+evaluateStr, http.StatusBadRequest))
			return
		}
	}

	password, err := passwd.Generate(length)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, passwd.ErrInvalidLength) {
			code = http.StatusBadRequest
		}
		h.Error().Err(err).Str("request_id", getRequestId(r)).Msg("Error generating password")
		h.writeError(w, types.CreateRequestError(err.Error(), code))
		return
	}

	response := GenerateResponse{Password: password, Length: length}
	if evaluate {
		report := strength.Evaluate(password)
		response.Report = &report
	}
	h.Debug().Str("request_id", getRequestId(r)).Int("length", length).Msg("Password generated")
	h.writeResponse(w, response)
}

func (h *Handler) writeResponse(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.Error().Err(err).Msg("Error encoding response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, reqError types.RequestError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reqError.Code)
	if err := json.NewEncoder(w).Encode(reqError); err != nil {
		h.Error().Err(err).Msg("Error encoding error response")
	}
}

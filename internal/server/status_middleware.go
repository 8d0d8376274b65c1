// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/claceio/passmeter/internal/types"
	"github.com/segmentio/ksuid"
)

// CustomResponseWriter wraps http.ResponseWriter to capture the status code.
type CustomResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (crw *CustomResponseWriter) WriteHeader(code int) {
	crw.statusCode = code
	crw.ResponseWriter.WriteHeader(code)
}

func (h *Handler) handleStatus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Add a request id to the context
		id, err := ksuid.NewRandom()
		if err != nil {
			http.Error(w, "Error generating id"+err.Error(), http.StatusInternalServerError)
			return
		}

		requestId := types.REQUEST_ID_PREFIX + id.String()
		ctx := context.WithValue(r.Context(), types.REQUEST_ID, requestId)
		r = r.WithContext(ctx)
		w.Header().Set(types.REQUEST_ID_HEADER, requestId)

		crw := &CustomResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default status
		}

		start := time.Now()
		next.ServeHTTP(crw, r)
		h.Debug().Str("request_id", requestId).Str("method", r.Method).Str("path", r.URL.Path).
			Int("status", crw.statusCode).Dur("duration", time.Since(start)).Msg("Request completed")
	})
}

// getRequestId returns the request id set by handleStatus
func getRequestId(r *http.Request) string {
	id, _ := r.Context().Value(types.REQUEST_ID).(string)
	return id
}

// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claceio/passmeter/internal/passwd"
	"github.com/claceio/passmeter/internal/strength"
	"github.com/claceio/passmeter/internal/testutil"
	"github.com/claceio/passmeter/internal/types"
)

func testConfig() *types.ServerConfig {
	return &types.ServerConfig{
		Http:      types.HttpConfig{Host: "127.0.0.1", Port: 0},
		Log:       types.LogConfig{Level: "WARN"},
		Generator: types.GeneratorConfig{DefaultLength: 12, MinLength: 8, MaxLength: 20},
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(testConfig())
	testutil.AssertNoError(t, err)
	return server
}

func doRequest(t *testing.T, server *Server, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	server := testServer(t)
	w := doRequest(t, server, http.MethodGet, "/_passmeter/health", "")
	testutil.AssertEqualsInt(t, "status", http.StatusOK, w.Code)
	testutil.AssertStringContains(t, "body", w.Body.String(), `"status":"ok"`)
	if !strings.HasPrefix(w.Header().Get(types.REQUEST_ID_HEADER), types.REQUEST_ID_PREFIX) {
		t.Errorf("missing request id header, got %q", w.Header().Get(types.REQUEST_ID_HEADER))
	}
}

func TestCheck(t *testing.T) {
	tests := map[string]struct {
		body         string
		wantCode     int
		wantScore    int
		wantStrength strength.Strength
		wantError    string
	}{
		"strong":       {body: `{"password": "Abcdefg1!"}`, wantCode: http.StatusOK, wantScore: 5, wantStrength: strength.Strong},
		"moderate":     {body: `{"password": "Abcdefg1"}`, wantCode: http.StatusOK, wantScore: 4, wantStrength: strength.Moderate},
		"common":       {body: `{"password": "MyPassword123!"}`, wantCode: http.StatusOK, wantScore: 0, wantStrength: strength.Weak},
		"empty":        {body: `{"password": ""}`, wantCode: http.StatusBadRequest, wantError: "please enter a password to check"},
		"missing":      {body: `{}`, wantCode: http.StatusBadRequest, wantError: "please enter a password to check"},
		"invalid json": {body: `{"password": `, wantCode: http.StatusBadRequest, wantError: "invalid request body"},
	}

	server := testServer(t)
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, server, http.MethodPost, "/_passmeter/check", tc.body)
			testutil.AssertEqualsInt(t, "status", tc.wantCode, w.Code)
			if tc.wantError != "" {
				var reqErr types.RequestError
				testutil.AssertNoError(t, json.NewDecoder(w.Body).Decode(&reqErr))
				testutil.AssertStringContains(t, "error", reqErr.Message, tc.wantError)
				testutil.AssertEqualsInt(t, "error code", tc.wantCode, reqErr.Code)
				return
			}

			var report strength.Report
			testutil.AssertNoError(t, json.NewDecoder(w.Body).Decode(&report))
			testutil.AssertEqualsInt(t, "score", tc.wantScore, report.Score)
			testutil.AssertEqualsString(t, "strength", string(tc.wantStrength), string(report.Strength))
		})
	}
}

func TestCheckFeedbackIsList(t *testing.T) {
	server := testServer(t)
	w := doRequest(t, server, http.MethodPost, "/_passmeter/check", `{"password": "Abcdefg1!"}`)
	testutil.AssertEqualsInt(t, "status", http.StatusOK, w.Code)
	testutil.AssertStringContains(t, "body", w.Body.String(), `"feedback":[]`)
}

func TestGenerate(t *testing.T) {
	tests := map[string]struct {
		query      string
		wantCode   int
		wantLength int
		wantReport bool
	}{
		"default":          {query: "", wantCode: http.StatusOK, wantLength: 12},
		"min":              {query: "?length=8", wantCode: http.StatusOK, wantLength: 8},
		"max with report":  {query: "?length=20&evaluate=true", wantCode: http.StatusOK, wantLength: 20, wantReport: true},
		"too short":        {query: "?length=3", wantCode: http.StatusBadRequest},
		"too long":         {query: "?length=21", wantCode: http.StatusBadRequest},
		"not a number":     {query: "?length=abc", wantCode: http.StatusBadRequest},
		"invalid evaluate": {query: "?evaluate=maybe", wantCode: http.StatusBadRequest},
	}

	server := testServer(t)
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, server, http.MethodGet, "/_passmeter/generate"+tc.query, "")
			testutil.AssertEqualsInt(t, "status", tc.wantCode, w.Code)
			if tc.wantCode != http.StatusOK {
				return
			}

			var response GenerateResponse
			testutil.AssertNoError(t, json.NewDecoder(w.Body).Decode(&response))
			testutil.AssertEqualsInt(t, "length", tc.wantLength, response.Length)
			testutil.AssertEqualsInt(t, "password length", tc.wantLength, len(response.Password))
			for _, class := range []string{passwd.UPPERCASE_CHARS, passwd.LOWERCASE_CHARS, passwd.DIGIT_CHARS, passwd.SPECIAL_CHARS} {
				if !strings.ContainsAny(response.Password, class) {
					t.Errorf("password %q missing a char from %q", response.Password, class)
				}
			}
			testutil.AssertEqualsBool(t, "has report", tc.wantReport, response.Report != nil)
			testutil.AssertEqualsString(t, "no-store", "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestNotFound(t *testing.T) {
	server := testServer(t)
	w := doRequest(t, server, http.MethodGet, "/_passmeter/unknown", "")
	testutil.AssertEqualsInt(t, "status", http.StatusNotFound, w.Code)

	w = doRequest(t, server, http.MethodGet, "/_passmeter/check", "")
	testutil.AssertEqualsInt(t, "status", http.StatusMethodNotAllowed, w.Code)
}

func TestPanicRecovery(t *testing.T) {
	h := NewHandler(testutil.TestLogger(), testConfig(), nil)
	handler := h.handleStatus(h.panicRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	testutil.AssertEqualsInt(t, "status", http.StatusInternalServerError, w.Code)
	testutil.AssertStringContains(t, "body", w.Body.String(), "test panic")
}

func TestServerStartStop(t *testing.T) {
	server := testServer(t)
	testutil.AssertNoError(t, server.Start())

	resp, err := http.Get(fmt.Sprintf("http://%s/_passmeter/health", server.Addr()))
	testutil.AssertNoError(t, err)
	resp.Body.Close()
	testutil.AssertEqualsInt(t, "status", http.StatusOK, resp.StatusCode)

	testutil.AssertNoError(t, server.Stop(context.Background()))
}

func TestNewServerInvalidRange(t *testing.T) {
	config := testConfig()
	config.Generator.MaxLength = 4
	_, err := NewServer(config)
	testutil.AssertErrorContains(t, err, "invalid generator length range")
}

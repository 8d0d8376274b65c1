// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"testing"
)

func TestCheckLength(t *testing.T) {
	g := GeneratorConfig{DefaultLength: 12, MinLength: 8, MaxLength: 20}
	tests := map[string]struct {
		length  int
		wantErr bool
	}{
		"min":       {length: 8},
		"max":       {length: 20},
		"default":   {length: 12},
		"too short": {length: 7, wantErr: true},
		"too long":  {length: 21, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := g.CheckLength(tc.length)
			if (err != nil) != tc.wantErr {
				t.Errorf("want error %t got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRequestError(t *testing.T) {
	if got := CreateRequestError("", 400).Error(); got != "status code 400" {
		t.Errorf("want status code 400 got %s", got)
	}
	if got := CreateRequestError("bad length", 400).Error(); got != "bad length" {
		t.Errorf("want bad length got %s", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logger := NewLogger(&LogConfig{Level: "debug"})
	if logger.GetLevel().String() != "debug" {
		t.Errorf("want debug got %s", logger.GetLevel())
	}
	logger = NewLogger(&LogConfig{Level: "unknown"})
	if logger.GetLevel().String() != "info" {
		t.Errorf("want info got %s", logger.GetLevel())
	}
}

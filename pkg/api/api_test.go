// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"testing"

	"github.com/claceio/passmeter/internal/testutil"
)

func TestGenerateAndEvaluate(t *testing.T) {
	password, err := Generate(16)
	testutil.AssertNoError(t, err)
	testutil.AssertEqualsInt(t, "length", 16, len(password))

	report := Evaluate("Abcdefg1!")
	testutil.AssertEqualsInt(t, "score", 5, report.Score)

	_, err = Generate(3)
	testutil.AssertEqualsBool(t, "invalid length", true, errors.Is(err, ErrInvalidLength))
	var lenErr InvalidLengthError
	testutil.AssertEqualsBool(t, "error type", true, errors.As(err, &lenErr))
}

func TestNewServerConfig(t *testing.T) {
	config, err := NewServerConfig()
	testutil.AssertNoError(t, err)
	testutil.AssertEqualsInt(t, "port", 25232, config.Http.Port)
	testutil.AssertEqualsInt(t, "default length", 12, config.Generator.DefaultLength)
}

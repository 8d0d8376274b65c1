// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"strings"
	"testing"
)

func AssertEqualsString(tb testing.TB, msg, want, got string) {
	tb.Helper()
	if want != got {
		tb.Errorf("%s want %s got %s", msg, want, got)
	}
}

func AssertEqualsInt(tb testing.TB, msg string, want, got int) {
	tb.Helper()
	if want != got {
		tb.Errorf("%s want %d got %d", msg, want, got)
	}
}

func AssertEqualsBool(tb testing.TB, msg string, want, got bool) {
	tb.Helper()
	if want != got {
		tb.Errorf("%s want %t got %t", msg, want, got)
	}
}

func AssertEqualsError(tb testing.TB, msg string, want, got error) {
	tb.Helper()
	if want == nil || got == nil {
		if want != got {
			tb.Errorf("%s want %v got %v", msg, want, got)
		}
		return
	}
	if want.Error() != got.Error() {
		tb.Errorf("%s want %s got %s", msg, want, got)
	}
}

func AssertNoError(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %s", err)
	}
}

func AssertErrorContains(tb testing.TB, err error, want string) {
	tb.Helper()
	if err == nil {
		tb.Errorf("expected error containing msg `%s`, got nil", want)
		return
	}
	if !strings.Contains(err.Error(), want) {
		tb.Errorf("expected error containing msg `%s`, got: `%s`", want, err.Error())
	}
}

func AssertStringContains(tb testing.TB, msg, got, want string) {
	tb.Helper()
	if !strings.Contains(got, want) {
		tb.Errorf("%s expected `%s` to contain `%s`", msg, got, want)
	}
}

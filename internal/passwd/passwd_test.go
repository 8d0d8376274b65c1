// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package passwd

import (
	"errors"
	"strings"
	"testing"

	"github.com/claceio/passmeter/internal/testutil"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{4, 5, 8, 12, 20, 64} {
		password, err := Generate(length)
		if err != nil {
			t.Fatalf("unexpected error for length %d: %v", length, err)
		}
		testutil.AssertEqualsInt(t, "length", length, len(password))
	}
}

func TestGenerateClassCoverage(t *testing.T) {
	// Length 4 leaves no room for fill characters, so every class shows up exactly once
	for i := 0; i < 200; i++ {
		for _, length := range []int{4, 8, 16} {
			password, err := Generate(length)
			if err != nil {
				t.Fatal(err)
			}
			for _, class := range requiredClasses {
				if !strings.ContainsAny(password, class) {
					t.Fatalf("password %q missing a char from %q", password, class)
				}
			}
			for _, c := range password {
				if !strings.ContainsRune(PASSWORD_CHARS, c) {
					t.Fatalf("password %q has unexpected char %q", password, c)
				}
			}
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	tests := map[string]int{
		"three":    3,
		"zero":     0,
		"negative": -5,
	}

	for name, length := range tests {
		t.Run(name, func(t *testing.T) {
			password, err := Generate(length)
			if err == nil {
				t.Fatalf("expected error, got password %q", password)
			}
			testutil.AssertEqualsBool(t, "is invalid length", true, errors.Is(err, ErrInvalidLength))
			var lenErr InvalidLengthError
			if !errors.As(err, &lenErr) {
				t.Fatalf("expected InvalidLengthError, got %T", err)
			}
			testutil.AssertEqualsInt(t, "length", length, lenErr.Length)
			testutil.AssertEqualsInt(t, "min length", MIN_LENGTH, lenErr.MinLength)
			testutil.AssertErrorContains(t, err, "must be at least 4")
		})
	}
}

func TestGenerateUniqueness(t *testing.T) {
	a, err := Generate(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(32)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("two generated passwords are identical: %q", a)
	}
}

func TestShufflePosition(t *testing.T) {
	// Without the shuffle the first char would always be uppercase
	upperFirst := 0
	for i := 0; i < 200; i++ {
		password, err := Generate(4)
		if err != nil {
			t.Fatal(err)
		}
		if strings.ContainsRune(UPPERCASE_CHARS, rune(password[0])) {
			upperFirst++
		}
	}
	if upperFirst == 200 {
		t.Errorf("uppercase char was first in every password, shuffle not applied")
	}
}

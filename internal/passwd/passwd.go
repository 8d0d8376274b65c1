// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package passwd

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	UPPERCASE_CHARS = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LOWERCASE_CHARS = "abcdefghijklmnopqrstuvwxyz"
	DIGIT_CHARS     = "0123456789"
	SPECIAL_CHARS   = "!@#$%^&*"
	PASSWORD_CHARS  = UPPERCASE_CHARS + LOWERCASE_CHARS + DIGIT_CHARS + SPECIAL_CHARS

	// MIN_LENGTH is the shortest password that can hold one character of each class
	MIN_LENGTH = 4
)

// ErrInvalidLength is matched by every InvalidLengthError
var ErrInvalidLength = errors.New("invalid password length")

// InvalidLengthError is returned when the requested length cannot cover all the
// character classes
type InvalidLengthError struct {
	Length    int
	MinLength int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid password length %d, must be at least %d", e.Length, e.MinLength)
}

func (e InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// requiredClasses are the character sets each generated password draws at least one character from
var requiredClasses = []string{UPPERCASE_CHARS, LOWERCASE_CHARS, DIGIT_CHARS, SPECIAL_CHARS}

// randomIndex returns a uniform random int in [0, n) read from crypto/rand
func randomIndex(n int) (int, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("error reading random source: %w", err)
	}
	return int(idx.Int64()), nil
}

func randomChar(charsAllowed string) (byte, error) {
	idx, err := randomIndex(len(charsAllowed))
	if err != nil {
		return 0, err
	}
	return charsAllowed[idx], nil
}

// shuffle does an in place Fisher-Yates shuffle using crypto/rand
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// Generate creates a random password of the given length. The password has at
// least one uppercase letter, one lowercase letter, one digit and one of the
// SPECIAL_CHARS. All random choices, including the final shuffle, use crypto/rand.
func Generate(length int) (string, error) {
	if length < MIN_LENGTH {
		return "", InvalidLengthError{Length: length, MinLength: MIN_LENGTH}
	}

	password := make([]byte, 0, length)
	for _, class := range requiredClasses {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := randomChar(PASSWORD_CHARS)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// The class characters are at the front until shuffled
	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

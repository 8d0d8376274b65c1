// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	MIN_LENGTH       = 8
	STRONG_LENGTH    = 12
	SPECIAL_CHARS    = "!@#$%^&*"
	MAX_SCORE        = 5
	MODERATE_SCORE   = 4
	FEEDBACK_LENGTH  = "Password should be at least 8 characters long."
	FEEDBACK_UPPER   = "Include at least one uppercase letter."
	FEEDBACK_LOWER   = "Include at least one lowercase letter."
	FEEDBACK_DIGIT   = "Add at least one number (0-9)."
	FEEDBACK_SPECIAL = "Include at least one special character (!@#$%^&*)."
	FEEDBACK_COMMON  = "Avoid common password patterns."
)

// Strength is the rating derived from the final score
type Strength string

const (
	Weak     Strength = "Weak"
	Moderate Strength = "Moderate"
	Strong   Strength = "Strong"
)

// Color is a display hint, it is not used by the evaluation logic
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

type rating struct {
	marker  string
	color   Color
	message string
}

var ratings = map[Strength]rating{
	Strong:   {marker: "💪", color: ColorGreen, message: "Excellent! Your password is highly secure."},
	Moderate: {marker: "🟡", color: ColorOrange, message: "Good password, but consider adding complexity."},
	Weak:     {marker: "🚨", color: ColorRed, message: "Weak Password - Please improve using suggestions."},
}

// commonPasswords are matched as case insensitive substrings, not whole words
var commonPasswords = []string{
	"password", "123456", "qwerty", "admin",
	"letmein", "welcome", "monkey", "password123",
}

// Report is the result of evaluating a password
type Report struct {
	Score         int      `json:"score"`
	Strength      Strength `json:"strength"`
	Marker        string   `json:"marker"`
	StatusMessage string   `json:"status_message"`
	StatusColor   Color    `json:"status_color"`
	Feedback      []string `json:"feedback"`
}

// Label returns the strength with its marker, like "Strong 💪"
func (r Report) Label() string {
	return string(r.Strength) + " " + r.Marker
}

// Passed returns true if no rule failed
func (r Report) Passed() bool {
	return len(r.Feedback) == 0
}

type rule struct {
	feedback string
	points   func(password string) int
}

// rules are checked in order, feedback is added in the same order
var rules = []rule{
	{feedback: FEEDBACK_LENGTH, points: lengthPoints},
	{feedback: FEEDBACK_UPPER, points: containsRange('A', 'Z')},
	{feedback: FEEDBACK_LOWER, points: containsRange('a', 'z')},
	{feedback: FEEDBACK_DIGIT, points: containsRange('0', '9')},
	{feedback: FEEDBACK_SPECIAL, points: containsAny(SPECIAL_CHARS)},
}

func lengthPoints(password string) int {
	length := utf8.RuneCountInString(password)
	switch {
	case length >= STRONG_LENGTH:
		return 2
	case length >= MIN_LENGTH:
		return 1
	default:
		return 0
	}
}

// containsRange matches ASCII characters only, non Latin letters are not counted
func containsRange(lo, hi rune) func(string) int {
	return func(password string) int {
		for _, c := range password {
			if c >= lo && c <= hi {
				return 1
			}
		}
		return 0
	}
}

func containsAny(chars string) func(string) int {
	return func(password string) int {
		if strings.ContainsAny(password, chars) {
			return 1
		}
		return 0
	}
}

// IsCommon checks whether the password contains one of the common password patterns
func IsCommon(password string) bool {
	lower := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lower, common) {
			return true
		}
	}
	return false
}

// BlacklistPenalty applies the common password penalty to a score. This is
// min(score-1, 0), so any positive score drops to zero instead of losing a single
// point. Kept as is for compatibility with existing ratings, a zero score becomes -1
// and is floored by Evaluate.
func BlacklistPenalty(score int) int {
	return min(score-1, 0)
}

// Rate returns the strength for a final score
func Rate(score int) Strength {
	switch {
	case score == MAX_SCORE:
		return Strong
	case score == MODERATE_SCORE:
		return Moderate
	default:
		return Weak
	}
}

// Evaluate scores the password against the rule set. It has no side effects and
// the same input always gives the same report.
func Evaluate(password string) Report {
	score := 0
	feedback := []string{}

	for _, r := range rules {
		points := r.points(password)
		if points == 0 {
			feedback = append(feedback, r.feedback)
		}
		score += points
	}
	// Length can give two points, so all rules passing adds up to one more than MAX_SCORE
	score = min(score, MAX_SCORE)

	if IsCommon(password) {
		score = BlacklistPenalty(score)
		feedback = append(feedback, FEEDBACK_COMMON)
	}
	score = max(score, 0)

	strength := Rate(score)
	rt := ratings[strength]
	return Report{
		Score:         score,
		Strength:      strength,
		Marker:        rt.marker,
		StatusMessage: rt.message,
		StatusColor:   rt.color,
		Feedback:      feedback,
	}
}

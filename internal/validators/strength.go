// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode/utf8"
)

// StrengthLevel is a coarse password strength bucket for UI meters.
type StrengthLevel int

const (
	StrengthEmpty StrengthLevel = iota
	StrengthWeak
	StrengthFair
	StrengthGood
	StrengthStrong
)

func (l StrengthLevel) String() string {
	switch l {
	case StrengthWeak:
		return "Weak"
	case StrengthFair:
		return "Fair"
	case StrengthGood:
		return "Good"
	case StrengthStrong:
		return "Strong"
	default:
		return ""
	}
}

// commonFragments are substrings that make a password easy to guess even
// when padded with other characters.
var commonFragments = []string{
	"password", "123456", "qwerty", "admin", "letmein", "welcome", "monkey", "master", "journal",
}

// Strength scores a password from 0 to 100. It is advisory only; the
// policy enforced before encryption is [PasswordValidator].
func Strength(password string) (int, StrengthLevel) {
	if password == "" {
		return 0, StrengthEmpty
	}

	n := utf8.RuneCountInString(password)

	lengthScore := 0
	switch {
	case n >= 20:
		lengthScore = 40
	case n >= 16:
		lengthScore = 35
	case n >= 12:
		lengthScore = 25
	case n >= 8:
		lengthScore = 15
	case n >= 6:
		lengthScore = 5
	}

	c := classify(password)
	variety := 0
	for _, ok := range []bool{c.lower, c.upper, c.digit, c.special} {
		if ok {
			variety++
		}
	}

	unique := make(map[rune]struct{})
	for _, r := range password {
		unique[r] = struct{}{}
	}
	uniqueScore := 0
	switch ratio := float64(len(unique)) / float64(n); {
	case ratio >= 0.9:
		uniqueScore = 20
	case ratio >= 0.7:
		uniqueScore = 15
	case ratio >= 0.5:
		uniqueScore = 10
	case ratio >= 0.3:
		uniqueScore = 5
	}

	penalty := 0
	lower := strings.ToLower(password)
	for _, w := range commonFragments {
		if strings.Contains(lower, w) {
			penalty += 20
			break
		}
	}

	// runs like "abc" or "321"
	seq := 0
	runes := []rune(password)
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 || runes[i] == runes[i-1]-1 {
			seq++
		}
	}
	if seq > 3 {
		penalty += 10
	}

	score := min(max(lengthScore+variety*10+uniqueScore-penalty, 0), 100)

	switch {
	case score >= 70:
		return score, StrengthStrong
	case score >= 50:
		return score, StrengthGood
	case score >= 30:
		return score, StrengthFair
	default:
		return score, StrengthWeak
	}
}

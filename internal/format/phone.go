// Package format normalizes heterogeneous ClickUp field data into canonical
// display forms.
package format

// file: internal/format/phone.go

import (
	"regexp"
	"strings"
)

// extensionPattern matches a trailing extension token in any of its common
// spellings: "x206", "ext206", "ext.206", "ext 206", "extension 206".
var extensionPattern = regexp.MustCompile(`(?i)[\s.,;-]*(?:ext(?:ension)?\s*\.?\s*|x\s*)\d+\s*$`)

// NormalizePhone converts arbitrary phone-number text into E.164 form.
// It returns the empty string when the input is not a valid phone number;
// it never fails. Normalization is idempotent: feeding a previous result
// back in yields the same result.
//
// The rules, in order:
//   - blank input is rejected;
//   - a trailing extension suffix is stripped along with everything after it;
//   - punctuation (spaces, dots, dashes, parentheses) is removed, keeping
//     only digits and remembering whether a leading "+" was present;
//   - fewer than 10 or more than 15 digits is rejected, as is a leading zero
//     (no E.164 country code starts with 0);
//   - a bare 10-digit number is assumed NANP and prefixed "+1"; an 11-digit
//     number starting with 1 gets "+"; any other 11-15 digit number is taken
//     as an international number typed without its "+".
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = extensionPattern.ReplaceAllString(s, "")
	hadPlus := strings.HasPrefix(s, "+")

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < 10 || len(digits) > 15 {
		return ""
	}
	if digits[0] == '0' {
		return ""
	}

	var candidate string
	switch {
	case hadPlus:
		candidate = "+" + digits
	case len(digits) == 11 && digits[0] == '1':
		// NANP number with its country code typed but no "+".
		if digits[1] == '0' {
			return ""
		}
		candidate = "+" + digits
	case len(digits) == 10:
		candidate = "+1" + digits
	default:
		// International number typed without "+".
		candidate = "+" + digits
	}

	if l := len(candidate); l < 11 || l > 16 {
		return ""
	}
	return candidate
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package format

import (
	"strings"
	"unicode/utf8"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LowerTrim trims surrounding whitespace and lowercases s.
func LowerTrim(s string) string {
	if isBlank(s) {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// UpperTrim trims surrounding whitespace and uppercases s.
func UpperTrim(s string) string {
	if isBlank(s) {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

// DigitsOnly removes every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	if isBlank(s) {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Truncate returns the first n characters of s, or s itself when it is shorter.
func Truncate(s string, n int) string {
	if isBlank(s) || n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) < n {
		return s
	}
	return string(runes[:n])
}

// removeChars drops every occurrence of the characters in cutset.
func removeChars(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

// leftPad pads s with leading zeros to width characters.
func leftPad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat("0", width-n) + s
}

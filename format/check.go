/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package format

import (
	"strings"
)

var (
	cpfWeights1  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCPF reports whether s, formatted or not, is a CPF with correct check digits.
func ValidCPF(s string) bool {
	digits, ok := documentDigits(s, cpfLength)
	if !ok {
		return false
	}
	return mod11(digits[:9], cpfWeights1) == digits[9] &&
		mod11(digits[:10], cpfWeights2) == digits[10]
}

// ValidCNPJ reports whether s, formatted or not, is a CNPJ with correct check digits.
func ValidCNPJ(s string) bool {
	digits, ok := documentDigits(s, cnpjLength)
	if !ok {
		return false
	}
	return mod11(digits[:12], cnpjWeights1) == digits[12] &&
		mod11(digits[:13], cnpjWeights2) == digits[13]
}

// ValidCEP reports whether s is an 8-digit postal code, with or without separators.
func ValidCEP(s string) bool {
	if isBlank(s) {
		return false
	}
	stripped := StripCEP(s)
	if len(stripped) != cepLength {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// documentDigits strips separators and returns the digits of s when it has
// exactly length of them, all digits, and not all equal.
func documentDigits(s string, length int) ([]int, bool) {
	if isBlank(s) {
		return nil, false
	}
	stripped := removeChars(strings.TrimSpace(s), documentSeparators)
	if len(stripped) != length {
		return nil, false
	}

	digits := make([]int, length)
	same := true
	for i, r := range stripped {
		if r < '0' || r > '9' {
			return nil, false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}
	if same {
		return nil, false
	}
	return digits, true
}

func mod11(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

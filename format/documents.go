/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package format

import (
	"strings"
	"unicode/utf8"
)

const (
	cpfLength  = 11
	cnpjLength = 14
	cepLength  = 8

	documentSeparators = ".-/"
	cepSeparators      = ".-"
)

// CPF formats s as 000.000.000-00. Shorter input is reduced to its digits and
// left-padded with zeros; input of 11 or more characters is returned trimmed
// but otherwise unchanged.
func CPF(s string) string {
	if isBlank(s) {
		return strings.Repeat("0", cpfLength)
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) >= cpfLength {
		return s
	}
	return maskCPF(leftPad(DigitsOnly(s), cpfLength))
}

// CNPJ formats s as 00.000.000/0000-00, with the same padding rules as CPF.
func CNPJ(s string) string {
	if isBlank(s) {
		return strings.Repeat("0", cnpjLength)
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) >= cnpjLength {
		return s
	}
	return maskCNPJ(leftPad(DigitsOnly(s), cnpjLength))
}

// maskCPF inserts the CPF separators into 11 digits. Any other length is returned as is.
func maskCPF(d string) string {
	if len(d) != cpfLength || DigitsOnly(d) != d {
		return d
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

func maskCNPJ(d string) string {
	if len(d) != cnpjLength || DigitsOnly(d) != d {
		return d
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// StripDocument removes CPF/CNPJ separators and left-pads the result to 11
// digits, or to 14 when it is longer than 11.
func StripDocument(s string) string {
	if isBlank(s) {
		return ""
	}
	s = removeChars(strings.TrimSpace(s), documentSeparators)
	if utf8.RuneCountInString(s) <= cpfLength {
		return leftPad(s, cpfLength)
	}
	return leftPad(s, cnpjLength)
}

// CEP formats s as 00000-000. Existing separators are dropped first and short
// input is left-padded to 8 characters.
func CEP(s string) string {
	if isBlank(s) {
		return "00000-000"
	}
	r := []rune(leftPad(removeChars(strings.TrimSpace(s), cepSeparators), cepLength))
	return string(r[:5]) + "-" + string(r[5:])
}

// StripCEP removes the "." and "-" separators of a postal code.
func StripCEP(s string) string {
	if isBlank(s) {
		return strings.Repeat("0", cepLength)
	}
	return removeChars(strings.TrimSpace(s), cepSeparators)
}

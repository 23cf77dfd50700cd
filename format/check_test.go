/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25", "12345678909", " 123.456.789-09 "}
	for _, s := range valid {
		assert.True(t, ValidCPF(s), s)
	}

	invalid := []string{"", "52998224724", "11111111111", "5299822472", "529982247250", "5299822472a"}
	for _, s := range invalid {
		assert.False(t, ValidCPF(s), s)
	}
}

func TestValidCNPJ(t *testing.T) {
	valid := []string{"11222333000181", "11.222.333/0001-81", "00000000000191"}
	for _, s := range valid {
		assert.True(t, ValidCNPJ(s), s)
	}

	invalid := []string{"", "11222333000182", "00000000000000", "1122233300018", "11.222.333/0001-8x"}
	for _, s := range invalid {
		assert.False(t, ValidCNPJ(s), s)
	}
}

func TestValidCEP(t *testing.T) {
	assert.True(t, ValidCEP("13083-970"))
	assert.True(t, ValidCEP("13083970"))
	assert.False(t, ValidCEP(""))
	assert.False(t, ValidCEP("1308397"))
	assert.False(t, ValidCEP("13083-97a"))
}

package faucet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	valid := []string{
		"0x742d35cc6635bb0000000000000000000000dead",
		"0x0000000000000000000000000000000000000000",
		"0x742D35CC6635BB0000000000000000000000DEAD",
		"0xAbCdEf0123456789aBcDeF0123456789abcdef01",
	}
	for _, address := range valid {
		assert.True(t, IsValidAddress(address), address)
	}

	invalid := []string{
		"",
		"not-an-address",
		"742d35cc6635bb0000000000000000000000dead",                    // missing prefix
		"0x742d35cc6635bb0000000000000000000000dea",                   // too short
		"0x742d35cc6635bb0000000000000000000000deadb",                 // too long
		"0x742d35cc6635bb0000000000000000000000deag",                  // non-hex
		"0x 42d35cc6635bb0000000000000000000000dead",                  // whitespace
		"1x742d35cc6635bb0000000000000000000000dead",                  // wrong prefix
		"0x" + strings.Repeat("z", hexDigits),                         // non-hex, right length
		"0x742d35cc6635bb0000000000000000000000dead\n",                // trailing junk
		strings.Repeat("0", hexDigits+2),                              // no 0x at all
	}
	for _, address := range invalid {
		assert.False(t, IsValidAddress(address), address)
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xabcdef0123456789abcdef0123456789abcdef01",
		NormalizeAddress("0xAbCdEf0123456789aBcDeF0123456789abcdef01"))
}

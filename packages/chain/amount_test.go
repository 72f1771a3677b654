package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtherToWei(t *testing.T) {
	tests := map[string]string{
		"0.1":   "100000000000000000",
		"1":     "1000000000000000000",
		"10":    "10000000000000000000",
		"0":     "0",
		"2.5":   "2500000000000000000",
		"0.001": "1000000000000000",
	}
	for amount, expected := range tests {
		wei, err := EtherToWei(amount)
		require.NoError(t, err, amount)
		assert.Equal(t, expected, wei.String(), amount)
	}

	for _, amount := range []string{"", "abc", "-1", "0.0000000000000000001", "1,5"} {
		_, err := EtherToWei(amount)
		assert.Error(t, err, amount)
	}
}

func TestWeiToEther(t *testing.T) {
	tests := map[string]string{
		"100000000000000000":   "0.1",
		"1000000000000000000":  "1",
		"10000000000000000000": "10",
		"0":                    "0",
		"1":                    "0.000000000000000001",
	}
	for wei, expected := range tests {
		value, ok := new(big.Int).SetString(wei, 10)
		require.True(t, ok)
		assert.Equal(t, expected, WeiToEther(value), wei)
	}
}

func TestParsePrivateKey(t *testing.T) {
	const keyHex = "4f3edf983ac636a65a842ce7c78d9aa706d3b113bce9c46f30d7d21715b23b1d"

	key, err := ParsePrivateKey(keyHex)
	require.NoError(t, err)
	assert.NotNil(t, key)

	withPrefix, err := ParsePrivateKey("0x" + keyHex)
	require.NoError(t, err)
	assert.Equal(t, key.D, withPrefix.D)

	for _, malformed := range []string{"", "0x", "zz", keyHex[:10], keyHex + "00"} {
		_, err := ParsePrivateKey(malformed)
		assert.Error(t, err, malformed)
	}
}

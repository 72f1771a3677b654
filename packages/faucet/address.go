package faucet

import "strings"

// AddressLength is the number of bytes of an account address.
const AddressLength = 20

// hexDigits is the number of hex characters encoding an address, excluding the 0x prefix.
const hexDigits = AddressLength * 2

// IsValidAddress returns true if the given string is a syntactically valid account
// address: the 0x prefix followed by exactly 40 hex digits. Checksum casing is not
// verified here, it is the chain client's business.
func IsValidAddress(address string) bool {
	if len(address) != hexDigits+2 {
		return false
	}
	if address[0] != '0' || (address[1] != 'x' && address[1] != 'X') {
		return false
	}
	for _, c := range address[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormalizeAddress lowercases an address so that it can be used as a map key.
// All internal keying of addresses uses the normalized form.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

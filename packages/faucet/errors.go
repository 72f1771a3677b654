package faucet

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidAddress is returned when the recipient address is missing or does not
	// have the expected syntactic shape.
	ErrInvalidAddress = errors.New("invalid recipient address")

	// ErrCooldownActive is returned when the recipient address has already been funded
	// within the current cooldown window.
	ErrCooldownActive = errors.New("address is in cooldown")

	// ErrReserveLow is returned when the faucet reserve is at or below the configured
	// minimum operating balance and no disbursement may be attempted.
	ErrReserveLow = errors.New("faucet reserve below minimum")

	// ErrRecipientFunded is returned when the recipient already holds at least the
	// configured balance ceiling.
	ErrRecipientFunded = errors.New("recipient already has sufficient funds")

	// ErrChainClient wraps any failure reported by the chain client while querying
	// balances or broadcasting the transfer.
	ErrChainClient = errors.New("chain client failure")
)

package faucet

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Connector is the set of chain operations the faucet relies on. The signing of the
// transfer and the wire protocol towards the node are entirely the connector's
// business, the faucet only ever sees opaque transaction hashes.
type Connector interface {
	// ReserveBalance returns the current balance of the faucet's signing identity.
	ReserveBalance(ctx context.Context) (*big.Int, error)
	// BalanceOf returns the current balance of the given address.
	BalanceOf(ctx context.Context, address string) (*big.Int, error)
	// SendTransfer signs and broadcasts a plain value transfer and returns its hash.
	SendTransfer(ctx context.Context, to string, amount *big.Int) (txHash string, err error)
	// WaitConfirmed blocks until the given transaction is included in a block or the
	// context expires.
	WaitConfirmed(ctx context.Context, txHash string) (blockNumber uint64, err error)
}

// Disbursement is the outcome of one successful faucet request. It only lives for the
// duration of the request/response cycle and is never persisted.
type Disbursement struct {
	TxHash      string
	Amount      *big.Int
	BlockNumber uint64
	Confirmed   bool
}

// Options holds the operating limits of the faucet.
type Options struct {
	// AmountPerRequest is the fixed amount (in the chain's base unit) disbursed per
	// successful request.
	AmountPerRequest *big.Int
	// MinReserve is the minimum operating balance. Requests are rejected while the
	// reserve does not exceed it.
	MinReserve *big.Int
	// RecipientCeiling rejects recipients that already hold at least this balance.
	RecipientCeiling *big.Int
	// CooldownWindow is the minimum time between two disbursements to one address.
	CooldownWindow time.Duration
	// MaxConfirmationWait bounds the wait for one confirmation after broadcasting.
	// Zero skips the wait entirely.
	MaxConfirmationWait time.Duration
}

// Faucet orchestrates a single disbursement end to end: validate the address, check
// the cooldown, check the reserve and the recipient ceiling, hand the transfer to the
// connector and record the cooldown.
type Faucet struct {
	connector Connector
	cooldown  *CooldownTracker
	opts      Options

	// fundingMu serializes the whole admission and disbursement sequence so that two
	// concurrent requests for the same address have exactly one winner.
	fundingMu sync.Mutex
}

// New creates a faucet backed by the given connector.
func New(connector Connector, opts Options) *Faucet {
	return &Faucet{
		connector: connector,
		cooldown:  NewCooldownTracker(opts.CooldownWindow),
		opts:      opts,
	}
}

// Disburse runs one faucet request. It short-circuits on the first failed check and
// returns one of the package sentinel errors; connector failures are additionally
// marked with ErrChainClient.
func (f *Faucet) Disburse(ctx context.Context, address string) (*Disbursement, error) {
	if address == "" || !IsValidAddress(address) {
		return nil, ErrInvalidAddress
	}

	f.fundingMu.Lock()
	defer f.fundingMu.Unlock()

	if !f.cooldown.Eligible(address) {
		return nil, ErrCooldownActive
	}

	reserve, err := f.connector.ReserveBalance(ctx)
	if err != nil {
		return nil, errors.Mark(err, ErrChainClient)
	}
	if reserve.Cmp(f.opts.MinReserve) <= 0 {
		return nil, ErrReserveLow
	}

	recipientBalance, err := f.connector.BalanceOf(ctx, address)
	if err != nil {
		return nil, errors.Mark(err, ErrChainClient)
	}
	if recipientBalance.Cmp(f.opts.RecipientCeiling) >= 0 {
		return nil, ErrRecipientFunded
	}

	txHash, err := f.connector.SendTransfer(ctx, address, f.opts.AmountPerRequest)
	if err != nil {
		return nil, errors.Mark(err, ErrChainClient)
	}

	// The cooldown is consumed as soon as the transfer is broadcast. A slow or failed
	// confirmation never re-opens the window, so the faucet can not double-pay.
	f.cooldown.Record(address)

	result := &Disbursement{
		TxHash: txHash,
		Amount: new(big.Int).Set(f.opts.AmountPerRequest),
	}

	if f.opts.MaxConfirmationWait > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, f.opts.MaxConfirmationWait)
		defer cancel()

		if blockNumber, waitErr := f.connector.WaitConfirmed(waitCtx, txHash); waitErr == nil {
			result.BlockNumber = blockNumber
			result.Confirmed = true
		}
	}

	return result, nil
}

// AmountPerRequest returns the fixed amount disbursed per request.
func (f *Faucet) AmountPerRequest() *big.Int {
	return new(big.Int).Set(f.opts.AmountPerRequest)
}

// CooldownWindow returns the configured cooldown window.
func (f *Faucet) CooldownWindow() time.Duration {
	return f.opts.CooldownWindow
}

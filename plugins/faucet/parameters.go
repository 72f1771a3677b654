package faucet

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the
// faucet plugin.
type ParametersDefinition struct {
	// AmountPerRequest is the fixed ether amount sent per successful request.
	AmountPerRequest string `default:"0.1" usage:"the fixed ether amount sent per request"`
	// MinReserve is the minimum operating balance of the faucet wallet. Requests are
	// rejected while the reserve does not exceed it.
	MinReserve string `default:"1" usage:"the minimum ether reserve required to keep serving requests"`
	// RecipientCeiling rejects recipients that already hold at least this ether balance.
	RecipientCeiling string `default:"10" usage:"the recipient balance above which requests are rejected"`
	// CooldownWindow is the minimum time between two disbursements to the same address.
	CooldownWindow time.Duration `default:"1h" usage:"the per-address cooldown window"`
	// MaxConfirmationWait bounds the wait for one confirmation after broadcasting. The
	// request still succeeds when the wait expires, just without a block number.
	MaxConfirmationWait time.Duration `default:"30s" usage:"the maximum time to wait for one confirmation"`
}

// Parameters contains the configuration parameters of the faucet plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "faucet")
}

package chain

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/params"
)

// EtherToWei parses a decimal ether amount (e.g. "0.1") into wei. Negative amounts and
// amounts with more than 18 fractional digits are rejected.
func EtherToWei(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, errors.New("amount must not be empty")
	}

	value, ok := new(big.Rat).SetString(amount)
	if !ok {
		return nil, errors.Newf("malformed amount %q", amount)
	}
	if value.Sign() < 0 {
		return nil, errors.Newf("amount %q must not be negative", amount)
	}

	value.Mul(value, new(big.Rat).SetInt64(params.Ether))
	if !value.IsInt() {
		return nil, errors.Newf("amount %q has sub-wei precision", amount)
	}

	return value.Num(), nil
}

// WeiToEther renders a wei amount as a decimal ether string with trailing zeros
// trimmed, e.g. 100000000000000000 -> "0.1".
func WeiToEther(wei *big.Int) string {
	value := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether))
	rendered := value.FloatString(18)

	rendered = strings.TrimRight(rendered, "0")
	rendered = strings.TrimSuffix(rendered, ".")
	if rendered == "" || rendered == "-" {
		return "0"
	}
	return rendered
}

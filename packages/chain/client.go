package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// transferGasLimit is the fixed gas allowance of a plain value transfer.
const transferGasLimit = 21000

// receiptPollInterval is how often WaitConfirmed polls for the transaction receipt.
const receiptPollInterval = time.Second

var (
	// ErrInsufficientFunds marks broadcast failures caused by the faucet wallet not
	// covering value plus fees.
	ErrInsufficientFunds = errors.New("insufficient funds in faucet wallet")

	// ErrTransactionFailed is returned when a confirmed transaction ended up reverted.
	ErrTransactionFailed = errors.New("transaction failed on chain")
)

// Client talks to a single EVM node over JSON-RPC and signs transfers with the faucet
// key. It implements faucet.Connector.
type Client struct {
	eth     *ethclient.Client
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	timeout time.Duration
}

// Dial connects to the given RPC endpoint and prepares the signing identity from the
// hex-encoded private key (a 0x prefix is accepted). The chain ID is resolved once at
// startup and reused for signing.
func Dial(ctx context.Context, rpcEndpoint, privateKeyHex string, timeout time.Duration) (*Client, error) {
	key, err := ParsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	eth, err := ethclient.DialContext(ctx, rpcEndpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to RPC endpoint %s", rpcEndpoint)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, errors.Wrap(err, "failed to query chain ID")
	}

	return &Client{
		eth:     eth,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		timeout: timeout,
	}, nil
}

// ParsePrivateKey decodes a hex-encoded secp256k1 private key, with or without a 0x
// prefix.
func ParsePrivateKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if trimmed == "" {
		return nil, errors.New("private key must not be empty")
	}
	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "malformed private key")
	}
	return key, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// FaucetAddress returns the address of the signing identity.
func (c *Client) FaucetAddress() string {
	return c.address.Hex()
}

// ChainID returns the chain ID resolved at startup.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// ReserveBalance returns the live balance of the faucet wallet. It is never cached.
func (c *Client) ReserveBalance(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	balance, err := c.eth.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query faucet balance")
	}
	return balance, nil
}

// BalanceOf returns the live balance of the given address.
func (c *Client) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	balance, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query balance of %s", address)
	}
	return balance, nil
}

// GasPrice returns the node's current gas price suggestion.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query gas price")
	}
	return gasPrice, nil
}

// SendTransfer signs and broadcasts a plain value transfer of amount wei to the given
// address and returns the transaction hash.
func (c *Client) SendTransfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	nonce, err := c.eth.PendingNonceAt(ctx, c.address)
	if err != nil {
		return "", errors.Wrap(err, "failed to query nonce")
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to query gas price")
	}

	recipient := common.HexToAddress(to)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &recipient,
		Value:    amount,
		Gas:      transferGasLimit,
		GasPrice: gasPrice,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign transaction")
	}

	if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
		if strings.Contains(err.Error(), "insufficient funds") {
			return "", errors.Mark(err, ErrInsufficientFunds)
		}
		return "", errors.Wrap(err, "failed to broadcast transaction")
	}

	return signedTx.Hash().Hex(), nil
}

// WaitConfirmed polls for the receipt of the given transaction until it is included in
// a block or the context expires.
func (c *Client) WaitConfirmed(ctx context.Context, txHash string) (uint64, error) {
	hash := common.HexToHash(txHash)

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return 0, errors.Wrapf(ErrTransactionFailed, "tx %s", txHash)
			}
			return receipt.BlockNumber.Uint64(), nil
		case errors.Is(err, ethereum.NotFound):
			// not mined yet, keep polling
		default:
			return 0, errors.Wrapf(err, "failed to query receipt of tx %s", txHash)
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

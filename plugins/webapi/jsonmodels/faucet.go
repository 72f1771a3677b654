package jsonmodels

// FaucetRequest is the body of a faucet funding request.
type FaucetRequest struct {
	Address string `json:"address"`
}

// FaucetResponse is returned for a successful funding request. BlockNumber is only set
// when the transaction was confirmed within the configured wait.
type FaucetResponse struct {
	Success     bool   `json:"success"`
	TxHash      string `json:"txHash"`
	Amount      string `json:"amount"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
}

// ErrorResponse carries the error message of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

package jsonmodels

// HealthResponse reports the live state of the faucet wallet and its chain connection.
type HealthResponse struct {
	Status        string `json:"status"`
	FaucetAddress string `json:"faucetAddress,omitempty"`
	Balance       string `json:"balance,omitempty"`
	Network       string `json:"network,omitempty"`
	ChainID       uint64 `json:"chainId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// StatsResponse reports the operating numbers of the faucet.
type StatsResponse struct {
	FaucetBalance    string `json:"faucetBalance"`
	FaucetAddress    string `json:"faucetAddress"`
	AmountPerRequest string `json:"amountPerRequest"`
	GasPrice         string `json:"gasPrice"`
	CooldownPeriod   string `json:"cooldownPeriod"`
}

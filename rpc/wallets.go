package rpc

import "github.com/shopspring/decimal"

// WalletCreate makes a new wallet on the node and returns its id.
func (c *Client) WalletCreate() (string, error) {
	var out struct {
		Wallet *string `json:"wallet"`
	}
	if err := c.call("wallet_create", nil, &out); err != nil {
		return "", err
	}
	return requireField("wallet_create", "wallet", out.Wallet)
}

// WalletDestroy removes wallet and every account in it from the node.
func (c *Client) WalletDestroy(wallet string) error {
	return c.call("wallet_destroy", params{"wallet": wallet}, nil)
}

// WalletAdd inserts an adhoc private key into wallet and returns the
// account it controls.
func (c *Client) WalletAdd(wallet, key string) (string, error) {
	var out struct {
		Account *string `json:"account"`
	}
	if err := c.call("wallet_add", params{"wallet": wallet, "key": key}, &out); err != nil {
		return "", err
	}
	return requireField("wallet_add", "account", out.Account)
}

// WalletContains reports whether wallet holds account.
func (c *Client) WalletContains(wallet, account string) (bool, error) {
	var out struct {
		Exists string `json:"exists"`
	}
	p := params{"wallet": wallet, "account": account}
	if err := c.call("wallet_contains", p, &out); err != nil {
		return false, err
	}
	return parseBool("wallet_contains", "exists", out.Exists)
}

// WalletBalanceTotal sums the balance and pending of every account in
// wallet.
func (c *Client) WalletBalanceTotal(wallet string) (*AccountBalance, error) {
	var out struct {
		Balance string `json:"balance"`
		Pending string `json:"pending"`
	}
	if err := c.call("wallet_balance_total", params{"wallet": wallet}, &out); err != nil {
		return nil, err
	}

	balance, err := parseAmount("wallet_balance_total", "balance", out.Balance)
	if err != nil {
		return nil, err
	}
	pending, err := parseAmount("wallet_balance_total", "pending", out.Pending)
	if err != nil {
		return nil, err
	}

	return &AccountBalance{Balance: balance, Pending: pending}, nil
}

// WalletBalances returns the balance of each account in wallet.
func (c *Client) WalletBalances(wallet string) (map[string]AccountBalance, error) {
	var out struct {
		Balances *map[string]struct {
			Balance string `json:"balance"`
			Pending string `json:"pending"`
		} `json:"balances"`
	}
	if err := c.call("wallet_balances", params{"wallet": wallet}, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("wallet_balances", "balances", out.Balances)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]AccountBalance, len(wire))
	for account, b := range wire {
		balance, err := parseAmount("wallet_balances", "balance", b.Balance)
		if err != nil {
			return nil, err
		}
		pending, err := parseAmount("wallet_balances", "pending", b.Pending)
		if err != nil {
			return nil, err
		}
		balances[account] = AccountBalance{Balance: balance, Pending: pending}
	}

	return balances, nil
}

// WalletFrontiers returns the head block of each account in wallet.
func (c *Client) WalletFrontiers(wallet string) (map[string]string, error) {
	var out struct {
		Frontiers *map[string]string `json:"frontiers"`
	}
	if err := c.call("wallet_frontiers", params{"wallet": wallet}, &out); err != nil {
		return nil, err
	}
	return requireField("wallet_frontiers", "frontiers", out.Frontiers)
}

// PasswordChange sets wallet's password.
func (c *Client) PasswordChange(wallet, password string) (bool, error) {
	var out struct {
		Changed string `json:"changed"`
	}
	p := params{"wallet": wallet, "password": password}
	if err := c.call("password_change", p, &out); err != nil {
		return false, err
	}
	return parseBool("password_change", "changed", out.Changed)
}

// PasswordEnter unlocks wallet with password.
func (c *Client) PasswordEnter(wallet, password string) (bool, error) {
	var out struct {
		Valid string `json:"valid"`
	}
	p := params{"wallet": wallet, "password": password}
	if err := c.call("password_enter", p, &out); err != nil {
		return false, err
	}
	return parseBool("password_enter", "valid", out.Valid)
}

// PasswordValid reports whether wallet is currently unlocked.
func (c *Client) PasswordValid(wallet string) (bool, error) {
	var out struct {
		Valid string `json:"valid"`
	}
	if err := c.call("password_valid", params{"wallet": wallet}, &out); err != nil {
		return false, err
	}
	return parseBool("password_valid", "valid", out.Valid)
}

// Send transfers amount raw from source to destination out of wallet and
// returns the send block's hash. The amount must be a whole number of raw.
func (c *Client) Send(wallet, source, destination string, amount decimal.Decimal) (string, error) {
	var out struct {
		Block *string `json:"block"`
	}
	p := params{
		"wallet":      wallet,
		"source":      source,
		"destination": destination,
		"amount":      amount.String(),
	}
	if err := c.call("send", p, &out); err != nil {
		return "", err
	}
	return requireField("send", "block", out.Block)
}

// Receive pockets a pending block for account in wallet and returns the
// receive block's hash.
func (c *Client) Receive(wallet, account, block string) (string, error) {
	var out struct {
		Block *string `json:"block"`
	}
	p := params{"wallet": wallet, "account": account, "block": block}
	if err := c.call("receive", p, &out); err != nil {
		return "", err
	}
	return requireField("receive", "block", out.Block)
}

package rpc

import "github.com/shopspring/decimal"

// AccountBalance returns how much raw is owned by and pending for account.
func (c *Client) AccountBalance(account string) (*AccountBalance, error) {
	var out struct {
		Balance string `json:"balance"`
		Pending string `json:"pending"`
	}
	if err := c.call("account_balance", params{"account": account}, &out); err != nil {
		return nil, err
	}

	balance, err := parseAmount("account_balance", "balance", out.Balance)
	if err != nil {
		return nil, err
	}
	pending, err := parseAmount("account_balance", "pending", out.Pending)
	if err != nil {
		return nil, err
	}

	return &AccountBalance{Balance: balance, Pending: pending}, nil
}

// AccountsBalances returns balances for several accounts in one call.
func (c *Client) AccountsBalances(accounts []string) (map[string]AccountBalance, error) {
	var out struct {
		Balances *map[string]struct {
			Balance string `json:"balance"`
			Pending string `json:"pending"`
		} `json:"balances"`
	}
	if err := c.call("accounts_balances", params{"accounts": accounts}, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("accounts_balances", "balances", out.Balances)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]AccountBalance, len(wire))
	for account, b := range wire {
		balance, err := parseAmount("accounts_balances", "balance", b.Balance)
		if err != nil {
			return nil, err
		}
		pending, err := parseAmount("accounts_balances", "pending", b.Pending)
		if err != nil {
			return nil, err
		}
		balances[account] = AccountBalance{Balance: balance, Pending: pending}
	}

	return balances, nil
}

// AccountBlockCount returns the number of blocks in account's chain.
func (c *Client) AccountBlockCount(account string) (uint64, error) {
	var out struct {
		BlockCount string `json:"block_count"`
	}
	if err := c.call("account_block_count", params{"account": account}, &out); err != nil {
		return 0, err
	}
	return parseUint("account_block_count", "block_count", out.BlockCount)
}

// AccountInfo returns the head state of account. The flags request the
// node's optional representative, weight and pending fields.
func (c *Client) AccountInfo(account string, representative, weight, pending bool) (*AccountInfo, error) {
	p := params{"account": account}
	if representative {
		p["representative"] = strbool(true)
	}
	if weight {
		p["weight"] = strbool(true)
	}
	if pending {
		p["pending"] = strbool(true)
	}

	var out struct {
		Frontier            *string `json:"frontier"`
		OpenBlock           *string `json:"open_block"`
		RepresentativeBlock *string `json:"representative_block"`
		Balance             string  `json:"balance"`
		ModifiedTimestamp   string  `json:"modified_timestamp"`
		BlockCount          string  `json:"block_count"`
		Representative      string  `json:"representative"`
		Weight              string  `json:"weight"`
		Pending             string  `json:"pending"`
	}
	if err := c.call("account_info", p, &out); err != nil {
		return nil, err
	}

	info := &AccountInfo{Representative: out.Representative}

	var err error
	if info.Frontier, err = requireField("account_info", "frontier", out.Frontier); err != nil {
		return nil, err
	}
	if info.OpenBlock, err = requireField("account_info", "open_block", out.OpenBlock); err != nil {
		return nil, err
	}
	if info.RepresentativeBlock, err = requireField("account_info", "representative_block", out.RepresentativeBlock); err != nil {
		return nil, err
	}
	if info.Balance, err = parseAmount("account_info", "balance", out.Balance); err != nil {
		return nil, err
	}
	if info.ModifiedTimestamp, err = parseUint("account_info", "modified_timestamp", out.ModifiedTimestamp); err != nil {
		return nil, err
	}
	if info.BlockCount, err = parseUint("account_info", "block_count", out.BlockCount); err != nil {
		return nil, err
	}
	if out.Weight != "" {
		if info.Weight, err = parseAmount("account_info", "weight", out.Weight); err != nil {
			return nil, err
		}
	}
	if out.Pending != "" {
		if info.Pending, err = parseAmount("account_info", "pending", out.Pending); err != nil {
			return nil, err
		}
	}

	return info, nil
}

// AccountCreate inserts the next deterministic key of wallet as a new
// account and returns it.
func (c *Client) AccountCreate(wallet string) (string, error) {
	var out struct {
		Account *string `json:"account"`
	}
	if err := c.call("account_create", params{"wallet": wallet}, &out); err != nil {
		return "", err
	}
	return requireField("account_create", "account", out.Account)
}

// AccountsCreate inserts up to count deterministic keys into wallet and
// returns the new accounts.
func (c *Client) AccountsCreate(wallet string, count uint64) ([]string, error) {
	var out struct {
		Accounts *[]string `json:"accounts"`
	}
	p := params{"wallet": wallet, "count": struint(count)}
	if err := c.call("accounts_create", p, &out); err != nil {
		return nil, err
	}
	return requireField("accounts_create", "accounts", out.Accounts)
}

// AccountGet returns the account that corresponds to a public key.
func (c *Client) AccountGet(key string) (string, error) {
	var out struct {
		Account *string `json:"account"`
	}
	if err := c.call("account_get", params{"key": key}, &out); err != nil {
		return "", err
	}
	return requireField("account_get", "account", out.Account)
}

// AccountKey returns the public key behind account.
func (c *Client) AccountKey(account string) (string, error) {
	var out struct {
		Key *string `json:"key"`
	}
	if err := c.call("account_key", params{"account": account}, &out); err != nil {
		return "", err
	}
	return requireField("account_key", "key", out.Key)
}

// AccountHistory reports the most recent count sends and receives of
// account, newest first.
func (c *Client) AccountHistory(account string, count uint64) ([]HistoryEntry, error) {
	var out struct {
		History *[]struct {
			Hash    string `json:"hash"`
			Type    string `json:"type"`
			Account string `json:"account"`
			Amount  string `json:"amount"`
		} `json:"history"`
	}
	p := params{"account": account, "count": struint(count)}
	if err := c.call("account_history", p, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("account_history", "history", out.History)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, 0, len(wire))
	for _, e := range wire {
		amount, err := parseAmount("account_history", "amount", e.Amount)
		if err != nil {
			return nil, err
		}
		history = append(history, HistoryEntry{
			Hash:    e.Hash,
			Type:    e.Type,
			Account: e.Account,
			Amount:  amount,
		})
	}

	return history, nil
}

// AccountList lists the accounts inside wallet.
func (c *Client) AccountList(wallet string) ([]string, error) {
	var out struct {
		Accounts *[]string `json:"accounts"`
	}
	if err := c.call("account_list", params{"wallet": wallet}, &out); err != nil {
		return nil, err
	}
	return requireField("account_list", "accounts", out.Accounts)
}

// AccountMove moves accounts from the source wallet into wallet.
func (c *Client) AccountMove(wallet, source string, accounts []string) (bool, error) {
	var out struct {
		Moved string `json:"moved"`
	}
	p := params{"wallet": wallet, "source": source, "accounts": accounts}
	if err := c.call("account_move", p, &out); err != nil {
		return false, err
	}
	return parseBool("account_move", "moved", out.Moved)
}

// AccountRemove removes account from wallet.
func (c *Client) AccountRemove(wallet, account string) (bool, error) {
	var out struct {
		Removed string `json:"removed"`
	}
	p := params{"wallet": wallet, "account": account}
	if err := c.call("account_remove", p, &out); err != nil {
		return false, err
	}
	return parseBool("account_remove", "removed", out.Removed)
}

// AccountRepresentative returns the representative account votes for.
func (c *Client) AccountRepresentative(account string) (string, error) {
	var out struct {
		Representative *string `json:"representative"`
	}
	if err := c.call("account_representative", params{"account": account}, &out); err != nil {
		return "", err
	}
	return requireField("account_representative", "representative", out.Representative)
}

// AccountRepresentativeSet changes the representative of account in wallet
// and returns the change block's hash.
func (c *Client) AccountRepresentativeSet(wallet, account, representative string) (string, error) {
	var out struct {
		Block *string `json:"block"`
	}
	p := params{"wallet": wallet, "account": account, "representative": representative}
	if err := c.call("account_representative_set", p, &out); err != nil {
		return "", err
	}
	return requireField("account_representative_set", "block", out.Block)
}

// AccountWeight returns the voting weight of account.
func (c *Client) AccountWeight(account string) (decimal.Decimal, error) {
	var out struct {
		Weight string `json:"weight"`
	}
	if err := c.call("account_weight", params{"account": account}, &out); err != nil {
		return decimal.Zero, err
	}
	return parseAmount("account_weight", "weight", out.Weight)
}

// AccountsFrontiers returns the head block hash of each account.
func (c *Client) AccountsFrontiers(accounts []string) (map[string]string, error) {
	var out struct {
		Frontiers *map[string]string `json:"frontiers"`
	}
	if err := c.call("accounts_frontiers", params{"accounts": accounts}, &out); err != nil {
		return nil, err
	}
	return requireField("accounts_frontiers", "frontiers", out.Frontiers)
}

// AccountsPending lists up to count unreceived block hashes per account.
func (c *Client) AccountsPending(accounts []string, count uint64) (map[string][]string, error) {
	var out struct {
		Blocks *map[string][]string `json:"blocks"`
	}
	p := params{"accounts": accounts, "count": struint(count)}
	if err := c.call("accounts_pending", p, &out); err != nil {
		return nil, err
	}
	return requireField("accounts_pending", "blocks", out.Blocks)
}

// AccountsPendingDetail is AccountsPending with amount and source per
// unreceived block.
func (c *Client) AccountsPendingDetail(accounts []string, count uint64) (map[string]map[string]PendingBlock, error) {
	var out struct {
		Blocks *map[string]map[string]struct {
			Amount string `json:"amount"`
			Source string `json:"source"`
		} `json:"blocks"`
	}
	p := params{"accounts": accounts, "count": struint(count), "source": strbool(true)}
	if err := c.call("accounts_pending", p, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("accounts_pending", "blocks", out.Blocks)
	if err != nil {
		return nil, err
	}

	blocks := make(map[string]map[string]PendingBlock, len(wire))
	for account, hashes := range wire {
		pending := make(map[string]PendingBlock, len(hashes))
		for hash, b := range hashes {
			amount, err := parseAmount("accounts_pending", "amount", b.Amount)
			if err != nil {
				return nil, err
			}
			pending[hash] = PendingBlock{Amount: amount, Source: b.Source}
		}
		blocks[account] = pending
	}

	return blocks, nil
}

// AccountsPendingThreshold lists unreceived blocks of at least threshold
// raw, as hash to amount per account.
func (c *Client) AccountsPendingThreshold(accounts []string, count uint64, threshold decimal.Decimal) (map[string]map[string]decimal.Decimal, error) {
	var out struct {
		Blocks *map[string]map[string]string `json:"blocks"`
	}
	p := params{"accounts": accounts, "count": struint(count), "threshold": threshold.String()}
	if err := c.call("accounts_pending", p, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("accounts_pending", "blocks", out.Blocks)
	if err != nil {
		return nil, err
	}

	blocks := make(map[string]map[string]decimal.Decimal, len(wire))
	for account, hashes := range wire {
		pending := make(map[string]decimal.Decimal, len(hashes))
		for hash, amount := range hashes {
			d, err := parseAmount("accounts_pending", "amount", amount)
			if err != nil {
				return nil, err
			}
			pending[hash] = d
		}
		blocks[account] = pending
	}

	return blocks, nil
}

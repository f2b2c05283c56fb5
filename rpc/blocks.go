package rpc

// Block retrieves a block by hash. Contents come back as the node's JSON
// text for the block, untouched.
func (c *Client) Block(hash string) (string, error) {
	var out struct {
		Contents *string `json:"contents"`
	}
	if err := c.call("block", params{"hash": hash}, &out); err != nil {
		return "", err
	}
	return requireField("block", "contents", out.Contents)
}

// Blocks retrieves several blocks by hash.
func (c *Client) Blocks(hashes []string) (map[string]string, error) {
	var out struct {
		Blocks *map[string]string `json:"blocks"`
	}
	if err := c.call("blocks", params{"hashes": hashes}, &out); err != nil {
		return nil, err
	}
	return requireField("blocks", "blocks", out.Blocks)
}

// BlocksInfo retrieves several blocks along with their owning account and
// amount.
func (c *Client) BlocksInfo(hashes []string) (map[string]BlockInfo, error) {
	var out struct {
		Blocks *map[string]struct {
			BlockAccount string `json:"block_account"`
			Amount       string `json:"amount"`
			Contents     string `json:"contents"`
		} `json:"blocks"`
	}
	if err := c.call("blocks_info", params{"hashes": hashes}, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("blocks_info", "blocks", out.Blocks)
	if err != nil {
		return nil, err
	}

	blocks := make(map[string]BlockInfo, len(wire))
	for hash, b := range wire {
		amount, err := parseAmount("blocks_info", "amount", b.Amount)
		if err != nil {
			return nil, err
		}
		blocks[hash] = BlockInfo{
			BlockAccount: b.BlockAccount,
			Amount:       amount,
			Contents:     b.Contents,
		}
	}

	return blocks, nil
}

// BlockAccount returns the account a block belongs to.
func (c *Client) BlockAccount(hash string) (string, error) {
	var out struct {
		Account *string `json:"account"`
	}
	if err := c.call("block_account", params{"hash": hash}, &out); err != nil {
		return "", err
	}
	return requireField("block_account", "account", out.Account)
}

// Chain returns up to count block hashes walking back from block towards
// the account's open block.
func (c *Client) Chain(block string, count uint64) ([]string, error) {
	var out struct {
		Blocks *[]string `json:"blocks"`
	}
	p := params{"block": block, "count": struint(count)}
	if err := c.call("chain", p, &out); err != nil {
		return nil, err
	}
	return requireField("chain", "blocks", out.Blocks)
}

// Frontiers returns account to head-block pairs, starting at account,
// up to count of them.
func (c *Client) Frontiers(account string, count uint64) (map[string]string, error) {
	var out struct {
		Frontiers *map[string]string `json:"frontiers"`
	}
	p := params{"account": account, "count": struint(count)}
	if err := c.call("frontiers", p, &out); err != nil {
		return nil, err
	}
	return requireField("frontiers", "frontiers", out.Frontiers)
}

// History reports the sends and receives reachable from the block at hash.
func (c *Client) History(hash string, count uint64) ([]HistoryEntry, error) {
	var out struct {
		History *[]struct {
			Hash    string `json:"hash"`
			Type    string `json:"type"`
			Account string `json:"account"`
			Amount  string `json:"amount"`
		} `json:"history"`
	}
	p := params{"hash": hash, "count": struint(count)}
	if err := c.call("history", p, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("history", "history", out.History)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, 0, len(wire))
	for _, e := range wire {
		amount, err := parseAmount("history", "amount", e.Amount)
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

// Process publishes a block, given as its JSON text, and returns its hash.
func (c *Client) Process(block string) (string, error) {
	var out struct {
		Hash *string `json:"hash"`
	}
	if err := c.call("process", params{"block": block}, &out); err != nil {
		return "", err
	}
	return requireField("process", "hash", out.Hash)
}

// Republish rebroadcasts blocks starting at hash and returns what was sent.
func (c *Client) Republish(hash string) ([]string, error) {
	var out struct {
		Blocks *[]string `json:"blocks"`
	}
	if err := c.call("republish", params{"hash": hash}, &out); err != nil {
		return nil, err
	}
	return requireField("republish", "blocks", out.Blocks)
}

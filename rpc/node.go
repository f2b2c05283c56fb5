package rpc

import "github.com/shopspring/decimal"

// Version returns the node's vendor string and version numbers.
func (c *Client) Version() (*Version, error) {
	var out struct {
		RPCVersion   string  `json:"rpc_version"`
		StoreVersion string  `json:"store_version"`
		NodeVendor   *string `json:"node_vendor"`
	}
	if err := c.call("version", nil, &out); err != nil {
		return nil, err
	}

	rpcVersion, err := parseUint("version", "rpc_version", out.RPCVersion)
	if err != nil {
		return nil, err
	}
	storeVersion, err := parseUint("version", "store_version", out.StoreVersion)
	if err != nil {
		return nil, err
	}
	vendor, err := requireField("version", "node_vendor", out.NodeVendor)
	if err != nil {
		return nil, err
	}

	return &Version{
		RPCVersion:   int(rpcVersion),
		StoreVersion: int(storeVersion),
		NodeVendor:   vendor,
	}, nil
}

// Stop asks the node to shut down.
func (c *Client) Stop() error {
	var out struct {
		Success *string `json:"success"`
	}
	if err := c.call("stop", nil, &out); err != nil {
		return err
	}
	_, err := requireField("stop", "success", out.Success)
	return err
}

// Peers returns the node's peers as address to protocol version.
func (c *Client) Peers() (map[string]string, error) {
	var out struct {
		Peers *map[string]string `json:"peers"`
	}
	if err := c.call("peers", nil, &out); err != nil {
		return nil, err
	}
	return requireField("peers", "peers", out.Peers)
}

// BlockCount returns how many blocks the node has checked and how many are
// still waiting.
func (c *Client) BlockCount() (*BlockCount, error) {
	var out struct {
		Count     string `json:"count"`
		Unchecked string `json:"unchecked"`
	}
	if err := c.call("block_count", nil, &out); err != nil {
		return nil, err
	}

	count, err := parseUint("block_count", "count", out.Count)
	if err != nil {
		return nil, err
	}
	unchecked, err := parseUint("block_count", "unchecked", out.Unchecked)
	if err != nil {
		return nil, err
	}

	return &BlockCount{Count: count, Unchecked: unchecked}, nil
}

// BlockCountType returns ledger totals broken down by block type.
func (c *Client) BlockCountType() (*BlockCountType, error) {
	var out struct {
		Send    string `json:"send"`
		Receive string `json:"receive"`
		Open    string `json:"open"`
		Change  string `json:"change"`
	}
	if err := c.call("block_count_type", nil, &out); err != nil {
		return nil, err
	}

	counts := &BlockCountType{}
	var err error
	if counts.Send, err = parseUint("block_count_type", "send", out.Send); err != nil {
		return nil, err
	}
	if counts.Receive, err = parseUint("block_count_type", "receive", out.Receive); err != nil {
		return nil, err
	}
	if counts.Open, err = parseUint("block_count_type", "open", out.Open); err != nil {
		return nil, err
	}
	if counts.Change, err = parseUint("block_count_type", "change", out.Change); err != nil {
		return nil, err
	}

	return counts, nil
}

// AvailableSupply returns how much raw is in circulation.
func (c *Client) AvailableSupply() (decimal.Decimal, error) {
	var out struct {
		Available string `json:"available"`
	}
	if err := c.call("available_supply", nil, &out); err != nil {
		return decimal.Zero, err
	}
	return parseAmount("available_supply", "available", out.Available)
}

// FrontierCount returns the number of accounts in the ledger.
func (c *Client) FrontierCount() (uint64, error) {
	var out struct {
		Count string `json:"count"`
	}
	if err := c.call("frontier_count", nil, &out); err != nil {
		return 0, err
	}
	return parseUint("frontier_count", "count", out.Count)
}

// Representatives returns every representative and its voting weight.
func (c *Client) Representatives() (map[string]decimal.Decimal, error) {
	var out struct {
		Representatives *map[string]string `json:"representatives"`
	}
	if err := c.call("representatives", nil, &out); err != nil {
		return nil, err
	}

	wire, err := requireField("representatives", "representatives", out.Representatives)
	if err != nil {
		return nil, err
	}

	reps := make(map[string]decimal.Decimal, len(wire))
	for account, weight := range wire {
		d, err := parseAmount("representatives", "weight", weight)
		if err != nil {
			return nil, err
		}
		reps[account] = d
	}

	return reps, nil
}

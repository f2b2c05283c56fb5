package rpc

import "github.com/shopspring/decimal"

// AccountBalance is the settled and not-yet-received raw owned by an account.
type AccountBalance struct {
	Balance decimal.Decimal
	Pending decimal.Decimal
}

// AccountInfo describes the head state of an account. Representative,
// Weight and Pending are only filled when the matching flags were requested.
type AccountInfo struct {
	Frontier            string
	OpenBlock           string
	RepresentativeBlock string
	Balance             decimal.Decimal
	ModifiedTimestamp   uint64
	BlockCount          uint64
	Representative      string
	Weight              decimal.Decimal
	Pending             decimal.Decimal
}

// HistoryEntry is one send or receive in an account's chain.
type HistoryEntry struct {
	Hash    string
	Type    string
	Account string
	Amount  decimal.Decimal
}

// Version identifies the node software and its RPC revision.
type Version struct {
	RPCVersion   int
	StoreVersion int
	NodeVendor   string
}

// BlockCount totals the blocks the node has seen.
type BlockCount struct {
	Count     uint64
	Unchecked uint64
}

// BlockCountType breaks the ledger down by block type.
type BlockCountType struct {
	Send    uint64
	Receive uint64
	Open    uint64
	Change  uint64
}

// PendingBlock describes a send that has not been pocketed yet. Source is
// empty unless the detail variant of the query was used.
type PendingBlock struct {
	Amount decimal.Decimal
	Source string
}

// BlockInfo is the annotated form of a stored block.
type BlockInfo struct {
	BlockAccount string
	Amount       decimal.Decimal
	Contents     string
}

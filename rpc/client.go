// Package rpc is a client for a RaiBlocks node's HTTP RPC interface.
//
// Every exported method performs exactly one synchronous POST of an
// {"action": ...} JSON body and decodes the reply into a fixed result shape.
// Currency amounts come back as shopspring decimals, never floats. Failures
// split into TransportError (could not reach the node), ProtocolError (the
// node answered with an error message) and DecodeError (the answer did not
// match the documented shape). The client never retries, caches or logs.
//
// Files:
//   client.go   - Client struct, constructors, call plumbing, field parsers
//   errors.go   - error taxonomy
//   types.go    - result struct definitions
//   accounts.go - account_* actions
//   blocks.go   - block and chain actions
//   node.go     - node-wide actions (version, peers, counts, ...)
//   wallets.go  - wallet-backed actions (send, receive, passwords, ...)
//   work.go     - proof-of-work actions
package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultURL is where a locally run node listens for RPC.
const DefaultURL = "http://localhost:7076"

const defaultTimeout = 30 * time.Second

// Client talks to a single node. It is cheap to construct and performs no
// network activity until a method is called.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a client for the node at nodeURL with a 30 second
// request timeout. An empty nodeURL means DefaultURL.
func NewClient(nodeURL string) *Client {
	return NewClientWithHTTP(nodeURL, nil)
}

// NewClientWithHTTP creates a client that issues requests through hc, which
// is how callers pick their own timeout or transport. A nil hc gets the
// same default as NewClient.
func NewClientWithHTTP(nodeURL string, hc *http.Client) *Client {
	if nodeURL == "" {
		nodeURL = DefaultURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		httpClient: hc,
		url:        nodeURL,
	}
}

// URL returns the node endpoint this client targets.
func (c *Client) URL() string {
	return c.url
}

// params carries the named parameters of a single action.
type params map[string]any

// call posts {"action": action, ...p} to the node and decodes the response
// body into out. A nil out discards the body after the error check.
func (c *Client) call(action string, p params, out any) error {
	payload := params{"action": action}
	for k, v := range p {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", action, err)
	}

	resp, err := c.httpClient.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	// The node reports its own failures as {"error": "..."} with status 200.
	var nodeErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &nodeErr); err != nil {
		return &DecodeError{Action: action, Err: err}
	}
	if nodeErr.Error != "" {
		return &ProtocolError{Message: nodeErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Action: action, Err: err}
	}

	return nil
}

// parseAmount converts the node's big-integer amount string to a decimal.
func parseAmount(action, field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &DecodeError{Action: action, Err: fmt.Errorf("field %s: %w", field, err)}
	}
	return d, nil
}

// parseUint converts the node's count string to an integer.
func parseUint(action, field, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &DecodeError{Action: action, Err: fmt.Errorf("field %s: %w", field, err)}
	}
	return n, nil
}

// parseBool normalizes the node's "1"/"0" and "true"/"false" strings.
func parseBool(action, field, s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, &DecodeError{Action: action, Err: fmt.Errorf("field %s: not a boolean: %q", field, s)}
}

// requireField unwraps a documented result field, failing the decode when a
// success-shaped reply omits it.
func requireField[T any](action, field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &DecodeError{Action: action, Err: fmt.Errorf("missing %s field", field)}
	}
	return *v, nil
}

// strbool renders a boolean parameter the way the node expects it.
func strbool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// struint renders an integer parameter the way the node expects it.
func struint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

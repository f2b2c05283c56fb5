package rpc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode is a fake node that records every request body and answers each
// call with a fixed JSON reply.
type testNode struct {
	srv *httptest.Server

	mu   sync.Mutex
	reqs []map[string]any

	reply string
}

func newTestNode(t *testing.T, reply string) (*testNode, *Client) {
	t.Helper()

	n := &testNode{reply: reply}
	n.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
			return
		}

		var req map[string]any
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body is not JSON: %v", err)
			return
		}

		n.mu.Lock()
		n.reqs = append(n.reqs, req)
		n.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, n.reply)
	}))
	t.Cleanup(n.srv.Close)

	return n, NewClient(n.srv.URL)
}

func (n *testNode) lastRequest(t *testing.T) map[string]any {
	t.Helper()

	n.mu.Lock()
	defer n.mu.Unlock()

	require.NotEmpty(t, n.reqs, "node received no request")
	return n.reqs[len(n.reqs)-1]
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultURL, NewClient("").URL())
	assert.Equal(t, "http://10.0.0.5:7076", NewClient("http://10.0.0.5:7076").URL())
}

func TestProtocolErrorCarriesNodeMessage(t *testing.T) {
	t.Parallel()

	_, client := newTestNode(t, `{"error": "Bad account number"}`)

	_, err := client.AccountBalance("xrb_bogus")

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "Bad account number", protoErr.Message)
}

func TestDecodeErrorOnInvalidJSON(t *testing.T) {
	t.Parallel()

	_, client := newTestNode(t, `<html>502 Bad Gateway</html>`)

	_, err := client.Version()

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "version", decodeErr.Action)
}

func TestDecodeErrorOnShapeMismatch(t *testing.T) {
	t.Parallel()

	_, client := newTestNode(t, `{"balance": "not-a-number", "pending": "0"}`)

	_, err := client.AccountBalance("xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "account_balance", decodeErr.Action)
}

func TestTransportErrorOnUnreachableNode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Version()

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, errors.Unwrap(transportErr))
}

func TestTransportErrorOnTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	t.Cleanup(srv.Close)

	client := NewClientWithHTTP(srv.URL, &http.Client{Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := client.Version()

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Less(t, time.Since(start), time.Second, "call did not respect the timeout")
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]bool{"1": true, "true": true, "0": false, "false": false} {
		got, err := parseBool("x", "f", s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseBool("x", "f", "yes")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

package rpc

import "fmt"

// TransportError reports that the HTTP round trip to the node failed:
// connection refused, DNS failure, or timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("node unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError carries an error the node itself reported in the response
// body. Message is the node's text, unchanged.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("node error: %s", e.Message)
}

// DecodeError reports a response body that was not valid JSON or did not
// match the shape the action is documented to return.
type DecodeError struct {
	Action string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Action, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

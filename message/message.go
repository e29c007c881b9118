// Package message defines the JSON-RPC 2.0 envelope types exchanged with a
// remote peer.
//
// Request is the "envelope" for every call. It gets serialized by the codec
// layer and wrapped in a minimal HTTP frame for transmission over TCP.
package message

import "encoding/json"

// Version is the protocol tag carried in every envelope. It is fixed and not
// caller-settable: NewRequest stamps it on construction.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request carries the data for a single JSON-RPC call.
//
// Field order matters on the wire: encoding/json emits struct fields in
// declaration order, so serialization always yields
// {"jsonrpc":...,"method":...,"params":...,"id":...}.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      any    `json:"id"`
}

// NewRequest builds an envelope for one call. Construction cannot fail.
// Params may be any JSON-serializable value. The id is opaque to this layer:
// whatever type the caller supplies (string or integer) is round-tripped
// verbatim, used purely for correlation.
func NewRequest(method string, params any, id any) *Request {
	return &Request{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
		ID:      id,
	}
}

// Response is the decoded JSON-RPC reply. Exactly one of Result/Error is
// non-null in a well-formed reply; the remote peer enforces that, this
// layer only parses.
//
// Result stays raw so the caller decides what concrete type to decode into.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *ErrorObject    `json:"error"`
	ID      any             `json:"id"`
}

// UnmarshalResult decodes the result member into v.
func (r *Response) UnmarshalResult(v any) error {
	return json.Unmarshal(r.Result, v)
}

// ErrorObject is the error member of a JSON-RPC response.
type ErrorObject struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewError builds an error object with the given code and message.
func NewError(code int, msg string) *ErrorObject {
	return &ErrorObject{Code: code, Message: msg}
}

// Error implements the error interface so a response error can be promoted
// to a plain Go error by higher layers.
func (e *ErrorObject) Error() string {
	return e.Message
}

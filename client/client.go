// Package client provides the high-level JSON-RPC client: an endpoint, an
// optional credential, and the middleware chain around the transport.
package client

import (
	"context"
	"time"

	"jsonrpc-client/message"
	"jsonrpc-client/middleware"
	"jsonrpc-client/protocol"
	"jsonrpc-client/transport"
)

// Client issues JSON-RPC calls against a single service endpoint. A Client
// holds no per-call state and may be shared by multiple goroutines; each
// call owns its own connection.
type Client struct {
	addr  protocol.Address
	cred  *protocol.Credential
	call  middleware.CallFunc
	trans *transport.ClientTransport
}

// NewClient creates a client for the given endpoint. cred may be nil for
// services without credentials; timeout of zero disables the uniform
// connect/write/read bound. Middlewares are applied in the order given.
func NewClient(addr protocol.Address, cred *protocol.Credential, timeout time.Duration, middlewares ...middleware.Middleware) *Client {
	c := &Client{
		addr:  addr,
		cred:  cred,
		trans: transport.NewClientTransport(timeout),
	}
	c.call = middleware.Chain(middlewares...)(c.roundTrip)
	return c
}

// roundTrip is the innermost CallFunc the middleware chain wraps.
func (c *Client) roundTrip(ctx context.Context, req *message.Request) (*message.Response, error) {
	return c.trans.SendContext(ctx, req, c.addr, c.cred)
}

// Call performs one blocking call and returns the decoded response. The
// response's result/error members are returned as-is: a JSON-RPC-level
// error is not promoted to a Go error here.
func (c *Client) Call(method string, params any, id any) (*message.Response, error) {
	return c.CallContext(context.Background(), method, params, id)
}

// CallContext is Call with caller-controlled cancellation.
func (c *Client) CallContext(ctx context.Context, method string, params any, id any) (*message.Response, error) {
	return c.call(ctx, message.NewRequest(method, params, id))
}

// Invoke performs a call and decodes the result member into reply. A
// non-null error member in the response is promoted to a Go error, so the
// caller gets the usual Go calling convention.
func (c *Client) Invoke(ctx context.Context, method string, params any, id any, reply any) error {
	resp, err := c.CallContext(ctx, method, params, id)
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return resp.Error
	}
	return resp.UnmarshalResult(reply)
}

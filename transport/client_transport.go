// Package transport implements the client-side round trip: one request, one
// connection, one response.
//
// Unlike a pooled or multiplexed design, every Send dials a fresh TCP
// connection, writes a single framed request, reads the reply to EOF, and
// closes the socket. Concurrent callers each own an independent connection,
// so there is no cross-call locking and no ordering between calls.
//
//	Send ──serialize──→ dial ──write frame──→ read to EOF ──split──→ decode
//	           │            │            │            │          │
//	   Serialization   Connection   Connection    Response  InvalidResponse /
//	                                                        Serialization
package transport

import (
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"jsonrpc-client/codec"
	"jsonrpc-client/message"
	"jsonrpc-client/protocol"
	"jsonrpc-client/rpcerror"
)

// ClientTransport holds per-call configuration. It carries no connection
// state, so a single value is safe for concurrent use.
type ClientTransport struct {
	codec   codec.Codec
	timeout time.Duration // zero means no bound beyond the caller's context
	logger  *logrus.Logger
}

// NewClientTransport creates a transport with the JSON codec. timeout, if
// non-zero, bounds the whole round trip: connect, write, and read all share
// the same deadline.
func NewClientTransport(timeout time.Duration) *ClientTransport {
	return &ClientTransport{
		codec:   codec.Default(),
		timeout: timeout,
		logger:  logrus.StandardLogger(),
	}
}

// SetLogger replaces the diagnostic sink. Logging is best effort and never
// affects the outcome of a call.
func (t *ClientTransport) SetLogger(logger *logrus.Logger) {
	t.logger = logger
}

// Send performs one blocking round trip. It is a thin wrapper over
// SendContext with a background context; all logic lives in the context
// variant.
func (t *ClientTransport) Send(req *message.Request, addr protocol.Address, cred *protocol.Credential) (*message.Response, error) {
	return t.SendContext(context.Background(), req, addr, cred)
}

// SendContext is the canonical round trip. It serializes the envelope, dials
// addr, writes the framed request in a single operation, reads the reply to
// completion, splits headers from body, and decodes the body as JSON.
//
// Every failure comes back as a classified rpcerror value; nothing here
// panics on a network or parse fault. A JSON-RPC-level error member in the
// reply is NOT promoted to a Go error; interpreting result/error is the
// caller's job.
//
// Cancelling ctx (or exceeding the configured timeout) closes the
// connection, so a suspended read never leaks a socket.
func (t *ClientTransport) SendContext(ctx context.Context, req *message.Request, addr protocol.Address, cred *protocol.Credential) (*message.Response, error) {
	// Step 1: Serialize the envelope before touching the network
	body, err := t.codec.Encode(req)
	if err != nil {
		return nil, rpcerror.Wrap(rpcerror.Serialization, err)
	}

	// Apply the uniform timeout to connect, write, and read alike
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	// Step 2: Dial, the only step that waits on the network before I/O
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr.HostPort)
	if err != nil {
		return nil, rpcerror.Wrap(rpcerror.Connection, err)
	}
	// The connection is released on every exit path, including cancellation
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	// Step 3: Frame the request into a single buffer
	var frame bytes.Buffer
	if err := protocol.EncodeRequest(&frame, addr, cred, body); err != nil {
		return nil, rpcerror.Wrap(rpcerror.Connection, err)
	}

	// Step 4: Transmit the whole frame in one write
	if _, err := conn.Write(frame.Bytes()); err != nil {
		return nil, rpcerror.Wrap(rpcerror.Connection, err)
	}
	t.logger.WithFields(logrus.Fields{
		"addr":   addr.FullPath(),
		"method": req.Method,
		"bytes":  frame.Len(),
	}).Debug("request sent")

	// Step 5: Read the reply to completion, not until a buffer fills.
	// The peer signals the end of the exchange by closing its side.
	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, rpcerror.Wrap(rpcerror.Response, err)
	}

	// Step 6: Split headers from body on the first blank-line boundary
	head, payload, err := protocol.DecodeResponse(raw)
	if err != nil {
		return nil, rpcerror.Wrap(rpcerror.InvalidResponse, err)
	}
	t.logger.WithFields(logrus.Fields{
		"status": statusLine(head),
		"bytes":  len(raw),
	}).Debug("response received")

	// Step 7: Decode the body. A decode failure is a (de)serialization
	// fault either way, hence the shared error kind
	resp := &message.Response{}
	if err := t.codec.Decode(payload, resp); err != nil {
		return nil, rpcerror.Wrap(rpcerror.Serialization, err)
	}

	return resp, nil
}

// statusLine extracts the first line of the header block for logging.
func statusLine(head string) string {
	line, _, _ := strings.Cut(head, protocol.CRLF)
	return line
}

// Package server implements a minimal JSON-RPC 2.0 peer speaking the same
// one-request-per-connection HTTP framing as the client transport. It exists
// for examples and end-to-end tests; it is not a general-purpose HTTP server.
//
// Request processing pipeline:
//
//	Accept conn → handleConn (parse minimal HTTP frame)
//	  → decode JSON-RPC request → look up method → reflect.Call
//	  → encode response → write frame → close conn
package server

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"jsonrpc-client/codec"
	"jsonrpc-client/message"
	"jsonrpc-client/protocol"
)

// Server dispatches JSON-RPC calls to functions registered by name.
type Server struct {
	methods  map[string]*method
	listener net.Listener
	wg       sync.WaitGroup // tracks in-flight connections for Shutdown
	shutdown atomic.Bool    // suppresses the Accept error caused by Close
	logger   *logrus.Logger
	cdc      codec.Codec
}

// NewServer creates a server with an empty method table.
func NewServer() *Server {
	return &Server{
		methods: make(map[string]*method),
		logger:  logrus.StandardLogger(),
		cdc:     codec.Default(),
	}
}

// Register exposes fn under the given method name. fn must be a function;
// its parameters define the expected positional params, and it must return
// either (T) or (T, error).
func (svr *Server) Register(name string, fn any) error {
	m, err := newMethod(fn)
	if err != nil {
		return err
	}
	svr.methods[name] = m
	return nil
}

// Listen binds the server to the given address. Binding is separate from
// Serve so callers know the address (":0" picks a free port) before the
// accept loop starts.
func (svr *Server) Listen(network, address string) error {
	listener, err := net.Listen(network, address)
	if err != nil {
		return err
	}
	svr.listener = listener
	return nil
}

// Serve handles connections on the bound listener until Shutdown.
func (svr *Server) Serve() error {
	for {
		conn, err := svr.listener.Accept()
		if err != nil {
			// During shutdown, listener.Close() makes Accept fail; the flag
			// distinguishes intentional close from a real error.
			if svr.shutdown.Load() {
				return nil
			}
			return err
		}
		svr.wg.Add(1)
		go svr.handleConn(conn)
	}
}

// Addr returns the bound listen address, useful when serving on ":0".
func (svr *Server) Addr() string {
	if svr.listener == nil {
		return ""
	}
	return svr.listener.Addr().String()
}

// Shutdown closes the listener and waits for in-flight connections.
func (svr *Server) Shutdown(timeout time.Duration) error {
	svr.shutdown.Store(true)
	if svr.listener != nil {
		svr.listener.Close()
	}

	done := make(chan struct{})
	go func() {
		svr.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("timeout waiting for ongoing requests to finish")
	}
}

// handleConn serves exactly one request on conn, then closes it. Closing is
// what tells the peer the exchange is over, since the client reads to EOF.
func (svr *Server) handleConn(conn net.Conn) {
	defer svr.wg.Done()
	defer conn.Close()

	body, err := readFrame(bufio.NewReader(conn))
	if err != nil {
		svr.logger.WithError(err).Debug("dropping malformed request")
		svr.reply(conn, errorResponse(nil, message.NewError(message.CodeInvalidRequest, "Invalid Request")))
		return
	}

	svr.reply(conn, svr.dispatch(body))
}

// dispatch decodes one JSON-RPC request body and runs the registered method.
func (svr *Server) dispatch(body []byte) *message.Response {
	var req message.Request
	if err := svr.cdc.Decode(body, &req); err != nil {
		return errorResponse(nil, message.NewError(message.CodeParseError, "Parse error"))
	}
	if req.JSONRPC != message.Version {
		return errorResponse(req.ID, message.NewError(message.CodeInvalidRequest, "Invalid Request"))
	}

	m, ok := svr.methods[req.Method]
	if !ok {
		return errorResponse(req.ID, message.NewError(message.CodeMethodNotFound, "Method not found"))
	}

	result, errObj := m.call(req.Params)
	if errObj != nil {
		return errorResponse(req.ID, errObj)
	}

	raw, err := svr.cdc.Encode(result)
	if err != nil {
		return errorResponse(req.ID, message.NewError(message.CodeInternalError, "Internal error"))
	}
	return &message.Response{JSONRPC: message.Version, Result: raw, ID: req.ID}
}

// reply frames resp as a minimal HTTP/1.1 response and writes it.
func (svr *Server) reply(conn net.Conn, resp *message.Response) {
	body, err := svr.cdc.Encode(resp)
	if err != nil {
		svr.logger.WithError(err).Error("failed to encode response")
		return
	}

	var b strings.Builder
	b.WriteString("HTTP/1.1 200 OK" + protocol.CRLF)
	b.WriteString("Content-Type: " + protocol.ContentType + protocol.CRLF)
	b.WriteString("Content-Length: " + strconv.Itoa(len(body)) + protocol.CRLF)
	b.WriteString(protocol.CRLF)
	b.Write(body)

	if _, err := io.WriteString(conn, b.String()); err != nil {
		svr.logger.WithError(err).Debug("failed to write response")
	}
}

func errorResponse(id any, errObj *message.ErrorObject) *message.Response {
	return &message.Response{JSONRPC: message.Version, Error: errObj, ID: id}
}

// readFrame parses one minimal HTTP request: request line, headers until the
// blank line, then a Content-Length-delimited body. It tolerates anything on
// the request line; only Content-Length matters for delimiting.
func readFrame(r *bufio.Reader) ([]byte, error) {
	contentLength := -1
	for first := true; ; first = false {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if first {
			continue // request line
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("malformed header line: %q", line)
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid content length: %q", value)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

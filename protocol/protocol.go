// Package protocol implements the minimal HTTP/1.1 framing that carries one
// JSON-RPC payload over a raw TCP stream.
//
// The outbound frame is a bare POST request with a fixed header order and a
// Content-Length-delimited body. The inbound frame is an arbitrary status
// line plus headers, a blank line, then a JSON body consuming the rest of
// the received bytes.
//
// Frame format:
//
//	POST /<path> HTTP/1.1\r\n
//	Host: <host:port>\r\n
//	Content-Type: application/json\r\n
//	User-Agent: jsonrpc-client\r\n
//	Accept: application/json\r\n
//	[<credential-name>: <credential-value>\r\n]
//	Content-Length: <n>\r\n
//	\r\n
//	<json body, no trailing terminator>
package protocol

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// CRLF terminates every header line; Separator delimits headers from body.
	CRLF      = "\r\n"
	Separator = "\r\n\r\n"

	// UserAgent identifies this client on the wire.
	UserAgent = "jsonrpc-client"

	// ContentType is the media type of every request body.
	ContentType = "application/json"
)

// ErrMissingSeparator reports a reply with no header/body boundary, i.e. a
// malformed or truncated HTTP response.
var ErrMissingSeparator = errors.New("no header/body separator in response")

// EncodeRequest writes a complete request frame (request line + headers +
// body) to w. Headers are emitted in a fixed order so the frame is
// byte-for-byte reproducible. Content-Length counts the UTF-8 bytes of the
// body, not characters, and the body carries no trailing terminator.
//
// cred may be nil, in which case no credential header is emitted.
func EncodeRequest(w io.Writer, addr Address, cred *Credential, body []byte) error {
	var b strings.Builder
	b.WriteString("POST /" + addr.Path + " HTTP/1.1" + CRLF)
	b.WriteString("Host: " + addr.HostPort + CRLF)
	b.WriteString("Content-Type: " + ContentType + CRLF)
	b.WriteString("User-Agent: " + UserAgent + CRLF)
	b.WriteString("Accept: " + ContentType + CRLF)
	if cred != nil {
		b.WriteString(cred.Header() + CRLF)
	}
	b.WriteString(fmt.Sprintf("Content-Length: %d", len(body)) + CRLF)
	b.WriteString(CRLF)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	return nil
}

// DecodeResponse splits raw reply bytes into the header block and the JSON
// body. Bytes are decoded as UTF-8 with invalid sequences replaced rather
// than rejected, the split happens on the first blank-line boundary, and
// trailing whitespace around the body is trimmed before the caller parses
// it as JSON.
//
// A reply with no separator yields ErrMissingSeparator.
func DecodeResponse(raw []byte) (header string, body []byte, err error) {
	text := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	head, rest, found := strings.Cut(text, Separator)
	if !found {
		return "", nil, ErrMissingSeparator
	}
	return head, []byte(strings.TrimSpace(rest)), nil
}

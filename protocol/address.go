package protocol

import "strings"

// Address is a normalized service endpoint: a dialable host:port and the
// request path. Normalization happens once at construction so concatenation
// always yields exactly one separating slash; the value is immutable and
// reusable across many requests.
type Address struct {
	HostPort string // no trailing slash
	Path     string // no leading slash
}

// NewAddress normalizes hostPort and path. Passing already-normalized inputs
// yields the same value, so construction is idempotent.
func NewAddress(hostPort, path string) Address {
	return Address{
		HostPort: strings.TrimRight(hostPort, "/"),
		Path:     strings.Trim(path, "/"),
	}
}

// FullPath joins host:port and path with a single slash.
func (a Address) FullPath() string {
	return a.HostPort + "/" + a.Path
}

package protocol

// Credential is an optional API key rendered on demand in the formats a
// service may expect: request header, query string, or cookie. The transport
// only ever emits the header form; the others exist for callers that embed
// the key elsewhere.
type Credential struct {
	Name  string
	Value string
}

func NewCredential(name, value string) *Credential {
	return &Credential{Name: name, Value: value}
}

// Header renders the credential as a single HTTP header line, without
// terminator: "name: value".
func (c *Credential) Header() string {
	return c.Name + ": " + c.Value
}

// QueryString renders the credential as a query-string pair: "name=value".
func (c *Credential) QueryString() string {
	return c.Name + "=" + c.Value
}

// Cookie renders the credential as a cookie header line.
func (c *Credential) Cookie() string {
	return "Cookie: " + c.Name + "=" + c.Value
}

package codec

// Codec turns envelopes into wire bytes and back. The transport tags each
// HTTP frame with the codec's content type instead of a binary header byte.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	ContentType() string
}

// Default returns the codec used when the caller does not pick one.
func Default() Codec {
	return &JSONCodec{}
}

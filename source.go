package jsonapi

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
)

// ParseBytes parses raw JSON into the generic tree consumed by DecodeOne and
// DecodeMany. Numbers are preserved as json.Number so attribute extraction
// can coerce without precision loss. Syntax errors are returned as-is: they
// sit below the decode boundary, where the log-and-skip policy does not
// apply.
func ParseBytes(b []byte) (any, error) {
	return ParseReader(bytes.NewReader(b))
}

// ParseReader is ParseBytes over a stream.
func ParseReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

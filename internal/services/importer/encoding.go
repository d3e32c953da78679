package importer

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeStatement reads an uploaded statement and decodes it from
// ISO-8859-1, the encoding Yape and regional bank exports use for accented
// characters. A read failure here is the only hard failure the import path
// can produce.
func DecodeStatement(r io.Reader) (string, error) {
	decoded := transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("reading statement: %w", err)
	}
	return string(data), nil
}

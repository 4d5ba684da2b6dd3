package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed sample.yaml
var sample []byte

// Sample returns the built-in people dataset. It intentionally contains
// duplicated records
func Sample() (*Document, error) {
	return Decode(bytes.NewReader(sample))
}

// internal/writers/hodeco.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// MapEncoder serializes one hodeco map per record to the side-channel file.
// Implementations buffer internally; Flush must be called once after the
// last Encode.
type MapEncoder interface {
	Encode(id string, m []int) error
	Flush() error
}

// mapEncoders is the format → constructor registry. Encoder files register
// themselves in init().
var mapEncoders = map[string]func(io.Writer) MapEncoder{}

// RegisterMapEncoder installs a constructor for format (last wins).
func RegisterMapEncoder(format string, fn func(io.Writer) MapEncoder) {
	mapEncoders[format] = fn
}

// NewMapEncoder returns the encoder registered for format.
func NewMapEncoder(format string, w io.Writer) (MapEncoder, error) {
	fn, ok := mapEncoders[format]
	if !ok {
		return nil, fmt.Errorf("unknown hodeco map format %q (want %s)", format, strings.Join(MapFormats(), " | "))
	}
	return fn(w), nil
}

// MapFormats lists the registered formats, sorted.
func MapFormats() []string {
	out := make([]string, 0, len(mapEncoders))
	for f := range mapEncoders {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

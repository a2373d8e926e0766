// internal/writers/hodeco_cbor.go
package writers

import (
	"bufio"
	"io"

	"github.com/fxamacker/cbor/v2"

	"hoco/pkg/api"
)

// FormatCBOR is the default hodeco map format: one CBOR map per record
// with "id" and "map" entries, written back to back with no outer framing.
const FormatCBOR = "cbor"

func init() {
	RegisterMapEncoder(FormatCBOR, newCBORMapEncoder)
}

type cborMapEncoder struct {
	bw  *bufio.Writer
	enc *cbor.Encoder
}

func newCBORMapEncoder(w io.Writer) MapEncoder {
	bw := bufio.NewWriterSize(w, 64<<10)
	return &cborMapEncoder{bw: bw, enc: cbor.NewEncoder(bw)}
}

func (e *cborMapEncoder) Encode(id string, m []int) error {
	return e.enc.Encode(api.HodecoMapV1{ID: id, Map: m})
}

func (e *cborMapEncoder) Flush() error { return e.bw.Flush() }

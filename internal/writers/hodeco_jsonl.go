// internal/writers/hodeco_jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"hoco/pkg/api"
)

// FormatJSONL writes one {"id": ..., "map": [...]} object per line, for
// consumers without a CBOR decoder to hand.
const FormatJSONL = "jsonl"

func init() {
	RegisterMapEncoder(FormatJSONL, newJSONLMapEncoder)
}

type jsonlMapEncoder struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func newJSONLMapEncoder(w io.Writer) MapEncoder {
	bw := bufio.NewWriterSize(w, 64<<10)
	return &jsonlMapEncoder{bw: bw, enc: json.NewEncoder(bw)}
}

func (e *jsonlMapEncoder) Encode(id string, m []int) error {
	return e.enc.Encode(api.HodecoMapV1{ID: id, Map: m})
}

func (e *jsonlMapEncoder) Flush() error { return e.bw.Flush() }

// pkg/api/hodeco_v1.go
package api

// HodecoMapV1 is the stable wire schema for one record's hodeco map: the
// run start offsets in the source sequence plus a trailing total-length
// entry. One set of json tags serves both sinks; fxamacker/cbor falls back
// to json tags, so the same type works with both encoders. Keep fields,
// names, and types stable.
type HodecoMapV1 struct {
	ID  string `json:"id"`
	Map []int  `json:"map"`
}

// core/hoco/record.go
package hoco

// CompressedRecord is one sequence record after homopolymer compression, as
// it flows from the compute workers to the writer stage.
type CompressedRecord struct {
	ID   string
	Desc string

	// Seq holds one symbol per maximal run of the source sequence; no two
	// adjacent symbols are equal.
	Seq []byte

	// Map is the record's hodeco map: the start offset of each run in the
	// source sequence plus a trailing total-length entry, so len(Map) ==
	// len(Seq)+1. nil when map production is disabled.
	Map []int
}

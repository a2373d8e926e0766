// core/hoco/hoco.go
package hoco

// Compress returns the homopolymer-compressed form of seq: one symbol per
// maximal run of equal adjacent symbols, in run order. The scan is a single
// forward pass that keeps only the last emitted symbol; a symbol is emitted
// iff it differs from that one. Empty input yields nil.
func Compress[E comparable](seq []E) []E {
	if len(seq) == 0 {
		return nil
	}
	out := make([]E, 1, len(seq))
	last := seq[0]
	out[0] = last
	for _, s := range seq[1:] {
		if s != last {
			out = append(out, s)
			last = s
		}
	}
	return out
}

// CompressWithMap is Compress plus, per emitted symbol, the 0-based start
// offset of the run that produced it. The trailing total-length entry of a
// hodeco map is NOT appended here: the scan cannot know the input is complete
// until after its last element, and the append must happen exactly once even
// for an empty sequence. Callers append len(seq) themselves.
func CompressWithMap[E comparable](seq []E) ([]E, []int) {
	if len(seq) == 0 {
		return nil, nil
	}
	out := make([]E, 1, len(seq))
	offs := make([]int, 1, len(seq)+1)
	last := seq[0]
	out[0] = last
	offs[0] = 0
	for i, s := range seq[1:] {
		if s != last {
			out = append(out, s)
			offs = append(offs, i+1)
			last = s
		}
	}
	return out, offs
}

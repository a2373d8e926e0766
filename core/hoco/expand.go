// core/hoco/expand.go
package hoco

import "fmt"

// maxExpandTotal caps the total length one hodeco map may claim; larger
// values only come from corrupt maps.
const maxExpandTotal int64 = 1 << 40

// Expand inverts Compress given the hodeco map for comp, i.e. the offsets
// from CompressWithMap with the trailing total-length entry appended. Each
// symbol is repeated m[i+1]-m[i] times. The map must hold exactly
// len(comp)+1 entries, start at 0, and be strictly increasing (an empty
// sequence has the single-entry map [0]). The whole map is validated before
// the output is allocated, so a corrupt map errors rather than driving a
// bad allocation.
func Expand[E comparable](comp []E, m []int) ([]E, error) {
	if len(m) != len(comp)+1 {
		return nil, fmt.Errorf("hodeco map has %d entries for %d symbols, want %d", len(m), len(comp), len(comp)+1)
	}
	if m[0] != 0 {
		return nil, fmt.Errorf("hodeco map starts at %d, want 0", m[0])
	}
	for i := 1; i < len(m); i++ {
		if m[i] <= m[i-1] {
			return nil, fmt.Errorf("hodeco map not strictly increasing at entry %d", i)
		}
	}
	total := m[len(m)-1]
	if int64(total) > maxExpandTotal {
		return nil, fmt.Errorf("hodeco map total length %d exceeds %d", total, maxExpandTotal)
	}
	out := make([]E, 0, total)
	for i, s := range comp {
		for j := 0; j < m[i+1]-m[i]; j++ {
			out = append(out, s)
		}
	}
	return out, nil
}

// RunLengths converts a hodeco map (with trailing total-length entry) into
// the run length behind each emitted symbol.
func RunLengths(m []int) []int {
	if len(m) < 2 {
		return nil
	}
	runs := make([]int, len(m)-1)
	for i := range runs {
		runs[i] = m[i+1] - m[i]
	}
	return runs
}

// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadAllCtx parses FASTA from r and calls emit once per record, in file
// order. Sequence lines are concatenated with surrounding whitespace
// stripped; blank lines are skipped. Every Record owns its Seq slice, so
// emit may hand records to other goroutines.
//
// It is cancelable: ctx is checked between lines, so a Done context stops
// the scan promptly even inside a very large record.
func ReadAllCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur   Record
		inRec bool
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		rec := cur
		cur, inRec = Record{}, false
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line[1:])
			if id == "" {
				return fmt.Errorf("fasta: empty record id")
			}
			cur, inRec = Record{ID: id, Desc: desc}, true
			continue
		}
		if !inRec {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadAll is ReadAllCtx with a background context.
func ReadAll(r io.Reader, emit func(Record) error) error {
	return ReadAllCtx(context.Background(), r, emit)
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}

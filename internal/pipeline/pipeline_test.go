package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"hoco-core/hoco"
)

// buildFASTA returns n records with varied run structure plus the raw
// sequence per id.
func buildFASTA(n int) (string, map[string]string) {
	var sb strings.Builder
	seqs := make(map[string]string, n)
	motifs := []string{"AACCGGTT", "ACGT", "AAAA", "ACAARRRTGGGTGTJASAAAI", ""}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("rec%03d", i)
		seq := strings.Repeat(motifs[i%len(motifs)], 1+i%3)
		seqs[id] = seq
		sb.WriteString(">" + id + "\n" + seq + "\n")
	}
	return sb.String(), seqs
}

func TestForEachRecordVisitsEveryRecord(t *testing.T) {
	const n = 50
	in, seqs := buildFASTA(n)

	got := make(map[string]string, n)
	err := ForEachRecord(context.Background(), Config{Threads: 4}, strings.NewReader(in),
		func(cr hoco.CompressedRecord) error {
			if _, dup := got[cr.ID]; dup {
				t.Errorf("record %q visited twice", cr.ID)
			}
			got[cr.ID] = string(cr.Seq)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d records out, got %d", n, len(got))
	}
	for id, seq := range seqs {
		want := string(hoco.Compress([]byte(seq)))
		if got[id] != want {
			t.Errorf("record %q: got %q, want %q", id, got[id], want)
		}
	}
}

func TestForEachRecordWithMapRoundTrip(t *testing.T) {
	in, seqs := buildFASTA(20)

	seen := 0
	err := ForEachRecord(context.Background(), Config{Threads: 3, WithMap: true}, strings.NewReader(in),
		func(cr hoco.CompressedRecord) error {
			seen++
			if len(cr.Map) != len(cr.Seq)+1 {
				return fmt.Errorf("record %q: map has %d entries for %d symbols", cr.ID, len(cr.Map), len(cr.Seq))
			}
			orig, err := hoco.Expand(cr.Seq, cr.Map)
			if err != nil {
				return fmt.Errorf("record %q: %w", cr.ID, err)
			}
			if string(orig) != seqs[cr.ID] {
				return fmt.Errorf("record %q: round trip gave %q, want %q", cr.ID, orig, seqs[cr.ID])
			}
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if seen != 20 {
		t.Fatalf("expected 20 records, got %d", seen)
	}
}

func TestForEachRecordUnbufferedChannels(t *testing.T) {
	in, seqs := buildFASTA(30)

	// Explicit 0 runs the stage channels as rendezvous points; negative
	// values clamp to the same.
	for _, buffer := range []int{0, -8} {
		got := make(map[string]string, 30)
		err := ForEachRecord(context.Background(), Config{Threads: 2, Buffer: buffer}, strings.NewReader(in),
			func(cr hoco.CompressedRecord) error {
				got[cr.ID] = string(cr.Seq)
				return nil
			})
		if err != nil {
			t.Fatalf("buffer %d: pipeline err: %v", buffer, err)
		}
		if len(got) != 30 {
			t.Fatalf("buffer %d: expected 30 records out, got %d", buffer, len(got))
		}
		for id, seq := range seqs {
			if got[id] != string(hoco.Compress([]byte(seq))) {
				t.Errorf("buffer %d: record %q: got %q", buffer, id, got[id])
			}
		}
	}
}

func TestForEachRecordEmptyInput(t *testing.T) {
	n := 0
	err := ForEachRecord(context.Background(), Config{Threads: 2}, strings.NewReader(""),
		func(hoco.CompressedRecord) error { n++; return nil })
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no records from empty input, got %d", n)
	}
}

func TestForEachRecordVisitErrorPropagates(t *testing.T) {
	in, _ := buildFASTA(30)
	boom := errors.New("downstream full")

	var visits atomic.Int64
	err := ForEachRecord(context.Background(), Config{Threads: 4}, strings.NewReader(in),
		func(hoco.CompressedRecord) error {
			if visits.Add(1) == 3 {
				return boom
			}
			return nil
		})
	if !errors.Is(err, boom) {
		t.Fatalf("expected visit error, got %v", err)
	}
}

func TestForEachRecordMalformedInput(t *testing.T) {
	err := ForEachRecord(context.Background(), Config{Threads: 1}, strings.NewReader("ACGT\n"),
		func(hoco.CompressedRecord) error { return nil })
	if err == nil {
		t.Fatal("expected parse error for headerless input")
	}
}

func TestForEachRecordCancelImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	in, _ := buildFASTA(10)
	n := 0
	err := ForEachRecord(ctx, Config{Threads: 2}, strings.NewReader(in),
		func(hoco.CompressedRecord) error { n++; return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

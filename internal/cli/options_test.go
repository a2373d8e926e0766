// internal/cli/options_test.go
package cli

import (
	"flag"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestInputOnlyOK(t *testing.T) {
	o := mustParse(t, "ref.fa")
	if o.Input != "ref.fa" || o.Output != "" || o.MapOutput != "" {
		t.Errorf("want input only, got %+v", o)
	}
	if o.Threads != 1 || o.Buffer != DefaultBuffer || o.MapFormat != MapFormatCBOR {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestAllPositionalsOK(t *testing.T) {
	o := mustParse(t, "in.fasta.gz", "out.fa.zst", "maps.cbor")
	if o.Input != "in.fasta.gz" || o.Output != "out.fa.zst" || o.MapOutput != "maps.cbor" {
		t.Errorf("bad positional parse %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "ref.fa", "out.fa", "--threads", "4", "--map-format", "jsonl")
	if o.Threads != 4 || o.MapFormat != MapFormatJSONL || o.Output != "out.fa" {
		t.Errorf("bad mixed parse %+v", o)
	}
}

func TestMapFlagAlias(t *testing.T) {
	o := mustParse(t, "--map", "maps.cbor", "ref.fa", "out.fa")
	if o.MapOutput != "maps.cbor" {
		t.Errorf("--map not applied: %+v", o)
	}
}

func TestBufferSizeZeroOK(t *testing.T) {
	o := mustParse(t, "--buffer-size", "0", "ref.fa")
	if o.Buffer != 0 {
		t.Errorf("explicit zero buffer lost: %+v", o)
	}
}

func TestErrorNoInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), nil); err == nil {
		t.Fatal("expected error with no input")
	}
}

func TestErrorUnsupportedExtension(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"reads.fastq"})
	if err == nil || !strings.Contains(err.Error(), "unsupported input") {
		t.Fatalf("want unsupported input error, got %v", err)
	}
}

func TestErrorMapWithoutOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"ref.fa", "--map", "maps.cbor"})
	if err == nil || !strings.Contains(err.Error(), "requires an explicit output file") {
		t.Fatalf("want map-without-output error, got %v", err)
	}
}

func TestErrorMapConflict(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"ref.fa", "out.fa", "a.cbor", "--map", "b.cbor"})
	if err == nil || !strings.Contains(err.Error(), "conflicts") {
		t.Fatalf("want conflict error, got %v", err)
	}
}

func TestErrorTooManyPositionals(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a.fa", "b.fa", "c", "d"}); err == nil {
		t.Fatal("expected error for 4 positionals")
	}
}

func TestErrorNegativeThreads(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--threads", "-1", "ref.fa"}); err == nil {
		t.Fatal("expected error for negative threads")
	}
}

func TestErrorNegativeBuffer(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--buffer-size", "-1", "ref.fa"}); err == nil {
		t.Fatal("expected error for negative buffer size")
	}
}

func TestErrorBadMapFormat(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--map-format", "xml", "ref.fa"})
	if err == nil || !strings.Contains(err.Error(), "invalid --map-format") {
		t.Fatalf("want map-format error, got %v", err)
	}
}

func TestHelpRequested(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if err != flag.ErrHelp {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatalf("version flag lost: %+v", o)
	}
}

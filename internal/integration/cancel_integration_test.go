package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hoco/internal/app"
)

func TestCanceledContextExit130(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cancel.fa")
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString(">r\nACGTACGT\n")
	}
	if err := os.WriteFile(fn, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // canceled before the run starts

	code := app.RunContext(ctx, []string{fn, "--quiet"}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"io"

	"hoco-core/hoco"
	"hoco/internal/pipeline"
)

// RunStream runs the compression pipeline and forwards every compressed
// record via send. It returns the number of records streamed and the first
// error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	in io.Reader,
	send func(hoco.CompressedRecord) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachRecord(ctx, cfg, in, func(cr hoco.CompressedRecord) error {
		if err := send(cr); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}

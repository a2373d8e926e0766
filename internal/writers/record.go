// internal/writers/record.go
package writers

import (
	"fmt"
	"io"

	"hoco-core/fasta"
	"hoco-core/hoco"
)

// StartRecordWriter spins up the single writer goroutine for compressed
// records. Records are written as FASTA to out; when mapEnc is non-nil each
// record's hodeco map goes to the side channel through mapEnc, paired with
// the record. The error channel yields exactly one value: the first write
// error as soon as it happens, so the caller can cancel the producers, or
// nil after the input channel is closed and both sinks are flushed.
//
// After an error the goroutine keeps draining the channel, so producers
// never block on a dead writer.
func StartRecordWriter(out io.Writer, mapEnc MapEncoder, bufSize int) (chan<- hoco.CompressedRecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan hoco.CompressedRecord, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fw := fasta.NewWriter(out)
		var err error
		report := func(e error) {
			if err == nil && e != nil {
				err = e
				errCh <- e
			}
		}
		for cr := range in {
			if err != nil {
				continue
			}
			if werr := fw.WriteRecord(cr.ID, cr.Desc, cr.Seq); werr != nil {
				report(werr)
				continue
			}
			if mapEnc == nil {
				continue
			}
			if cr.Map == nil {
				report(fmt.Errorf("record %q has no hodeco map", cr.ID))
				continue
			}
			report(mapEnc.Encode(cr.ID, cr.Map))
		}
		if err != nil {
			return
		}
		if e := fw.Flush(); e != nil {
			errCh <- e
			return
		}
		if mapEnc != nil {
			if e := mapEnc.Flush(); e != nil {
				errCh <- e
				return
			}
		}
		errCh <- nil
	}()

	return in, errCh
}

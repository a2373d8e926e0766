// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

// Writer emits FASTA records with the whole sequence on a single line,
// the same layout the reader accepts.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64*1024)}
}

// WriteRecord writes one record. A non-empty desc is separated from the id
// by a single space.
func (w *Writer) WriteRecord(id, desc string, seq []byte) error {
	if err := w.bw.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(id); err != nil {
		return err
	}
	if desc != "" {
		if err := w.bw.WriteByte(' '); err != nil {
			return err
		}
		if _, err := w.bw.WriteString(desc); err != nil {
			return err
		}
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.bw.Write(seq); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Flush flushes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// core/fasta/open.go
package fasta

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// multiWriteCloser closes its closers in order; the compressor comes before
// the underlying file so buffered compressed data reaches disk.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading, transparently decompressing gzip and
// zstandard input. Detection is by magic number (1F 8B gzip, 28 B5 2F FD
// zstandard) with the file suffix as fallback for non-seekable cases.
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case (n == 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		rc := zr.IOReadCloser()
		return &multiReadCloser{Reader: rc, closers: []io.Closer{rc, fh}}, nil
	}
	return fh, nil
}

// Create creates path for writing, compressing by suffix (.gz gzip, .zst
// zstandard). Close flushes the compressor before closing the file.
func Create(path string) (io.WriteCloser, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiWriteCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	}
	return fh, nil
}

// SupportedInput reports whether path names a FASTA file this tool accepts:
// .fa, .fasta, or .fna, each optionally followed by one .gz or .zst suffix.
func SupportedInput(path string) bool {
	for _, comp := range []string{".gz", ".zst"} {
		if strings.HasSuffix(path, comp) {
			path = strings.TrimSuffix(path, comp)
			break
		}
	}
	for _, ext := range []string{".fa", ".fasta", ".fna"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

package bgpsim

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
)

// compressedReader opens a plain, .gz or .bz2 file transparently and hands
// back a line Scanner. Relationship/ROV/seed files in this domain are
// typically shipped gzip-compressed (CAIDA publishes them that way), so
// this reader keeps that convenience even though the inputs are otherwise
// plain UTF-8 text.
type compressedReader struct {
	filename     string
	fp           io.ReadCloser
	decompressed io.Reader
	toClose      io.ReadCloser // bzip2.Reader has no Close method
}

func newCompressedReader(filename string) *compressedReader {
	return &compressedReader{filename: filename}
}

func (r *compressedReader) Open() error {
	fp, err := os.Open(r.filename)
	if err != nil {
		return errors.New("[compressedReader]: " + err.Error() + " " + r.filename)
	}
	r.fp = fp

	switch {
	case strings.HasSuffix(r.filename, ".gz"):
		gz, gzErr := gzip.NewReader(r.fp)
		if gzErr != nil {
			r.fp.Close()
			return errors.New("[compressedReader]: " + gzErr.Error() + " " + r.filename)
		}
		r.toClose = gz
		r.decompressed = gz
	case strings.HasSuffix(r.filename, ".bz2"):
		r.decompressed = bzip2.NewReader(r.fp)
	default:
		r.decompressed = r.fp
	}
	return nil
}

func (r *compressedReader) Scanner() *bufio.Scanner {
	return bufio.NewScanner(r.decompressed)
}

func (r *compressedReader) Close() {
	if r.fp != nil {
		r.fp.Close()
	}
	if r.toClose != nil {
		r.toClose.Close()
	}
}

// Package zwrap takes a file pointer and optionally wraps it in a gzip
// reader or writer, so upon calling Close, the compressor is closed,
// followed by the underlying file.
// The gzip code is klauspost/compress, which is a drop in replacement
// for the standard library and rather faster on long sequence files.

package zwrap

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
)

var gzMagic = []byte{0x1f, 0x8b}

// IsGzip looks at the first bytes of a file to see if it is
// gzip compressed.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Wrap takes a source like a file pointer and wraps it
// so the correct Close and Read will be called.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	var fpz FpGzip
	var err error
	fpz.fp = fp
	fpz.zrdr, err = gzip.NewReader(fpz.fp)
	return &fpz, err
}

// GzWrtr is the writing side. If zwrtr is nil, data goes straight to
// the file.
type GzWrtr struct {
	fp    io.WriteCloser
	zwrtr *gzip.Writer
}

// WrapWriter wraps fp in a gzip writer if compress is set.
func WrapWriter(fp io.WriteCloser, compress bool) *GzWrtr {
	g := &GzWrtr{fp: fp}
	if compress {
		g.zwrtr = gzip.NewWriter(fp)
	}
	return g
}

func (g *GzWrtr) Write(p []byte) (int, error) {
	if g.zwrtr != nil {
		return g.zwrtr.Write(p)
	}
	return g.fp.Write(p)
}

// Close finishes the compressed stream, then closes the file. Both
// errors are returned.
func (g *GzWrtr) Close() error {
	if g.zwrtr == nil {
		return g.fp.Close()
	}
	return errors.Join(g.zwrtr.Close(), g.fp.Close())
}

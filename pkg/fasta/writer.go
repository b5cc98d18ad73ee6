// 14 Oct 2026

package fasta

import (
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/andrew-torda/seqbench/pkg/common"
)

// DefaultBufSize holds 1024 full lines, each with its newline.
const DefaultBufSize = (common.LineLen + 1) * 1024

var ErrBufSize = errors.New("buffer size must be a multiple of line length (including line break)")

// Writer collects sequence lines in a fixed buffer and only writes to
// the underlying writer when the buffer is full, or on Flush.
// Headers are not buffered. The buffer comes from mcache and goes back
// on Close.
type Writer struct {
	w   io.Writer
	buf []byte
	ndx int // next free byte in buf
}

// NewWriter checks the buffer size before anything is written. A
// size that is not a multiple of LineLen+1 is a configuration mistake.
func NewWriter(w io.Writer, bufSize int) (*Writer, error) {
	if bufSize <= 0 || bufSize%(common.LineLen+1) != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrBufSize, bufSize)
	}
	return &Writer{w: w, buf: mcache.Malloc(bufSize)}, nil
}

// Header writes ">id desc\n" straight through. Anything still in the
// buffer goes first, so records never interleave.
func (fw *Writer) Header(id, desc string) error {
	if err := fw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(fw.w, "%c%s %s\n", common.CmmtChar, id, desc); err != nil {
		return fmt.Errorf("writing header %s: %w", id, err)
	}
	return nil
}

// appendFunc reserves n bytes plus a newline, lets fill write the n
// bytes in place and advances the cursor. n is at most LineLen.
func (fw *Writer) appendFunc(n int, fill func([]byte)) error {
	if n > common.LineLen {
		n = common.LineLen
	}
	if fw.ndx+n+1 > len(fw.buf) {
		if err := fw.Flush(); err != nil {
			return err
		}
	}
	fill(fw.buf[fw.ndx : fw.ndx+n])
	fw.ndx += n
	fw.buf[fw.ndx] = '\n'
	fw.ndx++
	return nil
}

// Append writes up to LineLen symbols from p as one line. It returns
// the number of symbols used.
func (fw *Writer) Append(p []byte) (int, error) {
	n := min(len(p), common.LineLen)
	err := fw.appendFunc(n, func(dst []byte) { copy(dst, p) })
	return n, err
}

// Flush writes whatever is in the buffer, which may be less than a
// full buffer, and resets the cursor.
func (fw *Writer) Flush() error {
	if fw.ndx == 0 {
		return nil
	}
	n := fw.ndx
	fw.ndx = 0
	if _, err := fw.w.Write(fw.buf[:n]); err != nil {
		return fmt.Errorf("flushing %d bytes: %w", n, err)
	}
	return nil
}

// Close flushes and returns the buffer to the pool. It does not close
// the underlying writer. The Writer cannot be used afterwards.
func (fw *Writer) Close() error {
	err := fw.Flush()
	if fw.buf != nil {
		mcache.Free(fw.buf)
		fw.buf = nil
	}
	return err
}

// brokenio wraps writers and readers so they fail on purpose.
// Typical use: the kernels write to an io.Writer. In testing we write
// w = brokenio.NewWriter(w, 100) and the 101st byte fails. We can then
// check that the error comes all the way back and nothing is hidden.
// Failure points are fixed byte counts, not random, so a failing test
// fails the same way every time.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

var ErrBroken = errors.New("brokenio: deliberate failure")

// BrknWrtr passes data through until its budget of bytes is used up.
// The write that crosses the budget is cut short and returns an error.
type BrknWrtr struct {
	w       io.Writer
	budget  int
	err     error
	nCalled int
	nByte   int
}

// NewWriter returns a writer that accepts budget bytes. A negative
// budget means it never fails.
func NewWriter(w io.Writer, budget int) *BrknWrtr {
	return &BrknWrtr{w: w, budget: budget, err: ErrBroken}
}

// SetErr sets the error returned on failure, for example syscall.EPIPE
// to look like a closed pipe.
func (bw *BrknWrtr) SetErr(err error) { bw.err = err }

// NCalled is the number of calls to Write
func (bw *BrknWrtr) NCalled() int { return bw.nCalled }

// NByte is the number of bytes passed through
func (bw *BrknWrtr) NByte() int { return bw.nByte }

func (bw *BrknWrtr) Write(p []byte) (int, error) {
	bw.nCalled++
	if bw.budget < 0 {
		n, err := bw.w.Write(p)
		bw.nByte += n
		return n, err
	}
	left := bw.budget - bw.nByte
	if left >= len(p) {
		n, err := bw.w.Write(p)
		bw.nByte += n
		return n, err
	}
	if left < 0 {
		left = 0
	}
	n, _ := bw.w.Write(p[:left])
	bw.nByte += n
	return n, fmt.Errorf("after %d bytes: %w", bw.nByte, bw.err)
}

// BrknRdrClsr is a ReadCloser which returns an error on read number
// failAt (counting from 1). Before that it behaves like the original.
type BrknRdrClsr struct {
	rdr_orig io.ReadCloser
	failAt   int
	nCalled  int
}

// NewReader wraps rIn. failAt <= 0 means never fail.
func NewReader(rIn io.ReadCloser, failAt int) *BrknRdrClsr {
	return &BrknRdrClsr{rdr_orig: rIn, failAt: failAt}
}

func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	r.nCalled++
	if r.failAt > 0 && r.nCalled >= r.failAt {
		return 0, ErrBroken
	}
	return r.rdr_orig.Read(p)
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdr_orig.Close() }

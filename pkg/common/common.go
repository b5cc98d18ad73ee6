// 29 Apr 2020

package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	CmmtChar byte = '>' // introduces a record header in fasta format
	LineLen       = 60  // sequence characters per output line
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// Warnf prints a warning to dst unless quiet is set. Kernels never
// call this, only the drivers, so stdout stays clean.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// IsBrokenPipe reports whether an error is a broken or closed pipe,
// which is what we get when a consumer like `head` stops reading early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

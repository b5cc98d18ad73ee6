// 14 Oct 2026

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	. "github.com/andrew-torda/seqbench/pkg/common"
	"github.com/andrew-torda/seqbench/pkg/fasta"
	"github.com/andrew-torda/seqbench/pkg/zwrap"
)

// nopCloser lets us treat stdout like a file we opened
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func main() {
	f := flag.NewFlagSet("fasta", flag.ExitOnError)
	var args fasta.Args
	var outName string
	var gz bool
	f.StringVar(&outName, "o", "-", "output file, - for stdout")
	f.BoolVar(&gz, "z", false, "gzip the output")
	f.IntVar(&args.BufSize, "b", fasta.DefaultBufSize, "output buffer size, a multiple of 61")
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: fasta [options] [N]")
		f.PrintDefaults()
	}
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}

	args.N = fasta.DefaultN
	switch f.NArg() {
	case 0:
	case 1:
		n, err := strconv.ParseUint(f.Arg(0), 10, 31)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed converting %s to positive integer\n", f.Arg(0))
			os.Exit(ExitUsageError)
		}
		args.N = int(n)
	default:
		fmt.Fprintln(f.Output(), "Too many args")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	if fw, err := fasta.NewWriter(io.Discard, args.BufSize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsageError)
	} else {
		fw.Close()
	}

	var out io.WriteCloser = nopCloser{os.Stdout}
	if outName != "-" && outName != "" {
		fp, err := os.Create(outName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		out = fp
	}
	zw := zwrap.WrapWriter(out, gz)
	args.Wrtr = zw

	err := fasta.Main(&args)
	if e := zw.Close(); err == nil {
		err = e
	}
	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case IsBrokenPipe(err):
		os.Exit(ExitSuccess)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}

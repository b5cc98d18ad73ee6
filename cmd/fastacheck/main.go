// 16 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"

	. "github.com/andrew-torda/seqbench/pkg/common"
	"github.com/andrew-torda/seqbench/pkg/composition"
)

func main() {
	f := flag.NewFlagSet("fastacheck", flag.ExitOnError)
	var args composition.Args
	f.BoolVar(&args.Check, "c", false, "check against the frequencies used by fasta")
	f.BoolVar(&args.CountOnly, "n", false, "only count records")
	f.Float64Var(&args.Tol, "t", composition.DefaultTol, "tolerance for -c")
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: fastacheck [options] file")
		f.PrintDefaults()
	}
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 1 {
		fmt.Fprintln(f.Output(), "Expected one file name. Got", f.NArg())
		f.Usage()
		os.Exit(ExitUsageError)
	}
	args.Fname = f.Arg(0)
	args.Wrtr = os.Stdout
	if err := composition.Main(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

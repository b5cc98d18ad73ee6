// 15 Oct 2026

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	. "github.com/andrew-torda/seqbench/pkg/common"
	"github.com/andrew-torda/seqbench/pkg/nbody"
)

func main() {
	f := flag.NewFlagSet("nbody", flag.ExitOnError)
	var args nbody.Args
	var plotName string
	var quiet bool
	f.BoolVar(&args.JSON, "json", false, "write a JSON report")
	f.StringVar(&plotName, "plot", "", "write a PNG of energy against step to this file")
	f.IntVar(&args.Every, "every", 0, "steps between plotted points, 0 for automatic")
	f.Float64Var(&args.DT, "dt", nbody.DT, "time step in years")
	f.BoolVar(&quiet, "q", false, "no warnings")
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: nbody [options] nsteps")
		f.PrintDefaults()
	}
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 1 {
		fmt.Fprintln(f.Output(), "Need exactly one number of steps")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	n, err := strconv.ParseUint(f.Arg(0), 10, 31)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to positive integer\n", f.Arg(0))
		os.Exit(ExitUsageError)
	}
	args.Steps = int(n)
	if !(args.DT > 0) {
		fmt.Fprintf(os.Stderr, "Time step must be positive, got %g\n", args.DT)
		os.Exit(ExitUsageError)
	}
	args.Wrtr = os.Stdout

	if args.Every != 0 && plotName == "" {
		Warnf(os.Stderr, quiet, "-every does nothing without -plot")
	}
	if args.DT != nbody.DT {
		Warnf(os.Stderr, quiet, "time step %g, energies will not match the reference values", args.DT)
	}

	var plotFile io.WriteCloser
	if plotName != "" {
		if plotFile, err = os.Create(plotName); err != nil {
			fmt.Fprintln(os.Stderr, "File for plot:", err)
			os.Exit(ExitFailure)
		}
		args.Plot = plotFile
	}
	err = nbody.Main(&args)
	if plotFile != nil {
		if e := plotFile.Close(); err == nil {
			err = e
		}
	}
	if err != nil && !IsBrokenPipe(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

// 16 Oct 2026

package composition

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seqbench/pkg/fasta"
	"github.com/andrew-torda/seqbench/pkg/numseq"
	"github.com/andrew-torda/seqbench/pkg/zwrap"
)

const DefaultTol = 0.01

// Args is the set of arguments passed to the main function
type Args struct {
	Fname     string
	Wrtr      io.Writer
	Tol       float64 // allowed difference in fractions, zero means DefaultTol
	Check     bool    // compare against the generator's frequencies
	CountOnly bool    // only count records
}

// aluFreqs gives the composition of the repeating record, which is
// just the composition of the source sequence.
func aluFreqs() ([]byte, []float32) {
	var n [256]int
	for i := 0; i < len(fasta.Alu); i++ {
		n[fasta.Alu[i]]++
	}
	var syms []byte
	var probs []float32
	for c, k := range n {
		if k > 0 {
			syms = append(syms, byte(c))
			probs = append(probs, float32(k)/float32(len(fasta.Alu)))
		}
	}
	return syms, probs
}

// countRecords counts headers, going through the decompressor if
// the file is gzipped.
func countRecords(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	zr, err := zwrap.Wrap(fp)
	if err != nil {
		return numseq.ByMmap(fname)
	}
	return numseq.ByReading(zr, 64*1024)
}

// CheckGenerated compares each record of a generated file against what
// the generator was told to produce.
func CheckGenerated(t *Tally, tol float64) error {
	aluSyms, aluProbs := aluFreqs()
	expect := []struct {
		syms  []byte
		probs []float32
	}{
		{aluSyms, aluProbs},
		{fasta.IUBSyms, fasta.IUBProbs},
		{fasta.HomoSapiensSyms, fasta.HomoSapiensProbs},
	}
	var errs []error
	for i, r := range fasta.Records {
		rec := t.Find(r.ID)
		if rec < 0 {
			errs = append(errs, fmt.Errorf("record %s missing", r.ID))
			continue
		}
		if got := t.Records[rec].Cmmt; got != r.ID+" "+r.Desc {
			errs = append(errs, fmt.Errorf("record %s has header %q", r.ID, got))
		}
		if err := t.Check(rec, expect[i].syms, expect[i].probs, tol); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Main reads args.Fname and writes the composition table, or only the
// number of records.
func Main(args *Args) error {
	if args.CountOnly {
		n, err := countRecords(args.Fname)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(args.Wrtr, n)
		return err
	}
	t, err := ReadFile(args.Fname)
	if err != nil {
		return err
	}
	if err := t.Write(args.Wrtr); err != nil {
		return err
	}
	if !args.Check {
		return nil
	}
	tol := args.Tol
	if tol == 0 {
		tol = DefaultTol
	}
	return CheckGenerated(t, tol)
}

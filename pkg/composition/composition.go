// 16 Oct 2026

// Package composition reads fasta output back in and counts which
// symbols occur in each record. It is how we check that the random
// records have the frequencies they were asked for.
// Counts go in a matrix, one row per record and one column per
// symbol that was seen anywhere in the file. Like seq's UsageSite,
// they are float32, since we want fractions at the end.
package composition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/andrew-torda/matrix"
	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/seqbench/pkg/common"
	"github.com/andrew-torda/seqbench/pkg/zwrap"
)

const MaxSym uint8 = 127

var ErrNoRecords = errors.New("no fasta records found")

// Record is the header of one record, without the '>', and the number
// of sequence characters after it.
type Record struct {
	Cmmt string
	Len  int
}

// Tally holds the counts for a whole file
type Tally struct {
	Records []Record
	revmap  []byte          // revmap[2] is the symbol in column 2
	mapping [MaxSym]int16   // mapping['c'] is the column for c, -1 if unused
	counts  *matrix.FMatrix2d
}

// Count goes through fasta formatted bytes. Anything before the first
// '>' is an error, as is a non-ascii symbol.
func Count(data []byte) (*Tally, error) {
	var raw [][MaxSym]int
	var used [MaxSym]bool
	t := &Tally{}
	for len(data) > 0 {
		nl := bytes.IndexByte(data, '\n')
		var line []byte
		if nl == -1 {
			line, data = data, nil
		} else {
			line, data = data[:nl], data[nl+1:]
		}
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == common.CmmtChar {
			t.Records = append(t.Records, Record{Cmmt: string(line[1:])})
			raw = append(raw, [MaxSym]int{})
			continue
		}
		if len(t.Records) == 0 {
			return nil, errors.New("sequence data before first header")
		}
		r := len(t.Records) - 1
		for _, c := range line {
			if c >= MaxSym {
				return nil, fmt.Errorf("record %q: bad symbol 0x%x", t.Records[r].Cmmt, c)
			}
			raw[r][c]++
			used[c] = true
		}
		t.Records[r].Len += len(line)
	}
	if len(t.Records) == 0 {
		return nil, ErrNoRecords
	}

	for i := range t.mapping {
		t.mapping[i] = -1
	}
	for c, u := range used {
		if u {
			t.mapping[c] = int16(len(t.revmap))
			t.revmap = append(t.revmap, byte(c))
		}
	}
	t.counts = matrix.NewFMatrix2d(len(t.Records), max(len(t.revmap), 1))
	for r := range raw {
		for col, c := range t.revmap {
			t.counts.Mat[r][col] = float32(raw[r][c])
		}
	}
	return t, nil
}

// ReadFile maps fname and counts it. Gzipped files are decompressed
// into memory first, since we cannot map through a decompressor.
func ReadFile(fname string) (*Tally, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", fname, ErrNoRecords)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()

	data := []byte(mm)
	if zwrap.IsGzip(data) {
		zr, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		data, err = io.ReadAll(zr)
		zr.Close()
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", fname, err)
		}
	}
	t, err := Count(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return t, nil
}

// Syms returns the symbols seen, in ascii order
func (t *Tally) Syms() []byte { return append([]byte(nil), t.revmap...) }

// Num is how often sym occurs in record rec
func (t *Tally) Num(rec int, sym byte) int {
	if sym >= MaxSym || t.mapping[sym] < 0 {
		return 0
	}
	return int(t.counts.Mat[rec][t.mapping[sym]])
}

// Frac is the fraction of record rec which is sym.
func (t *Tally) Frac(rec int, sym byte) float32 {
	if t.Records[rec].Len == 0 {
		return 0
	}
	return float32(t.Num(rec, sym)) / float32(t.Records[rec].Len)
}

// Find returns the index of the record whose header starts with id
// followed by a space or the end of the header, or -1.
func (t *Tally) Find(id string) int {
	for i, r := range t.Records {
		if len(r.Cmmt) >= len(id) && r.Cmmt[:len(id)] == id &&
			(len(r.Cmmt) == len(id) || r.Cmmt[len(id)] == ' ') {
			return i
		}
	}
	return -1
}

// Check compares the fractions in record rec with the expected
// probabilities. Every difference bigger than tol is reported.
// Symbols not in syms must not occur at all.
func (t *Tally) Check(rec int, syms []byte, probs []float32, tol float64) error {
	if len(syms) != len(probs) {
		return fmt.Errorf("%d symbols but %d probabilities", len(syms), len(probs))
	}
	var errs []error
	want := make(map[byte]float32, len(syms))
	for i, c := range syms {
		want[c] += probs[i]
	}
	for _, c := range t.revmap {
		if _, ok := want[c]; !ok && t.Num(rec, c) > 0 {
			errs = append(errs, fmt.Errorf("unexpected symbol %c", c))
		}
	}
	for _, c := range syms {
		got := t.Frac(rec, c)
		if d := math.Abs(float64(got - want[c])); d > tol {
			errs = append(errs, fmt.Errorf("%c: fraction %.4f, expected %.4f", c, got, want[c]))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("record %q: %w", t.Records[rec].Cmmt, errors.Join(errs...))
	}
	return nil
}

// Write prints one line per record, with the length and the fraction
// of each symbol.
func (t *Tally) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-30s %8s", "record", "length"); err != nil {
		return err
	}
	for _, c := range t.revmap {
		fmt.Fprintf(w, " %6c", c)
	}
	fmt.Fprintln(w)
	for r, rec := range t.Records {
		fmt.Fprintf(w, "%-30s %8d", rec.Cmmt, rec.Len)
		for _, c := range t.revmap {
			fmt.Fprintf(w, " %6.4f", t.Frac(r, c))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

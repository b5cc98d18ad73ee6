package composition_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/seqbench/pkg/common"
	. "github.com/andrew-torda/seqbench/pkg/composition"
	"github.com/andrew-torda/seqbench/pkg/fasta"
	"github.com/andrew-torda/seqbench/pkg/zwrap"
)

var set1 = `>s1 first
ACDaae
>s2
CCD
-af
>s3 third
`

func TestCount(t *testing.T) {
	tly, err := Count([]byte(set1))
	if err != nil {
		t.Fatal(err)
	}
	if len(tly.Records) != 3 {
		t.Fatal("records", tly.Records)
	}
	lens := []int{6, 6, 0}
	for i, l := range lens {
		if tly.Records[i].Len != l {
			t.Errorf("record %d length %d, want %d", i, tly.Records[i].Len, l)
		}
	}
	if got := string(tly.Syms()); got != "-ACDaef" {
		t.Fatal("symbols", got)
	}
	var tests = []struct {
		rec int
		sym byte
		n   int
	}{
		{0, 'a', 2}, {0, 'C', 1}, {1, 'C', 2}, {1, '-', 1}, {1, 'e', 0}, {2, 'A', 0}, {0, 'Z', 0},
	}
	for _, tt := range tests {
		if n := tly.Num(tt.rec, tt.sym); n != tt.n {
			t.Errorf("record %d symbol %c: %d, want %d", tt.rec, tt.sym, n, tt.n)
		}
	}
	if f := tly.Frac(1, 'C'); f != float32(2)/6 {
		t.Error("fraction", f)
	}
	if f := tly.Frac(2, 'C'); f != 0 {
		t.Error("fraction of empty record", f)
	}
	if tly.Find("s2") != 1 || tly.Find("s3") != 2 || tly.Find("s") != -1 {
		t.Error("Find is wrong")
	}
}

func TestCountErrors(t *testing.T) {
	var tests = []string{
		"",
		"\n\n",
		"ACGT\n>s1\nAC\n",
		">s1\nAC\xffGT\n",
	}
	for _, s := range tests {
		if _, err := Count([]byte(s)); err == nil {
			t.Errorf("no error for %q", s)
		}
	}
	if _, err := Count(nil); !errors.Is(err, ErrNoRecords) {
		t.Error("want ErrNoRecords, got", err)
	}
}

func TestCheck(t *testing.T) {
	tly, err := Count([]byte(">x\naacg\nt\n"))
	if err != nil {
		t.Fatal(err)
	}
	syms := []byte("acgt")
	if err := tly.Check(0, syms, []float32{0.4, 0.2, 0.2, 0.2}, 1e-6); err != nil {
		t.Fatal(err)
	}
	if err := tly.Check(0, syms, []float32{0.25, 0.25, 0.25, 0.25}, 0.01); err == nil {
		t.Fatal("wrong fractions accepted")
	}
	if err := tly.Check(0, []byte("ac"), []float32{0.5, 0.5}, 1); err == nil {
		t.Fatal("unexpected symbols accepted")
	}
	if err := tly.Check(0, syms, []float32{1}, 1); err == nil {
		t.Fatal("length mismatch accepted")
	}
}

func writeGenerated(t *testing.T, n int, compress bool) string {
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fp.Name()) })
	w := zwrap.WrapWriter(fp, compress)
	if err := fasta.Main(&fasta.Args{N: n, Wrtr: w}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return fp.Name()
}

func TestReadFileGenerated(t *testing.T) {
	for _, compress := range []bool{false, true} {
		fname := writeGenerated(t, 25000, compress)
		tly, err := ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		for i, want := range []int{50000, 75000, 125000} {
			if tly.Records[i].Len != want {
				t.Fatalf("record %d length %d", i, tly.Records[i].Len)
			}
		}
		two := tly.Find("TWO")
		if n := tly.Num(two, 'a'); n != 20123 {
			t.Errorf("compress %v: %d a's in TWO", compress, n)
		}
		if n := tly.Num(two, 'Y'); n != 1475 {
			t.Errorf("compress %v: %d Y's in TWO", compress, n)
		}
		if err := CheckGenerated(tly, DefaultTol); err != nil {
			t.Error(err)
		}
	}
}

func TestCheckGeneratedFails(t *testing.T) {
	fname, err := common.WrtTemp(">ONE Homo sapiens alu\nGGGG\n>TWO wrong\nac\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	tly, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	err = CheckGenerated(tly, DefaultTol)
	if err == nil {
		t.Fatal("bad file passed")
	}
	for _, s := range []string{"THREE missing", `has header "TWO wrong"`, "ONE"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error does not mention %s: %v", s, err)
		}
	}
}

func TestReadFileEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if _, err := ReadFile(fname); !errors.Is(err, ErrNoRecords) {
		t.Fatal("want ErrNoRecords, got", err)
	}
}

func TestMainArgs(t *testing.T) {
	for _, compress := range []bool{false, true} {
		fname := writeGenerated(t, 1000, compress)
		var b bytes.Buffer
		if err := Main(&Args{Fname: fname, Wrtr: &b, CountOnly: true}); err != nil {
			t.Fatal(err)
		}
		if b.String() != "3\n" {
			t.Fatalf("count gave %q", b.String())
		}
		b.Reset()
		if err := Main(&Args{Fname: fname, Wrtr: &b}); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(b.String()), "\n")
		if len(lines) != 4 || !strings.HasPrefix(lines[3], "THREE Homo sapiens frequency") {
			t.Fatalf("table:\n%s", b.String())
		}
	}
}

// 14 Oct 2026

package fasta

import (
	"fmt"
	"io"

	"github.com/andrew-torda/seqbench/pkg/lcg"
)

const (
	DefaultN  = 1000
	IUBSeed   = 42 // starting seed for the IUB record
	multOne   = 2
	multTwo   = 3
	multThree = 5
)

// Alu is the repeating source for the first record.
const Alu = "GGCCGGGCGCGGTGGCTCACGCCTGTAATCCCAGCACTTTGG" +
	"GAGGCCGAGGCGGGCGGATCACCTGAGGTCAGGAGTTCGAGA" +
	"CCAGCCTGGCCAACATGGTGAAACCCCGTCTCTACTAAAAAT" +
	"ACAAAAATTAGCCGGGCGTGGTGGCGCGCGCCTGTAATCCCA" +
	"GCTACTCGGGAGGCTGAGGCAGGAGAATCGCTTGAACCCGGG" +
	"AGGCGGAGGTTGCAGTGAGCCGAGATCGCGCCACTGCACTCC" +
	"AGCCTGGGCGACAGAGCGAGACTCCGTCTCAAAAA"

// Symbol frequencies for the two random records.
var (
	IUBSyms  = []byte("acgtBDHKMNRSVWY")
	IUBProbs = []float32{
		0.27, 0.12, 0.12, 0.27,
		0.02, 0.02, 0.02, 0.02,
		0.02, 0.02, 0.02, 0.02,
		0.02, 0.02, 0.02}

	HomoSapiensSyms  = []byte("acgt")
	HomoSapiensProbs = []float32{
		0.3029549426680,
		0.1979883004921,
		0.1975473066391,
		0.3015094502008}
)

// Record names and descriptions, in output order
var Records = [3]struct{ ID, Desc string }{
	{"ONE", "Homo sapiens alu"},
	{"TWO", "IUB ambiguity codes"},
	{"THREE", "Homo sapiens frequency"},
}

// Args is the set of arguments passed to the main function
type Args struct {
	N       int       // scales the record lengths 2N, 3N and 5N
	Wrtr    io.Writer // where we write to
	BufSize int       // output buffer size, zero means DefaultBufSize
}

// Main writes the three records to args.Wrtr. The homo sapiens
// sampler starts from wherever the IUB sampler stopped.
func Main(args *Args) (err error) {
	if args.N < 0 {
		return fmt.Errorf("negative size %d", args.N)
	}
	bufSize := args.BufSize
	if bufSize == 0 {
		bufSize = DefaultBufSize
	}
	fw, err := NewWriter(args.Wrtr, bufSize)
	if err != nil {
		return err
	}
	defer func() {
		if e := fw.Close(); err == nil {
			err = e
		}
	}()

	iub, err := lcg.NewAlphabet(IUBSyms, IUBProbs)
	if err != nil {
		return err
	}
	homo, err := lcg.NewAlphabet(HomoSapiensSyms, HomoSapiensProbs)
	if err != nil {
		return err
	}

	r := Records
	if err = Repeat(fw, r[0].ID, r[0].Desc, []byte(Alu), args.N*multOne); err != nil {
		return err
	}
	iubSmplr := lcg.NewSampler(iub, IUBSeed)
	if err = Random(fw, r[1].ID, r[1].Desc, iubSmplr, args.N*multTwo); err != nil {
		return err
	}
	homoSmplr := lcg.NewSampler(homo, iubSmplr.Seed())
	return Random(fw, r[2].ID, r[2].Desc, homoSmplr, args.N*multThree)
}

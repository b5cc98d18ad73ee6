// 14 Oct 2026

// Package fasta is the sequence generating kernel. It writes three
// records. The first cycles through a fixed piece of human alu
// sequence. The second and third draw nucleotides (and IUB ambiguity
// codes) at random with fixed frequencies.
package fasta

import (
	"errors"

	"github.com/andrew-torda/seqbench/pkg/common"
	"github.com/andrew-torda/seqbench/pkg/lcg"
)

// Repeat writes a record of n characters taken by cycling through src.
// The position in src only goes back to zero at the end of src, not at
// the end of a line or buffer.
func Repeat(fw *Writer, id, desc string, src []byte, n int) error {
	if len(src) == 0 {
		return errors.New("repeat " + id + ": empty source sequence")
	}
	if err := fw.Header(id, desc); err != nil {
		return err
	}
	k := 0
	fill := func(dst []byte) {
		for i := range dst {
			if k == len(src) {
				k = 0
			}
			dst[i] = src[k]
			k++
		}
	}
	for n > 0 {
		chunk := min(n, common.LineLen)
		if err := fw.appendFunc(chunk, fill); err != nil {
			return err
		}
		n -= chunk
	}
	return fw.Flush()
}

// Random writes a record of n characters drawn from smplr, one line's
// worth at a time. The sampler keeps its seed afterwards, so the caller
// can hand it on.
func Random(fw *Writer, id, desc string, smplr *lcg.Sampler, n int) error {
	if err := fw.Header(id, desc); err != nil {
		return err
	}
	for n > 0 {
		chunk := min(n, common.LineLen)
		if err := fw.appendFunc(chunk, smplr.Fill); err != nil {
			return err
		}
		n -= chunk
	}
	return fw.Flush()
}

// 3 Aug 2020

// Package numseq counts the records in a fasta file. Every record
// starts with a '>' and the character does not turn up anywhere else
// in what we write, so we just count them.
package numseq

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/seqbench/pkg/common"
)

var cmmt = []byte{common.CmmtChar}

// ByMmap maps the file read-only and counts in place. An empty file
// cannot be mapped, but has no records either.
func ByMmap(fname string) (int, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return 0, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return 0, err
	} else if fi.Size() == 0 {
		return 0, nil
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return bytes.Count(mm, cmmt), nil
}

// ByReading counts from a reader, bufsize bytes at a time. It is for
// streams we cannot map, like the output of a decompressor.
func ByReading(rdr io.Reader, bufsize int) (int, error) {
	buf := make([]byte, bufsize)
	count := 0
	for {
		n, err := rdr.Read(buf)
		count += bytes.Count(buf[:n], cmmt)
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}

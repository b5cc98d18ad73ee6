// 16 Oct 2026

/*

Fastacheck reads the output of fasta back and prints, for each record,
its length and the fraction of each symbol.
Usage:
	fastacheck [options] file
The file may be gzipped.

Flags:
	-c
		compare each record with the frequencies the generator uses and
		fail if any fraction is further off than the tolerance
	-t
		the tolerance, default 0.01
	-n
		just print the number of records

*/
package main

// 14 Oct 2026

/*

Fasta writes three made up DNA records, as a benchmark.
Usage:
	fasta [options] [N]
N defaults to 1000. The records are
	>ONE Homo sapiens alu          2N characters, repeating a piece of alu
	>TWO IUB ambiguity codes       3N characters, random with IUB codes
	>THREE Homo sapiens frequency  5N characters, random nucleotides
with 60 characters per line. The random records come from a small
linear congruential generator, starting from seed 42. The third record
carries on from the seed where the second stopped, so the output is
always the same for the same N.

Flags:
	-o
		output file. The default is standard output.
	-z
		gzip the output
	-b
		size of the output buffer. It must be a multiple of 61 (a line and
		its newline). Anything else stops the program before it writes.

*/
package main

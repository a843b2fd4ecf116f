// 12 Oct 2026

/*

A3m works on multiple sequence alignments in a3m format.
Usage:
	a3m command [options] files...

Commands:
	slice   cut an alignment to a range of query columns
	concat  put two alignments side by side as chains of one complex
	diag    put two alignments in diagonal blocks
	pair    concatenate and write as a paired alignment
	chain   pull one chain out of a multi-chain alignment
	stats   length, chains, rows and coverage per column
	check   see if files are well formed
	count   count records without parsing
	batch   run a yaml list of the above in parallel
	rand    write a random alignment for testing

Flags for every command:
	--config
		yaml file of settings. Default is a3mtools.yaml in the current
		directory or ~/.config/a3mtools
	--env
		file of A3M_ environment variables, default .env
	-v
		verbose
	-w
		number of batch jobs at once
	-z
		gzip output
	--data-dir, --out-dir
		where relative names in batch files point

A file name of "-" means stdin or stdout. Names ending in .gz are
compressed or decompressed.

*/
package main

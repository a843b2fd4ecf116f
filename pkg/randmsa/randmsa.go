// 31 July 2020

// Package randmsa writes random, but well formed, a3m alignments.
// It is for testing and benchmarks.
package randmsa

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
)

var (
	upper = []byte("ACDEFGHIKLMNPQRSTVWY")
	lower = []byte("acdefghiklmnpqrstvwy")
)

// RandMSAArgs is the set of arguments passed to the main function
type RandMSAArgs struct {
	Iseed    int64     // random number seed
	Wrtr     io.Writer // where we write to
	Cmmt     string    // Comment for the rows
	Nseq     int       // number of rows, not counting the query
	Lens     []int     // Length of each query chain. One chain if len is 1
	FracGap  float32   // fraction of columns which are gaps
	FracIns  float32   // chance of an insertion after a column
	AllGapOK bool      // Allow rows that are all gaps
}

// getquery returns an upper case sequence
func getquery(n int, rnd *rand.Rand) []byte {
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = upper[rnd.Intn(len(upper))]
	}
	return ret
}

// getrow returns a row covering ncol columns, with gaps and insertions
func getrow(ncol int, args *RandMSAArgs, rnd *rand.Rand) []byte {
	ret := make([]byte, 0, ncol+ncol/4)
	for i := 0; i < ncol; i++ {
		if rnd.Float32() < args.FracGap {
			ret = append(ret, '-')
		} else {
			ret = append(ret, upper[rnd.Intn(len(upper))])
		}
		if rnd.Float32() < args.FracIns {
			for j := rnd.Intn(3); j >= 0; j-- {
				ret = append(ret, lower[rnd.Intn(len(lower))])
			}
		}
	}
	return ret
}

func allGap(s []byte) bool {
	for _, c := range s {
		if c != '-' {
			return false
		}
	}
	return true
}

// infoLine makes "#3,4\t1,1" from the chain lengths.
func infoLine(lens []int) string {
	l := make([]string, len(lens))
	c := make([]string, len(lens))
	for i, n := range lens {
		l[i] = fmt.Sprint(n)
		c[i] = "1"
	}
	return "#" + strings.Join(l, ",") + "\t" + strings.Join(c, ",")
}

// queryCmmt is "101" for one chain, "101\t102" for two...
func queryCmmt(nchain int) string {
	s := make([]string, nchain)
	for i := range s {
		s[i] = fmt.Sprint(101 + i)
	}
	return strings.Join(s, "\t")
}

// writeseq takes rows from a channel and writes them out. n is the number
// of the row, so the output has headers "> something 1, > something 2..."
func writeseq(sChan <-chan []byte, args *RandMSAArgs, wg *sync.WaitGroup) {
	defer wg.Done()
	width := len(fmt.Sprintf("%d", args.Nseq))
	var i int
	for s := range sChan {
		i++
		fmt.Fprintf(args.Wrtr, ">%s %[2]*d\n", args.Cmmt, width, i)
		args.Wrtr.Write(s)
		args.Wrtr.Write([]byte{'\n'})
	}
}

// RandMSAMain writes a random alignment to an io.Writer.
func RandMSAMain(args *RandMSAArgs) error {
	if len(args.Lens) == 0 {
		return fmt.Errorf("randmsa: no chain lengths given")
	}
	ncol := 0
	for _, n := range args.Lens {
		if n < 0 {
			return fmt.Errorf("randmsa: negative chain length %d", n)
		}
		ncol += n
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	fmt.Fprintf(args.Wrtr, "%s\n>%s\n%s\n", infoLine(args.Lens),
		queryCmmt(len(args.Lens)), getquery(ncol, rnd))

	var wg sync.WaitGroup
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg)
	for i := 0; i < args.Nseq; i++ {
		s := getrow(ncol, args, rnd)
		for !args.AllGapOK && args.FracGap < 1 && ncol > 0 && allGap(s) {
			s = getrow(ncol, args, rnd)
		}
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return nil
}

// String is a convenience for tests. It panics on bad arguments.
func String(args RandMSAArgs) string {
	var sb strings.Builder
	args.Wrtr = &sb
	if err := RandMSAMain(&args); err != nil {
		panic(err)
	}
	return sb.String()
}

package a3m

import (
	"regexp"

	"github.com/lindseyguan/a3mtools/pkg/seq"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// Rows called 101 to 109 are chain queries written into the unpaired
// block of a paired alignment, not database hits.
var chainQueryRe = regexp.MustCompile(`^10[1-9]$`)

// Prune drops rows which are only gaps and rows which are chain
// queries. The input slice is not changed.
func Prune(rows []seq.Seq) []seq.Seq {
	kept := make([]seq.Seq, 0, len(rows))
	for _, r := range rows {
		if r.AllGap() || chainQueryRe.MatchString(r.Cmmt()) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// DiagonalConcat puts two unpaired alignments into separate blocks of
// columns. Each side's rows get a matching all-gap row on the other
// side, then the two are joined with Concat, which pads every row out
// to the full width.
func DiagonalConcat(a, b Alignment) (*MSA, error) {
	ma, err := base(a, "left")
	if err != nil {
		return nil, err
	}
	mb, err := base(b, "right")
	if err != nil {
		return nil, err
	}
	aRows, bRows := Prune(ma.rows), Prune(mb.rows)

	newA := make([]seq.Seq, 0, len(aRows)+len(bRows))
	newA = append(newA, aRows...)
	for _, r := range bRows {
		newA = append(newA, seq.New(r.Cmmt(), Gaps(ma.Len())))
	}

	// b's gap rows go in front of b's own rows, in a's order.
	newB := make([]seq.Seq, 0, len(aRows)+len(bRows))
	for _, r := range aRows {
		newB = append(newB, seq.New(r.Cmmt(), Gaps(mb.Len())))
	}
	newB = append(newB, bRows...)

	left := &MSA{infoLine: ma.infoLine, info: ma.info, query: ma.query, rows: newA}
	right := &MSA{infoLine: mb.infoLine, info: mb.info, query: mb.query, rows: newB}
	return Concat(left, right)
}

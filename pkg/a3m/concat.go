package a3m

import (
	"strconv"
	"strings"

	"github.com/lindseyguan/a3mtools/pkg/seq"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// headerInts reads a query header like "101\t102" as a list of integers.
func headerInts(h, side string) ([]int, error) {
	f := strings.Split(h, "\t")
	r := make([]int, len(f))
	for i, s := range f {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &FormatError{Inline: h,
				Desc: "query header of " + side + " alignment should be tab separated integers"}
		}
		r[i] = n
	}
	return r, nil
}

// renumber gives the chain numbers in b's query header fresh numbers,
// counting up from one past the largest number in a's header.
// It returns the new header and the mapping from old to new.
func renumber(aHdr, bHdr string) (string, map[string]string, error) {
	aInts, err := headerInts(aHdr, "left")
	if err != nil {
		return "", nil, err
	}
	bInts, err := headerInts(bHdr, "right")
	if err != nil {
		return "", nil, err
	}
	c := aInts[0]
	for _, n := range aInts[1:] {
		if n > c {
			c = n
		}
	}
	c++
	intMap := make(map[string]string, len(bInts))
	newInts := make([]string, len(bInts))
	for i, n := range bInts {
		newInts[i] = strconv.Itoa(c)
		intMap[strconv.Itoa(n)] = newInts[i]
		c++
	}
	return strings.Join(newInts, "\t"), intMap, nil
}

// Concat joins two alignments side by side into one with the chains of
// a followed by the chains of b. Every row is padded with gaps so that
// it covers all the columns. Rows that end up as nothing but gaps are
// dropped. Neither a nor b is touched.
func Concat(a, b Alignment) (*MSA, error) {
	ma, err := base(a, "left")
	if err != nil {
		return nil, err
	}
	mb, err := base(b, "right")
	if err != nil {
		return nil, err
	}
	newBHdr, intMap, err := renumber(ma.query.Cmmt(), mb.query.Cmmt())
	if err != nil {
		return nil, err
	}
	bQuery := mb.query.WithCmmt(newBHdr)
	query := seq.New(ma.query.Cmmt()+"\t"+newBHdr, ma.query.Residues()+bQuery.Residues())

	aPad, bPad := Gaps(ma.Len()), Gaps(mb.Len())
	rows := make([]seq.Seq, 0, len(ma.rows)+len(mb.rows)+2)
	if ma.NChain() == 1 {
		rows = append(rows, ma.query.Append(bPad))
	}
	for _, r := range ma.rows {
		if t := r.Append(bPad); !t.AllGap() {
			rows = append(rows, t)
		}
	}
	if mb.NChain() == 1 {
		rows = append(rows, bQuery.Prepend(aPad))
	}
	for _, r := range mb.rows {
		t := r.Prepend(aPad)
		if newHdr, ok := intMap[t.Cmmt()]; ok {
			t = t.WithCmmt(newHdr)
		}
		if !t.AllGap() {
			rows = append(rows, t)
		}
	}
	return New(ma.info.join(mb.info).String(), query, rows)
}

// 6 Apr 2020
// Simple counts over the columns of an alignment.

package a3m

import (
	"github.com/andrew-torda/matrix"

	"github.com/lindseyguan/a3mtools/pkg/seq"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// Rows of the counts matrix
const (
	CntMatch  = iota // upper case residue in the column
	CntGap           // gap in the column
	CntInsert        // insertions after the column
	nCnt
)

// Coverage holds counts for each query column over all rows of an
// alignment. The query itself is not counted.
// counts.Mat looks like [nCnt][length_of_query]
// We store it as a float32, like the rest of the counting code.
type Coverage struct {
	counts *matrix.FMatrix2d
	nrow   int
}

// Coverage counts matches, gaps and insertions at each column.
// Insertions before the first column are not counted anywhere.
// Rows that run past the query are counted only as far as the query goes.
func (m *MSA) Coverage() *Coverage {
	ncol := m.Len()
	cov := &Coverage{counts: matrix.NewFMatrix2d(nCnt, ncol), nrow: len(m.rows)}
	mat := cov.counts.Mat
	for _, r := range m.rows {
		s := r.Residues()
		col := 0
	chars:
		for i := 0; i < len(s); i++ {
			c := s[i]
			switch {
			case seq.IsUpper(c), c == GapChar:
				if col >= ncol {
					break chars
				}
				if c == GapChar {
					mat[CntGap][col]++
				} else {
					mat[CntMatch][col]++
				}
				col++
			case seq.IsLower(c):
				if col > 0 {
					mat[CntInsert][col-1]++
				}
			}
		}
	}
	return cov
}

// Depth is the number of rows counted.
func (cov *Coverage) Depth() int { return cov.nrow }

// Len is the number of columns.
func (cov *Coverage) Len() int {
	_, ncol := cov.counts.Size()
	return ncol
}

// Count returns one of CntMatch, CntGap, CntInsert for column col.
func (cov *Coverage) Count(what, col int) int { return int(cov.counts.Mat[what][col]) }

// Frac gives the fraction of rows with a residue at each column.
// With no rows, every fraction is zero.
func (cov *Coverage) Frac() []float32 {
	frac := make([]float32, cov.Len())
	if cov.nrow == 0 {
		return frac
	}
	for i, n := range cov.counts.Mat[CntMatch] {
		frac[i] = n / float32(cov.nrow)
	}
	return frac
}

package a3m

import (
	"strconv"

	"github.com/lindseyguan/a3mtools/pkg/seq"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// sliceRow walks a row, keeping track of which query column we are in.
// Upper case and gaps are kept if start <= col < end and move the column
// on. Insertions are kept only if col > start, so insertions hanging off
// the column before start are lost, as are leading insertions when
// start is 0. We stop as soon as col reaches end, so insertions after the
// last kept column go too.
func sliceRow(s string, start, end int, buf []byte) []byte {
	buf = buf[:0]
	col := 0
	for i := 0; i < len(s); i++ {
		if col >= end {
			break
		}
		c := s[i]
		switch {
		case seq.IsUpper(c), c == GapChar:
			if col >= start {
				buf = append(buf, c)
			}
			col++
		case seq.IsLower(c):
			if col > start {
				buf = append(buf, c)
			}
		}
	}
	return buf
}

// sliceCols does the work for both kinds of alignment.
// The query has no insertions, so a string index is a column. end may be
// past the last column.
func sliceCols(m *MSA, qCmmt string, start, end int) (*MSA, error) {
	qEnd := end
	if qEnd > m.Len() {
		qEnd = m.Len()
	}
	query := seq.New(qCmmt, m.query.Residues()[start:qEnd])
	var card int
	if len(m.info.cards) > 0 {
		card = m.info.cards[0]
	}
	info := "#" + strconv.Itoa(query.Len()) + "\t" + strconv.Itoa(card)
	rows := make([]seq.Seq, len(m.rows))
	var buf []byte
	for i, r := range m.rows {
		buf = sliceRow(r.Residues(), start, end, buf)
		rows[i] = seq.New(r.Cmmt(), string(buf))
	}
	return New(info, query, rows)
}

// Slice cuts the alignment down to a range of query columns.
// It is only defined for single chain alignments. For more chains, see
// Paired.GetChain.
func (m *MSA) Slice(r Range) (*MSA, error) {
	if n := m.NChain(); n > 1 {
		return nil, &UnsupportedError{
			Desc: "Cannot slice alignment with " + strconv.Itoa(n) + " query sequences"}
	}
	start, end, err := r.Norm(m.Len())
	if err != nil {
		return nil, err
	}
	return sliceCols(m, m.query.Cmmt(), start, end)
}

// SliceRange is Slice(Span(start, end)).
func (m *MSA) SliceRange(start, end int) (*MSA, error) { return m.Slice(Span(start, end)) }

// SliceAt returns the single column i.
func (m *MSA) SliceAt(i int) (*MSA, error) { return m.Slice(At(i)) }

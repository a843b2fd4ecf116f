// 2 Mar 2024

// Package a3m reads, writes, slices and joins multiple sequence
// alignments in a3m format.
//
// An a3m file looks like
//
//	#L1,L2	C1,C2
//	>query header
//	QUERYRESIDUES
//	>row header
//	rowresidues
//
// The query has no gaps and is all upper case. In the other rows, upper
// case letters and '-' each take one column of the query. Lower case
// letters are insertions. They do not take a column and belong to the
// column before them. Everything in this package works in the column
// coordinates of the query.
//
// An alignment is not changed after it is built. Slicing and joining
// return new alignments, so they are safe to use from several goroutines.
package a3m

import (
	"strconv"

	"github.com/lindseyguan/a3mtools/pkg/seq"
)

// MSA is an unpaired alignment: info line, query and aligned rows.
type MSA struct {
	infoLine string
	info     Info
	query    seq.Seq
	rows     []seq.Seq
}

// New builds an alignment. The query must have no gaps or insertions
// and the info line must parse. The rows are copied.
func New(infoLine string, query seq.Seq, rows []seq.Seq) (*MSA, error) {
	if err := query.CheckQuery(); err != nil {
		return nil, &InvariantError{Desc: err.Error()}
	}
	info, err := ParseInfo(infoLine)
	if err != nil {
		return nil, err
	}
	return &MSA{
		infoLine: infoLine,
		info:     info,
		query:    query,
		rows:     append([]seq.Seq(nil), rows...),
	}, nil
}

// Info returns the info line as it was given, with the leading '#'.
func (m *MSA) Info() string { return m.infoLine }

// ParsedInfo returns the chain lengths and cardinalities.
func (m *MSA) ParsedInfo() Info { return m.info }

// Query returns the query sequence.
func (m *MSA) Query() seq.Seq { return m.query }

// Rows returns a copy of the aligned rows, query not included.
func (m *MSA) Rows() []seq.Seq { return append([]seq.Seq(nil), m.rows...) }

// NRow is the number of rows, not counting the query.
func (m *MSA) NRow() int { return len(m.rows) }

// Len is the number of query columns.
func (m *MSA) Len() int { return m.query.Len() }

// ChainLengths and Cardinalities come from the info line.
func (m *MSA) ChainLengths() []int  { return m.info.Lens() }
func (m *MSA) Cardinalities() []int { return m.info.Cards() }

// NChain is the number of query chains.
func (m *MSA) NChain() int { return m.info.NChain() }

// Base lets an *MSA be used wherever an Alignment is wanted.
func (m *MSA) Base() *MSA { return m }

// Validate checks that every row covers exactly the query's columns.
// New does not insist on this, since files in the wild are not always
// clean.
func (m *MSA) Validate() error {
	n := m.Len()
	for i, r := range m.rows {
		if ncol := r.NCol(); ncol != n {
			return &InvariantError{Desc: "row " + strconv.Itoa(i+1) + " \"" +
				firstPart(r.Cmmt()) + "\" covers " + strconv.Itoa(ncol) +
				" columns, query has " + strconv.Itoa(n)}
		}
	}
	return nil
}

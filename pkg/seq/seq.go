// 20 Dec 2017

// Package seq provides the sequence record used by the alignment
// code. A record is a header (comment) and a string of residues.
// In a3m files the residues are upper case for match columns, lower case
// for insertions and '-' for gaps.
//
// Records are values. Nothing here changes a sequence in place. Every
// operation hands back a new Seq, so a record can be shared between
// alignments without copying.
package seq

import (
	"fmt"
	"strings"

	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// Seq is a header and its residues.
type Seq struct {
	cmmt string
	seq  string
}

// New makes a sequence from a comment (without the leading ">") and
// the residues.
func New(cmmt, residues string) Seq { return Seq{cmmt: cmmt, seq: residues} }

// Cmmt returns the comment, without the leading ">"
func (s Seq) Cmmt() string { return s.cmmt }

// Residues returns the sequence as a string.
func (s Seq) Residues() string { return s.seq }

// Len is the number of characters, insertions included.
func (s Seq) Len() int { return len(s.seq) }

// String returns the sequence, with its comment at the start, as
// a single string. There is no newline at the end.
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", CmmtChar, s.cmmt, s.seq)
}

// WithCmmt returns a copy with a new comment.
func (s Seq) WithCmmt(cmmt string) Seq { return Seq{cmmt: cmmt, seq: s.seq} }

// Sub returns residues [start:end) under the same comment.
// Indices are into the residue string, not columns.
func (s Seq) Sub(start, end int) Seq {
	return Seq{cmmt: s.cmmt, seq: s.seq[start:end]}
}

// Append adds residues to the end.
func (s Seq) Append(t string) Seq { return Seq{cmmt: s.cmmt, seq: s.seq + t} }

// Prepend puts residues in front. The comment is kept.
func (s Seq) Prepend(t string) Seq { return Seq{cmmt: s.cmmt, seq: t + s.seq} }

// Cat joins two sequences, keeping the comment of the first.
func (s Seq) Cat(t Seq) Seq { return Seq{cmmt: s.cmmt, seq: s.seq + t.seq} }

// AllGap is true if there is nothing but gap characters.
// An empty sequence counts.
func (s Seq) AllGap() bool {
	for i := 0; i < len(s.seq); i++ {
		if s.seq[i] != GapChar {
			return false
		}
	}
	return true
}

// IsUpper is true for an ascii capital, a residue that takes a column.
// Nothing but ascii turns up in a3m files.
func IsUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

// IsLower is true for an ascii small letter, an insertion.
func IsLower(c byte) bool { return 'a' <= c && c <= 'z' }

// NCol counts the query columns a sequence covers. Upper case and gaps
// take a column. Insertions (lower case) do not.
func (s Seq) NCol() int {
	n := 0
	for i := 0; i < len(s.seq); i++ {
		if c := s.seq[i]; IsUpper(c) || c == GapChar {
			n++
		}
	}
	return n
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// CheckQuery returns an error if the sequence cannot be a query,
// that is, if it has gaps or anything other than upper case letters.
func (s Seq) CheckQuery() error {
	const symerr = "bad sym \"%c\" at position %d in query starting \"%s\""
	if i := strings.IndexByte(s.seq, GapChar); i != -1 {
		return fmt.Errorf("query contains a gap at position %d starting \"%s\"",
			i, trimStr(s.seq, 40))
	}
	for i := 0; i < len(s.seq); i++ {
		if c := s.seq[i]; !IsUpper(c) {
			return fmt.Errorf(symerr, c, i, trimStr(s.seq, 40))
		}
	}
	return nil
}

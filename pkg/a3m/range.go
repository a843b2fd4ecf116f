package a3m

import "strconv"

// Range is a half open range [Start, End) of query columns.
// A nil Start means from the beginning, a nil End means to the end.
// Negative values count back from the end, as in msa[-3:].
// Step is there so that a stepped slice can be refused. 0 and 1 both
// mean no step.
type Range struct {
	Start, End *int
	Step       int
}

// Span is the usual [start, end).
func Span(start, end int) Range { return Range{Start: &start, End: &end} }

// From is [start:]
func From(start int) Range { return Range{Start: &start} }

// To is [:end]
func To(end int) Range { return Range{End: &end} }

// All is [:]
func All() Range { return Range{} }

// At is the single column i, [i:i+1].
func At(i int) Range { return Span(i, i+1) }

// Norm turns the range into concrete indices for n columns.
// Negative values have n added. start is then clamped to [0, n].
// end is never less than start, but may be more than n. The query is cut
// at n, while rows are walked to end so that insertions after the last
// column are kept.
func (r Range) Norm(n int) (start, end int, err error) {
	if r.Step != 0 && r.Step != 1 {
		return 0, 0, &UnsupportedError{
			Desc: "Slicing with a step other than 1 is not supported, got " + strconv.Itoa(r.Step)}
	}
	start, end = 0, n
	if r.Start != nil {
		start = *r.Start
	}
	if r.End != nil {
		end = *r.End
	}
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	return start, end, nil
}

// String looks like a python slice, which is what people will recognise.
func (r Range) String() string {
	var s string
	if r.Start != nil {
		s = strconv.Itoa(*r.Start)
	}
	s += ":"
	if r.End != nil {
		s += strconv.Itoa(*r.End)
	}
	if r.Step != 0 {
		s += ":" + strconv.Itoa(r.Step)
	}
	return "[" + s + "]"
}

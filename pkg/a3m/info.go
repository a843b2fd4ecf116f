package a3m

import (
	"strconv"
	"strings"

	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// Info is the first line of an a3m file, for example
//
//	#157,235	1,1
//	#398	1
//
// The first list has the length of each query chain, the second says
// how many copies of each chain there are.
type Info struct {
	lens  []int
	cards []int
}

// atoiList turns "1,2,3" into []int{1, 2, 3}
func atoiList(s, what, line string) ([]int, error) {
	f := strings.Split(s, ",")
	r := make([]int, len(f))
	for i, v := range f {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, &FormatError{N: 1, Inline: line,
				Desc: "bad " + what + " \"" + v + "\" in info line"}
		}
		r[i] = n
	}
	return r, nil
}

// ParseInfo checks and splits an info line. It wants exactly two tab
// separated fields.
func ParseInfo(line string) (Info, error) {
	var info Info
	if len(line) == 0 || line[0] != InfoChar {
		return info, &FormatError{N: 1, Inline: line, Desc: "missing info line"}
	}
	fields := strings.Split(line[1:], "\t")
	if len(fields) != 2 {
		return info, &FormatError{N: 1, Inline: line,
			Desc: "Expected 2 fields separated by a tab in the info line, got " +
				strconv.Itoa(len(fields))}
	}
	var err error
	if info.lens, err = atoiList(fields[0], "chain length", line); err != nil {
		return info, err
	}
	if info.cards, err = atoiList(fields[1], "cardinality", line); err != nil {
		return info, err
	}
	if len(info.lens) != len(info.cards) {
		return info, &FormatError{N: 1, Inline: line,
			Desc: "number of chain lengths and cardinalities differ"}
	}
	return info, nil
}

func joinInts(a []int) string {
	s := make([]string, len(a))
	for i, n := range a {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ",")
}

// String puts the line back together, with the leading '#'.
func (info Info) String() string {
	return string(InfoChar) + joinInts(info.lens) + "\t" + joinInts(info.cards)
}

// Lens is the length of each query chain. Cards are the cardinalities.
// Both return copies.
func (info Info) Lens() []int  { return append([]int(nil), info.lens...) }
func (info Info) Cards() []int { return append([]int(nil), info.cards...) }

// NChain is the number of query chains.
func (info Info) NChain() int { return len(info.lens) }

// join appends the chains of b to those of a.
func (info Info) join(b Info) Info {
	var r Info
	r.lens = append(append(r.lens, info.lens...), b.lens...)
	r.cards = append(append(r.cards, info.cards...), b.cards...)
	return r
}

package a3m

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lindseyguan/a3mtools/pkg/seq"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// Paired is a multi-chain alignment. It knows where each chain's columns
// are. If paired is set, it is written out as a paired block followed by
// an unpaired block with one row per chain.
type Paired struct {
	core    *MSA
	ranges  [][2]int
	queries []seq.Seq
	paired  bool
}

// chainCmmt is the header given to chain i's query, "101", "102", ...
func chainCmmt(i int) string { return "10" + strconv.Itoa(i+1) }

// NewPaired builds the alignment and splits the query into chains.
// The chain lengths in the info line have to add up to the query length.
func NewPaired(infoLine string, query seq.Seq, rows []seq.Seq, paired bool) (*Paired, error) {
	m, err := New(infoLine, query, rows)
	if err != nil {
		return nil, err
	}
	return ToPaired(m, paired)
}

// ToPaired wraps an alignment we already have.
func ToPaired(m *MSA, paired bool) (*Paired, error) {
	if m == nil {
		return nil, &TypeError{Desc: "cannot make a paired alignment from nil"}
	}
	p := &Paired{core: m, paired: paired}
	var start int
	for i, n := range m.info.lens {
		end := start + n
		if end > m.Len() {
			break
		}
		p.ranges = append(p.ranges, [2]int{start, end})
		p.queries = append(p.queries, m.query.Sub(start, end).WithCmmt(chainCmmt(i)))
		start = end
	}
	if len(p.ranges) != m.NChain() || start != m.Len() {
		sum := 0
		for _, n := range m.info.lens {
			sum += n
		}
		return nil, &InvariantError{Desc: fmt.Sprintf(
			"chain lengths add up to %d, query length is %d", sum, m.Len())}
	}
	return p, nil
}

// Base is the shared alignment core.
func (p *Paired) Base() *MSA { return p.core }

// IsPaired says how the alignment will be written.
func (p *Paired) IsPaired() bool { return p.paired }

// ChainRanges gives [start, end) query columns for each chain.
func (p *Paired) ChainRanges() [][2]int { return append([][2]int(nil), p.ranges...) }

// ChainQueries are the query residues of each chain, headers "101", "102"...
func (p *Paired) ChainQueries() []seq.Seq { return append([]seq.Seq(nil), p.queries...) }

// Slice works across all chains, unlike MSA.Slice. The result is a
// single chain alignment whose query is called "101".
func (p *Paired) Slice(r Range) (*MSA, error) {
	start, end, err := r.Norm(p.core.Len())
	if err != nil {
		return nil, err
	}
	return sliceCols(p.core, chainCmmt(0), start, end)
}

// SliceRange is Slice(Span(start, end)).
func (p *Paired) SliceRange(start, end int) (*MSA, error) { return p.Slice(Span(start, end)) }

// SliceAt returns the single column i.
func (p *Paired) SliceAt(i int) (*MSA, error) { return p.Slice(At(i)) }

// GetChain returns the alignment restricted to the columns of one chain.
func (p *Paired) GetChain(i int) (*MSA, error) {
	if i < 0 || i >= len(p.ranges) {
		return nil, &UnsupportedError{Desc: fmt.Sprintf(
			"chain %d asked for, alignment has %d chains", i, len(p.ranges))}
	}
	return p.SliceRange(p.ranges[i][0], p.ranges[i][1])
}

// unpairedRow is chain i's query with gaps over every other chain.
func (p *Paired) unpairedRow(i int) string {
	var b strings.Builder
	b.Grow(p.core.Len())
	for j, q := range p.queries {
		if j == i {
			b.WriteString(q.Residues())
		} else {
			b.WriteString(Gaps(q.Len()))
		}
	}
	if b.Len() != p.core.Len() {
		panic(fmt.Sprintf("unpaired row for chain %d has length %d, query has %d",
			i, b.Len(), p.core.Len()))
	}
	return b.String()
}

// Write puts out the alignment. Unpaired, it looks like any other
// alignment. Paired, the query is written twice, then the rows, then one
// row per chain with that chain's query and gaps everywhere else.
func (p *Paired) Write(w io.Writer) error {
	if !p.paired {
		return p.core.Write(w)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%s\n%s\n", p.core.infoLine, p.core.query, p.core.query)
	for _, r := range p.core.rows {
		fmt.Fprintf(bw, "%s\n", r)
	}
	for i, q := range p.queries {
		fmt.Fprintf(bw, "%c%s\n%s\n", CmmtChar, q.Cmmt(), p.unpairedRow(i))
	}
	return bw.Flush()
}

// String is what Write would write.
func (p *Paired) String() string {
	var b strings.Builder
	p.Write(&b)
	return b.String()
}

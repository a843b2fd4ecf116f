// Reading and writing a3m text.

package a3m

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lindseyguan/a3mtools/pkg/seq"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

// Sequence lines can be very long. Let the scanner grow this far.
const maxLineLen = 256 * 1024 * 1024

var asciiSpace = [256]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}

// isWhite only knows ascii white space.
func isWhite(c byte) bool { return asciiSpace[c] }

// trimRight removes trailing white space. The info line keeps its
// leading characters, since the tab inside it matters.
func trimRight(s string) string {
	i := len(s)
	for i > 0 && isWhite(s[i-1]) {
		i--
	}
	return s[:i]
}

// trim removes white space at both ends.
func trim(s string) string {
	i := 0
	for i < len(s) && isWhite(s[i]) {
		i++
	}
	return trimRight(s[i:])
}

// parseHeader checks a header line and returns it without the ">".
func parseHeader(line string, n int) (string, error) {
	if len(line) == 0 || line[0] != CmmtChar {
		return "", &FormatError{N: n, Inline: line,
			Desc: "Expected header to start with >"}
	}
	return line[1:], nil
}

// ParseParts reads a3m text and returns the info line, the query and
// the other rows, without building an alignment.
// The first line must start with '#'. After that, lines come in pairs,
// header then residues.
func ParseParts(r io.Reader) (info string, query seq.Seq, rows []seq.Seq, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLen)
	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			return
		}
		err = &FormatError{N: 1, Desc: "missing info line"}
		return
	}
	info = trimRight(scanner.Text())
	if len(info) == 0 || info[0] != InfoChar {
		err = &FormatError{N: 1, Inline: info, Desc: "missing info line"}
		return
	}

	var lines []string
	for scanner.Scan() {
		lines = append(lines, trim(scanner.Text()))
	}
	if err = scanner.Err(); err != nil {
		return
	}
	for len(lines) > 0 && len(lines)%2 == 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1] // a blank line at the end of the file
	}
	if len(lines) == 0 {
		err = &FormatError{N: 2, Desc: "no query sequence after info line"}
		return
	}
	if len(lines)%2 == 1 {
		n := len(lines) + 1
		err = &FormatError{N: n, Inline: lines[len(lines)-1], Desc: "header with no sequence"}
		return
	}

	seqs := make([]seq.Seq, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		var cmmt string
		if cmmt, err = parseHeader(lines[i], i+2); err != nil {
			return
		}
		seqs = append(seqs, seq.New(cmmt, lines[i+1]))
	}
	return info, seqs[0], seqs[1:], nil
}

// Parse reads a3m text into an alignment.
func Parse(r io.Reader) (*MSA, error) {
	info, query, rows, err := ParseParts(r)
	if err != nil {
		return nil, err
	}
	return New(info, query, rows)
}

// ParseString is Parse on a string.
func ParseString(s string) (*MSA, error) { return Parse(strings.NewReader(s)) }

// Write writes the alignment in a3m format. Every line, including the
// last, ends with a newline.
func (m *MSA) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%s\n", m.infoLine, m.query)
	for _, r := range m.rows {
		fmt.Fprintf(bw, "%s\n", r)
	}
	return bw.Flush()
}

// String returns the alignment as a3m text.
func (m *MSA) String() string {
	var b strings.Builder
	m.Write(&b)
	return b.String()
}

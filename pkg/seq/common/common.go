// 29 Apr 2020
// Things shared by the sequence, alignment and command packages.

package common

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

const (
	InfoChar byte = '#' // starts the first line of an a3m file
	CmmtChar byte = '>' // starts a header line
)

// Gaps returns a string of n gap characters. n <= 0 gives "".
func Gaps(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(GapChar), n)
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

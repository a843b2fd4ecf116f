package a3mio

import "io"

// SetStdin and SetStdout swap the standard streams and return a
// function to put them back.
func SetStdin(r io.Reader) func() {
	old := stdin
	stdin = r
	return func() { stdin = old }
}

func SetStdout(w io.Writer) func() {
	old := stdout
	stdout = w
	return func() { stdout = old }
}

package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lindseyguan/a3mtools/pkg/a3m"
	"github.com/lindseyguan/a3mtools/pkg/a3mio"
	. "github.com/lindseyguan/a3mtools/pkg/cli"
)

const (
	hit   = "#5\t1\n>101\nABCDE\n>hit\naAbBCdDE\n"
	left  = "#2\t1\n>101\nAB\n>x\nA-\n"
	right = "#3\t1\n>101\nCDE\n>y\nC-e-\n"
	short = "#3\t1\n>101\nABC\n>short\nAB\n"
)

const pairedLR = `#2,3	1,1
>101	102
ABCDE
>101	102
ABCDE
>101
AB---
>x
A----
>102
--CDE
>y
--C-e-
>101
AB---
>102
--CDE
`

// setup writes the test files to a directory and keeps config files
// in the user's home out of the way.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	files := map[string]string{
		"hit.a3m": hit, "left.a3m": left, "right.a3m": right, "short.a3m": short}
	for fname, text := range files {
		if err := os.WriteFile(filepath.Join(dir, fname), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// run executes a command line and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readBack(t *testing.T, fname string) string {
	t.Helper()
	b, err := a3mio.ReadAll(fname)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestSlice(t *testing.T) {
	dir := setup(t)
	out := filepath.Join(dir, "out.a3m")
	if _, err := run(t, "slice", "-s", "1", "-e", "4", "-o", out, filepath.Join(dir, "hit.a3m")); err != nil {
		t.Fatal(err)
	}
	want := "#3\t1\n>101\nBCD\n>hit\nBCdD\n"
	if got := readBack(t, out); got != want {
		t.Fatalf("got\n%s\nwanted\n%s", got, want)
	}

	// negative start, no end
	if _, err := run(t, "slice", "-s", "-2", "-o", out, filepath.Join(dir, "hit.a3m")); err != nil {
		t.Fatal(err)
	}
	want = "#2\t1\n>101\nDE\n>hit\nDE\n"
	if got := readBack(t, out); got != want {
		t.Fatalf("got\n%s\nwanted\n%s", got, want)
	}
}

func TestPair(t *testing.T) {
	dir := setup(t)
	out := filepath.Join(dir, "lr.a3m.gz")
	if _, err := run(t, "pair", "-o", out, filepath.Join(dir, "left.a3m"), filepath.Join(dir, "right.a3m")); err != nil {
		t.Fatal(err)
	}
	if got := readBack(t, out); got != pairedLR {
		t.Fatalf("got\n%s\nwanted\n%s", got, pairedLR)
	}

	// and back out again
	chain := filepath.Join(dir, "chain.a3m")
	if _, err := run(t, "chain", "-i", "1", "-o", chain, out); err != nil {
		t.Fatal(err)
	}
	m, err := a3mio.ReadFile(chain)
	if err != nil {
		t.Fatal(err)
	}
	if m.Query().Residues() != "CDE" || m.Query().Cmmt() != "101" {
		t.Fatal("chain query", m.Query())
	}
	if _, err := run(t, "chain", "-i", "2", "-o", chain, out); !errors.Is(err, a3m.ErrUnsupported) {
		t.Fatal("chain out of range should fail, got", err)
	}
}

func TestConcatNeedsTwo(t *testing.T) {
	dir := setup(t)
	if _, err := run(t, "concat", filepath.Join(dir, "left.a3m")); err == nil {
		t.Fatal("concat with one file should fail")
	}
}

func TestCheck(t *testing.T) {
	dir := setup(t)
	good, bad := filepath.Join(dir, "hit.a3m"), filepath.Join(dir, "short.a3m")
	out, err := run(t, "check", good, bad)
	if err == nil {
		t.Fatal("short row should fail check")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 || lines[0] != good+"\tok" || !strings.HasPrefix(lines[1], bad+"\t") {
		t.Fatal("check printed", out)
	}
	if _, err := run(t, "check", good); err != nil {
		t.Fatal(err)
	}
}

func TestCountStats(t *testing.T) {
	dir := setup(t)
	fname := filepath.Join(dir, "hit.a3m")
	out, err := run(t, "count", fname)
	if err != nil {
		t.Fatal(err)
	}
	if out != fname+"\t2\n" {
		t.Fatalf("count printed %q", out)
	}

	out, err = run(t, "stats", "-c", fname)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"length\t5\n", "chains\t5\n", "cards\t1\n", "rows\t1\n", "0\tA\t1\t0\t1\t1.000\n", "1\tB\t1\t0\t0\t1.000\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q\n%s", want, out)
		}
	}
}

func TestBatch(t *testing.T) {
	dir := setup(t)
	outDir := t.TempDir()
	manifest := filepath.Join(dir, "jobs.yaml")
	text := "jobs:\n" +
		"  - op: pair\n    in: [left.a3m, right.a3m]\n    out: lr.a3m\n" +
		"  - op: slice\n    in: [nothere.a3m]\n    out: x.a3m\n"
	if err := os.WriteFile(manifest, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "batch", "--data-dir", dir, "--out-dir", outDir, "-w", "2", manifest)
	if err == nil {
		t.Fatal("missing input should make batch fail")
	}
	if !strings.HasPrefix(out, "1\t") || !strings.Contains(out, "\n2\t") {
		t.Fatal("batch printed", out)
	}
	if got := readBack(t, filepath.Join(outDir, "lr.a3m")); got != pairedLR {
		t.Fatalf("got\n%s\nwanted\n%s", got, pairedLR)
	}
}

func TestRand(t *testing.T) {
	dir := setup(t)
	fname := filepath.Join(dir, "rand.a3m")
	if _, err := run(t, "rand", "-r", "7", fname, "25", "12,8"); err != nil {
		t.Fatal(err)
	}
	m, err := a3mio.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if m.NRow() != 25 || m.Len() != 20 || m.NChain() != 2 {
		t.Fatal("random alignment", m.NRow(), m.Len(), m.NChain())
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "rand", fname, "25", "12,x"); err == nil {
		t.Fatal("bad length should fail")
	}
}

package seq_test

import (
	"strings"
	"testing"

	. "github.com/lindseyguan/a3mtools/pkg/seq"
	"github.com/lindseyguan/a3mtools/pkg/seq/common"
)

func TestString(t *testing.T) {
	s := New("101", "ACDE")
	if got, want := s.String(), ">101\nACDE"; got != want {
		t.Fatalf("got %q wanted %q", got, want)
	}
	if s.Len() != 4 {
		t.Fatal("length got", s.Len(), "wanted 4")
	}
}

// TestAlgebra checks that the operations give new values and leave
// the original alone.
func TestAlgebra(t *testing.T) {
	s := New("x", "ABC")
	tests := []struct {
		got  Seq
		cmmt string
		res  string
	}{
		{s.Append("--"), "x", "ABC--"},
		{s.Prepend("--"), "x", "--ABC"},
		{s.Cat(New("y", "de")), "x", "ABCde"},
		{s.Sub(1, 3), "x", "BC"},
		{s.WithCmmt("z"), "z", "ABC"},
	}
	for i, tt := range tests {
		if tt.got.Cmmt() != tt.cmmt || tt.got.Residues() != tt.res {
			t.Fatalf("case %d got %q %q wanted %q %q", i,
				tt.got.Cmmt(), tt.got.Residues(), tt.cmmt, tt.res)
		}
	}
	if s.Cmmt() != "x" || s.Residues() != "ABC" {
		t.Fatal("original sequence was changed", s)
	}
}

func TestAllGap(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"-", true},
		{"-----", true},
		{"--a--", false},
		{"A----", false},
	}
	for _, tt := range tests {
		if got := New("", tt.s).AllGap(); got != tt.want {
			t.Fatalf("AllGap(%q) got %v wanted %v", tt.s, got, tt.want)
		}
	}
}

func TestNCol(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"ABC", 3},
		{"abC", 1},
		{"abCdE", 2},
		{"-a-b-", 3},
	}
	for _, tt := range tests {
		if got := New("", tt.s).NCol(); got != tt.want {
			t.Fatalf("NCol(%q) got %d wanted %d", tt.s, got, tt.want)
		}
	}
}

func TestCheckQuery(t *testing.T) {
	good := []string{"", "ACDEFGHIKLMNPQRSTVWYX"}
	bad := []string{"AC-D", "ACdE", "AC1", strings.Repeat("A", 100) + "-"}
	for _, s := range good {
		if err := New("q", s).CheckQuery(); err != nil {
			t.Fatalf("%q should be a valid query, got %v", s, err)
		}
	}
	for _, s := range bad {
		if err := New("q", s).CheckQuery(); err == nil {
			t.Fatalf("%q should not be a valid query", s)
		}
	}
}

func TestGaps(t *testing.T) {
	if common.Gaps(0) != "" || common.Gaps(-1) != "" {
		t.Fatal("Gaps with n <= 0 should be empty")
	}
	if common.Gaps(3) != "---" {
		t.Fatal("Gaps(3) got", common.Gaps(3))
	}
}

func TestCase(t *testing.T) {
	for _, c := range []byte("AZ") {
		if !IsUpper(c) || IsLower(c) {
			t.Fatalf("%c should be upper case only", c)
		}
	}
	for _, c := range []byte("az") {
		if IsUpper(c) || !IsLower(c) {
			t.Fatalf("%c should be lower case only", c)
		}
	}
	for _, c := range []byte("-.@[`{0 ") {
		if IsUpper(c) || IsLower(c) {
			t.Fatalf("%q is not a letter", c)
		}
	}
}

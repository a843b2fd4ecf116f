package a3m_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	. "github.com/lindseyguan/a3mtools/pkg/a3m"
	"github.com/lindseyguan/a3mtools/pkg/randmsa"
)

const msa1plus2 = `#5,3	1,1
>101	102
ABCDEFGH
>101
ABCDE---
>s1
AB-DE---
>s2
aAbBCdDE---
>102
-----FGH
>t1
-----FgGH
>102
-----F-H
`

func TestConcat(t *testing.T) {
	a, b := mustParse(t, msa1), mustParse(t, msa2)
	got, err := Concat(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != msa1plus2 {
		t.Fatalf("got\n%s\nwanted\n%s", got, msa1plus2)
	}
	if a.String() != msa1 || b.String() != msa2 {
		t.Fatal("Concat changed its operands")
	}
	if c := got.ParsedInfo().Cards(); len(c) != 2 || c[0] != 1 || c[1] != 1 {
		t.Fatal("cardinalities", c)
	}
	if l := got.ChainLengths(); len(l) != 2 || l[0] != 5 || l[1] != 3 {
		t.Fatal("chain lengths", l)
	}
	if err := got.Validate(); err != nil {
		t.Fatal(err)
	}
}

// TestConcatThree joins a two chain alignment with a single chain one.
// The left side has more than one chain, so its query is not added as
// a row.
func TestConcatThree(t *testing.T) {
	a, b := mustParse(t, msa1), mustParse(t, msa2)
	ab, _ := Concat(a, b)
	abc, err := Concat(ab, a)
	if err != nil {
		t.Fatal(err)
	}
	if h := abc.Query().Cmmt(); h != "101\t102\t103" {
		t.Fatalf("query header got %q", h)
	}
	if abc.Info() != "#5,3,5\t1,1,1" {
		t.Fatalf("info got %q", abc.Info())
	}
	rows := abc.Rows()
	if rows[0].Cmmt() != "101" || rows[0].Residues() != "ABCDE--------" {
		t.Fatal("first row should be the first query, got", rows[0])
	}
	var n103 int
	for _, r := range rows {
		if r.Cmmt() == "103" {
			n103++
			if r.Residues() != "--------ABCDE" {
				t.Fatal("third query row got", r.Residues())
			}
		}
	}
	if n103 != 1 {
		t.Fatal("expected one row called 103, got", n103)
	}
}

// TestRenumber checks the chain numbers in the combined header are
// different and increase.
func TestRenumber(t *testing.T) {
	a := mustParse(t, "#1,1\t1,1\n>1\t7\nAB\n")
	b := mustParse(t, "#1,1\t1,1\n>1\t2\nCD\n>2\n-D\n")
	got, err := Concat(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if h := got.Query().Cmmt(); h != "1\t7\t8\t9" {
		t.Fatalf("header got %q", h)
	}
	rows := got.Rows()
	if len(rows) != 1 || rows[0].Cmmt() != "9" || rows[0].Residues() != "---D" {
		t.Fatal("rows got", rows)
	}
	prev := -1
	for _, f := range strings.Split(got.Query().Cmmt(), "\t") {
		n, _ := strconv.Atoi(f)
		if n <= prev {
			t.Fatal("chain numbers do not increase", got.Query().Cmmt())
		}
		prev = n
	}
}

func TestConcatWidth(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		a := mustParse(t, randmsa.String(randmsa.RandMSAArgs{
			Iseed: seed, Cmmt: "a", Nseq: 25, Lens: []int{30},
			FracGap: 0.5, FracIns: 0.2, AllGapOK: true}))
		b := mustParse(t, randmsa.String(randmsa.RandMSAArgs{
			Iseed: seed + 100, Cmmt: "b", Nseq: 15, Lens: []int{12, 8},
			FracGap: 0.5, FracIns: 0.2, AllGapOK: true}))
		got, err := Concat(a, b)
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range got.Rows() {
			if r.NCol() != a.Len()+b.Len() {
				t.Fatalf("row %s covers %d columns, wanted %d", r.Cmmt(), r.NCol(), a.Len()+b.Len())
			}
			if r.AllGap() {
				t.Fatal("all gap row", r.Cmmt(), "in result")
			}
		}
	}
}

// foreign satisfies Alignment but is not one of ours.
type foreign struct{ m *MSA }

func (f foreign) Base() *MSA { return f.m }

func TestConcatForeign(t *testing.T) {
	a := mustParse(t, msa1)
	f := foreign{m: mustParse(t, msa2)}
	if _, err := Concat(a, f); !errors.Is(err, ErrType) {
		t.Fatal("expected type error for a foreign alignment, got", err)
	}
	if _, err := Concat(f, a); !errors.Is(err, ErrType) {
		t.Fatal("expected type error for a foreign alignment, got", err)
	}
	if _, err := DiagonalConcat(f, a); !errors.Is(err, ErrType) {
		t.Fatal("expected type error for a foreign alignment, got", err)
	}
}

func TestConcatErrors(t *testing.T) {
	a := mustParse(t, msa1)
	var nilMSA *MSA
	var nilPaired *Paired
	for _, pair := range [][2]Alignment{{nil, a}, {a, nil}, {nilMSA, a}, {a, nilPaired}} {
		if _, err := Concat(pair[0], pair[1]); !errors.Is(err, ErrType) {
			t.Fatal("expected type error, got", err)
		}
	}
	named := mustParse(t, "#3\t1\n>query\nABC\n")
	if _, err := Concat(a, named); !errors.Is(err, ErrFormat) {
		t.Fatal("expected format error for a non-numeric header, got", err)
	}
}

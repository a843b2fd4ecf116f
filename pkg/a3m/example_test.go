package a3m_test

import (
	"fmt"
	"log"

	"github.com/lindseyguan/a3mtools/pkg/a3m"
)

func ExampleMSA_Slice() {
	m, err := a3m.ParseString("#5\t1\n>101\nABCDE\n>hit\naAbBCdDE\n")
	if err != nil {
		log.Fatal(err)
	}
	s, err := m.Slice(a3m.Span(1, 4))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(s)
	// Output:
	// #3	1
	// >101
	// BCD
	// >hit
	// BCdD
}

func ExampleConcat() {
	a, _ := a3m.ParseString("#2\t1\n>101\nAB\n>x\nA-\n")
	b, _ := a3m.ParseString("#3\t1\n>101\nCDE\n>y\nC-e-\n")
	ab, err := a3m.Concat(a, b)
	if err != nil {
		log.Fatal(err)
	}
	p, err := a3m.ToPaired(ab, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(p)
	// Output:
	// #2,3	1,1
	// >101	102
	// ABCDE
	// >101	102
	// ABCDE
	// >101
	// AB---
	// >x
	// A----
	// >102
	// --CDE
	// >y
	// --C-e-
	// >101
	// AB---
	// >102
	// --CDE
}

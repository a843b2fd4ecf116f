package a3m

import (
	"fmt"
	"io"
)

// Alignment is satisfied by the two kinds of alignment we have, *MSA
// and *Paired. Base gives the shared core.
type Alignment interface {
	Base() *MSA
}

// Slicer is something that can be cut down to a range of query columns.
type Slicer interface {
	Slice(r Range) (*MSA, error)
}

// Serializer writes a3m text.
type Serializer interface {
	Write(w io.Writer) error
	String() string
}

var (
	_ Alignment  = (*MSA)(nil)
	_ Alignment  = (*Paired)(nil)
	_ Slicer     = (*MSA)(nil)
	_ Slicer     = (*Paired)(nil)
	_ Serializer = (*MSA)(nil)
	_ Serializer = (*Paired)(nil)
)

// base gets the core of an alignment. Only our two types are accepted.
// A nil pointer inside the interface is as bad as a nil interface.
func base(a Alignment, side string) (*MSA, error) {
	var m *MSA
	switch v := a.(type) {
	case *MSA:
		m = v
	case *Paired:
		if v != nil {
			m = v.Base()
		}
	case nil:
	default:
		return nil, &TypeError{Desc: fmt.Sprintf("cannot concatenate alignment with %T", a)}
	}
	if m == nil {
		return nil, &TypeError{Desc: "cannot concatenate alignment with nil " + side + " operand"}
	}
	return m, nil
}

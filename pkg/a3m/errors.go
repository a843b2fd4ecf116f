// Errors from parsing and manipulating alignments.
// A FormatError saves the line number and the line we were trying
// to read, if we know them.

package a3m

import (
	"errors"
	"strconv"
)

const maxMsgLen = 70

// Sentinels, so callers can say errors.Is(err, a3m.ErrFormat)
var (
	ErrFormat      = errors.New("a3m format error")
	ErrInvariant   = errors.New("alignment invariant violated")
	ErrUnsupported = errors.New("unsupported operation")
	ErrType        = errors.New("incompatible operand")
)

// FormatError is for input which is not a3m.
type FormatError struct {
	N      int    // line number, counting from 1. Zero if unknown.
	Inline string // The line that provoked the error
	Desc   string // Description of error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error gives the line number and the start of the line if we have them.
func (e *FormatError) Error() string {
	var errmsg string
	if e.N != 0 {
		errmsg = "Line: " + strconv.Itoa(e.N) + " "
	}
	errmsg += e.Desc
	if e.Inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.Inline)
	}
	return errmsg
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// InvariantError means we were asked to build an alignment which would
// be broken. The alignment is never returned.
type InvariantError struct{ Desc string }

func (e *InvariantError) Error() string        { return e.Desc }
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

// UnsupportedError is for stepped slices, slicing multi-chain alignments
// and asking for chains that are not there.
type UnsupportedError struct{ Desc string }

func (e *UnsupportedError) Error() string        { return e.Desc }
func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// TypeError is returned when an operand is not an alignment we know.
type TypeError struct{ Desc string }

func (e *TypeError) Error() string        { return e.Desc }
func (e *TypeError) Is(target error) bool { return target == ErrType }

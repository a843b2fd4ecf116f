// brokenio is a wrapper around an io.Reader for testing the paths where
// reading goes wrong.
// Typical use: you have a reader from a file, a compressed source or a
// string. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then works as before, but with artificial errors.
// A read can fail after a given number of bytes, or at random with a
// given probability. On the first read, we might return nothing at all,
// which is what one often sees with a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what a failed read returns
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdr wraps a reader. The probabilities are the fraction of reads
// that go wrong, so 0.05 means failure in 5% of the cases.
type BrknRdr struct {
	rdrOrig      io.Reader // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32
	failAfter    int // fail once this many bytes have been read. -1 means never
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader, a wrapper around the old one. It does
// not fail until told to.
func NewReader(rIn io.Reader, seed int64) *BrknRdr {
	return &BrknRdr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(seed)),
		failAfter: -1,
	}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reading fail once n bytes have gone through.
func (r *BrknRdr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes passed on so far.
func (r *BrknRdr) NByte() int { return r.nByte }

// Read passes on reads from the original reader, counting bytes. If we
// are past failAfter, the data is cut at that point and an error
// returned.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 && r.nByte >= r.failAfter {
		return 0, fmt.Errorf("%w after %d bytes", ErrBroken, r.nByte)
	}
	if r.failAfter >= 0 && len(p) > r.failAfter-r.nByte {
		p = p[:r.failAfter-r.nByte]
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return n, fmt.Errorf("%w on call %d", ErrBroken, r.nCalled)
	}
	return n, err
}

// 3 Aug 2020

// Package a3mio gets a3m text in and out of files.
// A file name of "" or "-" means stdin or stdout. Names ending in .gz
// are compressed and decompressed on the fly. Plain files are read
// with mmap.
package a3mio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/lindseyguan/a3mtools/pkg/a3m"
	. "github.com/lindseyguan/a3mtools/pkg/seq/common"
)

const gzSuffix = ".gz"

func isStd(fname string) bool { return fname == "" || fname == "-" }

// stdin is a variable so tests can replace it.
var stdin io.Reader = os.Stdin

// stdout likewise
var stdout io.Writer = os.Stdout

// byMmap maps a file and hands the contents to f. The mapping goes away
// when f returns, so f must not hang on to the bytes.
// A zero length file cannot be mapped, so f gets an empty slice.
func byMmap(fname string, f func([]byte) error) error {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 {
		return f(nil)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer mm.Unmap()
	return f(mm)
}

// withReader opens whatever fname means and calls f on it.
func withReader(fname string, f func(io.Reader) error) error {
	switch {
	case isStd(fname):
		return f(bufio.NewReader(stdin))
	case strings.HasSuffix(fname, gzSuffix):
		fp, err := os.Open(fname)
		if err != nil {
			return err
		}
		zr, err := wrapGzip(fp)
		if err != nil {
			fp.Close()
			return fmt.Errorf("%s: %w", fname, err)
		}
		defer zr.Close()
		return f(bufio.NewReader(zr))
	default:
		return byMmap(fname, func(b []byte) error { return f(bytes.NewReader(b)) })
	}
}

// ReadAll returns the text of a file.
func ReadAll(fname string) ([]byte, error) {
	var text []byte
	err := withReader(fname, func(r io.Reader) error {
		var err error
		text, err = io.ReadAll(r)
		return err
	})
	return text, err
}

// ReadFile reads an alignment from a file.
func ReadFile(fname string) (*a3m.MSA, error) {
	var m *a3m.MSA
	err := withReader(fname, func(r io.Reader) error {
		var err error
		m, err = a3m.Parse(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name(fname), err)
	}
	return m, nil
}

// ReadPaired reads a multi-chain alignment.
func ReadPaired(fname string, paired bool) (*a3m.Paired, error) {
	m, err := ReadFile(fname)
	if err != nil {
		return nil, err
	}
	p, err := a3m.ToPaired(m, paired)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name(fname), err)
	}
	return p, nil
}

// Count returns the number of records, query included, in a file. It
// just counts the ">" characters.
func Count(fname string) (int, error) {
	var n int
	if !isStd(fname) && !strings.HasSuffix(fname, gzSuffix) {
		err := byMmap(fname, func(b []byte) error {
			n = bytes.Count(b, []byte{CmmtChar})
			return nil
		})
		return n, err
	}
	err := withReader(fname, func(r io.Reader) error {
		buf := make([]byte, 64*1024)
		for {
			k, err := r.Read(buf)
			n += bytes.Count(buf[:k], []byte{CmmtChar})
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
	return n, err
}

func name(fname string) string {
	if isStd(fname) {
		return "stdin"
	}
	return fname
}

// create opens fname for writing.
func create(fname string) (io.WriteCloser, error) {
	if isStd(fname) {
		return nopCloser{stdout}, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("Creating output file: %w", err)
	}
	if strings.HasSuffix(fname, gzSuffix) {
		return wrapGzipWriter(fp), nil
	}
	return fp, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// WriteFile writes an alignment, paired or not.
func WriteFile(fname string, s a3m.Serializer) error {
	fp, err := create(fname)
	if err != nil {
		return err
	}
	if err := s.Write(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}

// WriteAll writes text to a file.
func WriteAll(fname string, text []byte) error {
	fp, err := create(fname)
	if err != nil {
		return err
	}
	if _, err := fp.Write(text); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// Wrapping of compressed streams. On Close, the decompressor is closed,
// followed by the underlying file.

package a3mio

import (
	"compress/gzip"
	"errors"
	"io"
)

type fpGzip struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *fpGzip) Close() error {
	var s string
	if e := fc.zrdr.Close(); e != nil { // Close decompressor
		s = e.Error()
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *fpGzip) Read(p []byte) (int, error) { return fc.zrdr.Read(p) }

// wrapGzip takes a file pointer and wraps it so the correct Close and
// Read will be called.
func wrapGzip(fp io.ReadCloser) (*fpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &fpGzip{fp: fp, zrdr: zrdr}, nil
}

// wcGzip is the writing side. Close flushes the compressor, then closes
// the file.
type wcGzip struct {
	fp   io.WriteCloser
	zwrt *gzip.Writer
}

func (wc *wcGzip) Write(p []byte) (int, error) { return wc.zwrt.Write(p) }

func (wc *wcGzip) Close() error {
	err1 := wc.zwrt.Close()
	err2 := wc.fp.Close()
	return errors.Join(err1, err2)
}

func wrapGzipWriter(fp io.WriteCloser) *wcGzip {
	return &wcGzip{fp: fp, zwrt: gzip.NewWriter(fp)}
}

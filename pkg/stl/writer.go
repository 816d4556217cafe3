package stl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/philipparndt/stlviewer/pkg/geometry"
)

// Writer encodes facets to an STL stream in a fixed format.
type Writer struct {
	w       *bufio.Writer
	format  Format
	name    string
	count   int
	written int
	closer  io.Closer
	path    string
}

// NewWriter writes the file preamble and returns a writer for count facets.
// Binary files need the count up front; ASCII files ignore it.
func NewWriter(w io.Writer, format Format, header string, count int) (*Writer, error) {
	sw := &Writer{
		w:      bufio.NewWriter(w),
		format: format,
		name:   solidName(header),
		count:  count,
	}

	switch format {
	case Binary:
		if count < 0 || count > math.MaxInt32 {
			return nil, fmt.Errorf("facet count %d does not fit a binary header", count)
		}
		var junk [junkSize]byte
		copy(junk[:], header)
		if _, err := sw.w.Write(junk[:]); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := WriteInt32LE(sw.w, int32(count)); err != nil {
			return nil, fmt.Errorf("failed to write facet count: %w", err)
		}
	case ASCII:
		if _, err := fmt.Fprintln(sw.w, solidLine("solid", sw.name)); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}

	return sw, nil
}

// Create creates the file at path and writes the preamble.
func Create(path string, format Format, header string, count int) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, newError(FileOpenError, path, err)
	}
	w, err := NewWriter(file, format, header, count)
	if err != nil {
		file.Close()
		return nil, err
	}
	w.closer = file
	w.path = path
	return w, nil
}

// Write encodes one facet
func (w *Writer) Write(f geometry.Facet) error {
	var err error
	if w.format == Binary {
		err = WriteBinaryFacet(w.w, f)
	} else {
		err = WriteASCIIFacet(w.w, f)
	}
	if err != nil {
		return fmt.Errorf("failed to write facet %d: %w", w.written, err)
	}
	w.written++
	return nil
}

// Close finishes the file and closes it when the writer was created by Create.
// Writing fewer or more binary facets than announced is an error.
func (w *Writer) Close() error {
	err := w.finish()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", w.path, cerr)
		}
		w.closer = nil
	}
	return err
}

func (w *Writer) finish() error {
	if w.format == ASCII {
		if _, err := fmt.Fprintln(w.w, solidLine("endsolid", w.name)); err != nil {
			return fmt.Errorf("failed to write footer: %w", err)
		}
	} else if w.written != w.count {
		return fmt.Errorf("wrote %d facets but the header announces %d", w.written, w.count)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}

func solidLine(keyword, name string) string {
	if name == "" {
		return keyword
	}
	return keyword + " " + name
}

// Encode writes m to w in m.Format
func Encode(w io.Writer, m *Mesh) error {
	sw, err := NewWriter(w, m.Format, m.Header, len(m.Facets))
	if err != nil {
		return err
	}
	for _, f := range m.Facets {
		if err := sw.Write(f); err != nil {
			return err
		}
	}
	return sw.Close()
}

// WriteFile writes m to the file at path in m.Format
func WriteFile(path string, m *Mesh) error {
	sw, err := Create(path, m.Format, m.Header, len(m.Facets))
	if err != nil {
		return err
	}
	for _, f := range m.Facets {
		if err := sw.Write(f); err != nil {
			sw.Close()
			return err
		}
	}
	return sw.Close()
}

package stl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/stlviewer/pkg/geometry"
)

// Reader decodes the facets of an STL stream one at a time.
type Reader struct {
	info   *Info
	path   string
	br     *bufio.Reader
	ascii  *ASCIIFacetReader
	read   int
	closer io.Closer
}

// NewReader sniffs rs and returns a reader positioned at the first facet.
func NewReader(rs io.ReadSeeker, size int64) (*Reader, error) {
	info, err := Sniff(rs, size)
	if err != nil {
		return nil, err
	}
	r := &Reader{
		info: info,
		br:   bufio.NewReader(rs),
	}
	if info.Format == ASCII {
		r.ascii = NewASCIIFacetReader(r.br)
	}
	return r, nil
}

// Open opens the file at path and sniffs it.
// The caller must Close the returned reader.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newError(FileOpenError, path, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, newError(FileOpenError, path, err)
	}

	r, err := NewReader(file, stat.Size())
	if err != nil {
		file.Close()
		return nil, attachPath(err, path)
	}
	r.path = path
	r.closer = file
	for _, w := range r.info.Warnings {
		var mismatch *CountMismatchWarning
		if errors.As(w, &mismatch) {
			mismatch.Path = path
		}
	}
	return r, nil
}

// Info returns the result of sniffing the stream
func (r *Reader) Info() *Info {
	return r.info
}

// SetStrict enables strict keyword checking for ASCII records
func (r *Reader) SetStrict(strict bool) {
	if r.ascii != nil {
		r.ascii.Strict = strict
	}
}

// Next returns the next facet, or io.EOF once Info().FacetCount facets were read.
func (r *Reader) Next() (geometry.Facet, error) {
	if r.read >= r.info.FacetCount {
		return geometry.Facet{}, io.EOF
	}

	var (
		f   geometry.Facet
		err error
	)
	if r.ascii != nil {
		f, err = r.ascii.Next()
	} else {
		f, err = ReadBinaryFacet(r.br)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = newError(WrongHeaderSize, "", fmt.Errorf("file ended after %d of %d facets", r.read, r.info.FacetCount))
		}
	}
	if err != nil {
		return geometry.Facet{}, attachPath(fmt.Errorf("facet %d: %w", r.read, err), r.path)
	}

	r.read++
	return f, nil
}

// ReadMesh allocates storage for all facets and reads them.
// maxFacets bounds the allocation; zero means no limit.
func (r *Reader) ReadMesh(maxFacets int) (*Mesh, error) {
	facets, err := allocateFacets(r.info.FacetCount, maxFacets)
	if err != nil {
		return nil, attachPath(err, r.path)
	}

	for i := range facets {
		f, err := r.Next()
		if err != nil {
			return nil, err
		}
		facets[i] = f
	}

	return &Mesh{
		Header: r.info.Header,
		Format: r.info.Format,
		Facets: facets,
	}, nil
}

// Close closes the underlying file when the reader was created by Open
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// allocateFacets reserves storage for n facets. A count above limit, or one
// the runtime refuses to allocate, is reported as OutOfMemory.
func allocateFacets(n, limit int) (facets []geometry.Facet, err error) {
	if n < 0 || (limit > 0 && n > limit) {
		return nil, newError(OutOfMemory, "", fmt.Errorf("%d facets exceed the limit of %d", n, limit))
	}
	defer func() {
		if p := recover(); p != nil {
			facets = nil
			err = newError(OutOfMemory, "", fmt.Errorf("%v", p))
		}
	}()
	return make([]geometry.Facet, n), nil
}

// Decode reads a complete mesh from rs.
func Decode(rs io.ReadSeeker, size int64) (*Mesh, *Info, error) {
	r, err := NewReader(rs, size)
	if err != nil {
		return nil, nil, err
	}
	m, err := r.ReadMesh(0)
	if err != nil {
		return nil, nil, err
	}
	return m, r.Info(), nil
}

// ReadFile reads the STL file at path into a mesh
func ReadFile(path string) (*Mesh, *Info, error) {
	r, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	m, err := r.ReadMesh(0)
	if err != nil {
		return nil, nil, err
	}
	return m, r.Info(), nil
}

// attachPath records path on the first *Error in err's chain that has none.
func attachPath(err error, path string) error {
	var e *Error
	if path != "" && errors.As(err, &e) && e.Path == "" {
		e.Path = path
	}
	return err
}

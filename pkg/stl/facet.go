package stl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/stlviewer/pkg/geometry"
)

// ReadBinaryFacet reads one 50-byte record: normal, three vertices
// (12 little-endian float32 values) and two attribute bytes.
func ReadBinaryFacet(r io.Reader) (geometry.Facet, error) {
	// read it into a buffer first, so that we can check err once
	var buf [facetSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return geometry.Facet{}, err
	}
	return decodeBinaryFacet(buf[:]), nil
}

func decodeBinaryFacet(b []byte) geometry.Facet {
	var f geometry.Facet
	f.Normal = geometry.NewVector4(float32LE(b[0:]), float32LE(b[4:]), float32LE(b[8:]), 0)
	for i := range f.Vertices {
		off := 12 + 12*i
		f.Vertices[i] = geometry.NewVector(float32LE(b[off:]), float32LE(b[off+4:]), float32LE(b[off+8:]))
	}
	f.Extra = [2]byte{b[48], b[49]}
	return f
}

// WriteBinaryFacet writes f as one 50-byte record.
func WriteBinaryFacet(w io.Writer, f geometry.Facet) error {
	var buf [facetSize]byte
	encodeBinaryFacet(buf[:], f)
	_, err := w.Write(buf[:])
	return err
}

func encodeBinaryFacet(b []byte, f geometry.Facet) {
	putFloat32LE(b[0:], f.Normal.X)
	putFloat32LE(b[4:], f.Normal.Y)
	putFloat32LE(b[8:], f.Normal.Z)
	for i, v := range f.Vertices {
		off := 12 + 12*i
		putFloat32LE(b[off:], v.X)
		putFloat32LE(b[off+4:], v.Y)
		putFloat32LE(b[off+8:], v.Z)
	}
	b[48] = f.Extra[0]
	b[49] = f.Extra[1]
}

// asciiLayout is the token sequence of one facet; "" marks a number.
var asciiLayout = []string{
	"facet", "normal", "", "", "",
	"outer", "loop",
	"vertex", "", "", "",
	"vertex", "", "", "",
	"vertex", "", "", "",
	"endloop", "endfacet",
}

// ASCIIFacetReader reads facet records from the body of an ASCII STL file.
//
// By default it discards every token that is not a number and takes the
// twelve numbers of a record positionally, so keywords may be misplaced or
// misspelled but values must not be reordered. In strict mode the record
// must follow the exact keyword layout.
type ASCIIFacetReader struct {
	scanner *bufio.Scanner
	Strict  bool
}

// NewASCIIFacetReader creates a reader positioned after the "solid" line
func NewASCIIFacetReader(r io.Reader) *ASCIIFacetReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	return &ASCIIFacetReader{scanner: scanner}
}

// Next reads one facet record
func (a *ASCIIFacetReader) Next() (geometry.Facet, error) {
	if a.Strict {
		return a.nextStrict()
	}

	var values [12]float32
	n := 0
	for n < len(values) {
		tok, err := a.token()
		if err != nil {
			return geometry.Facet{}, err
		}
		v, err := strconv.ParseFloat(tok, 32)
		if errors.Is(err, strconv.ErrRange) {
			return geometry.Facet{}, newError(MalformedASCIIRecord, "",
				fmt.Errorf("number %q out of range", tok))
		}
		if err != nil {
			// keywords and anything else that is not a number
			continue
		}
		values[n] = float32(v)
		n++
	}
	return facetFromValues(values), nil
}

func (a *ASCIIFacetReader) nextStrict() (geometry.Facet, error) {
	var values [12]float32
	n := 0
	for _, want := range asciiLayout {
		tok, err := a.token()
		if err != nil {
			return geometry.Facet{}, err
		}
		if want != "" {
			if !strings.EqualFold(tok, want) {
				return geometry.Facet{}, newError(MalformedASCIIRecord, "",
					fmt.Errorf("expected %q, found %q", want, tok))
			}
			continue
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return geometry.Facet{}, newError(MalformedASCIIRecord, "",
				fmt.Errorf("expected a number, found %q", tok))
		}
		values[n] = float32(v)
		n++
	}
	return facetFromValues(values), nil
}

func (a *ASCIIFacetReader) token() (string, error) {
	if a.scanner.Scan() {
		return a.scanner.Text(), nil
	}
	if err := a.scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return "", newError(MalformedASCIIRecord, "", io.ErrUnexpectedEOF)
}

func facetFromValues(v [12]float32) geometry.Facet {
	return geometry.Facet{
		Normal: geometry.NewVector4(v[0], v[1], v[2], 0),
		Vertices: [3]geometry.Vector{
			geometry.NewVector(v[3], v[4], v[5]),
			geometry.NewVector(v[6], v[7], v[8]),
			geometry.NewVector(v[9], v[10], v[11]),
		},
	}
}

// WriteASCIIFacet writes f as a seven line record with values in
// scientific notation, eight digits after the decimal point.
func WriteASCIIFacet(w io.Writer, f geometry.Facet) error {
	_, err := fmt.Fprintf(w,
		"  facet normal %.8e %.8e %.8e\n"+
			"    outer loop\n"+
			"      vertex %.8e %.8e %.8e\n"+
			"      vertex %.8e %.8e %.8e\n"+
			"      vertex %.8e %.8e %.8e\n"+
			"    endloop\n"+
			"  endfacet\n",
		f.Normal.X, f.Normal.Y, f.Normal.Z,
		f.Vertices[0].X, f.Vertices[0].Y, f.Vertices[0].Z,
		f.Vertices[1].X, f.Vertices[1].Y, f.Vertices[1].Z,
		f.Vertices[2].X, f.Vertices[2].Y, f.Vertices[2].Z,
	)
	return err
}

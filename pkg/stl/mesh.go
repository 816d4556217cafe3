package stl

import (
	"fmt"
	"strings"

	"github.com/philipparndt/stlviewer/pkg/geometry"
)

// Format is the on-disk encoding of an STL file
type Format int

const (
	ASCII Format = iota
	Binary
)

func (f Format) String() string {
	switch f {
	case ASCII:
		return "ascii"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "ascii" or "binary" (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii", "text":
		return ASCII, nil
	case "binary", "bin":
		return Binary, nil
	}
	return 0, fmt.Errorf("unknown STL format %q (expected ascii or binary)", s)
}

// Mesh represents a complete STL model: header, format and facets in file order
type Mesh struct {
	// Header is the 80-byte binary header (trailing NULs removed) or the
	// first line of an ASCII file.
	Header string
	// Format selects the encoding used when the mesh is written.
	Format Format
	Facets []geometry.Facet
}

// NewMesh creates a new empty mesh
func NewMesh(header string, format Format) *Mesh {
	return &Mesh{
		Header: header,
		Format: format,
		Facets: make([]geometry.Facet, 0),
	}
}

// AddFacet appends a facet to the mesh
func (m *Mesh) AddFacet(f geometry.Facet) {
	m.Facets = append(m.Facets, f)
}

// FacetCount returns the number of facets in the mesh
func (m *Mesh) FacetCount() int {
	return len(m.Facets)
}

// SetFormat sets the format used by the next write
func (m *Mesh) SetFormat(f Format) {
	m.Format = f
}

// Name returns the solid name: the header without a leading "solid" keyword.
func (m *Mesh) Name() string {
	return solidName(m.Header)
}

func solidName(header string) string {
	name := strings.TrimSpace(header)
	if len(name) >= 5 && strings.EqualFold(name[:5], "solid") {
		name = strings.TrimSpace(name[5:])
	}
	// a name must stay on the solid line
	return strings.Join(strings.Fields(name), " ")
}

// MarshalText encodes the format as "ascii" or "binary"
func (f Format) MarshalText() ([]byte, error) {
	if f != ASCII && f != Binary {
		return nil, fmt.Errorf("unknown STL format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts the names understood by ParseFormat
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

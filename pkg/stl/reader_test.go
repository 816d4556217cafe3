package stl

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/stlviewer/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBinary(t *testing.T) {
	data := binaryCube(t, "cube")
	m, info, err := Decode(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, Binary, m.Format)
	assert.Equal(t, "cube", m.Header)
	assert.Equal(t, 12, m.FacetCount())
	assert.Equal(t, info.FacetCount, m.FacetCount())
	assert.Equal(t, fixture.Cube(2), m.Facets)
}

func TestDecodeASCII(t *testing.T) {
	m, _, err := Decode(bytes.NewReader([]byte(oneFacetASCII)), int64(len(oneFacetASCII)))
	require.NoError(t, err)

	assert.Equal(t, ASCII, m.Format)
	assert.Equal(t, "solid triangle", m.Header)
	assert.Equal(t, "triangle", m.Name())
	require.Equal(t, 1, m.FacetCount())
	assert.Equal(t, [2]byte{}, m.Facets[0].Extra)
}

func TestReaderNextStopsAtCount(t *testing.T) {
	data := binaryCube(t, "cube")
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		_, err := r.Next()
		require.NoError(t, err)
	}
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReadMeshOutOfMemory(t *testing.T) {
	data := binaryCube(t, "cube")
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	m, err := r.ReadMesh(11)
	assert.Nil(t, m)
	assert.Equal(t, OutOfMemory, KindOf(err))
	assert.True(t, errors.Is(err, ErrOutOfMemory))
}

func TestReadMeshTruncatedASCII(t *testing.T) {
	// the line count promises two facets but the second one lacks a value
	data := oneFacetASCII + "  facet normal 0 0 1\n    outer loop\n      vertex 0 0 0\n      vertex 1 0 0\n      vertex 0 1\n    endloop\n"
	r, err := NewReader(bytes.NewReader([]byte(data)), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, 2, r.Info().FacetCount)

	_, err = r.ReadMesh(0)
	assert.Equal(t, MalformedASCIIRecord, KindOf(err))
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.stl")
	_, err := Open(path)

	require.Error(t, err)
	assert.Equal(t, FileOpenError, KindOf(err))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, path, e.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenAttachesPathToWarnings(t *testing.T) {
	data := binaryCube(t, "cube")
	le.PutUint32(data[80:84], 99)
	path := filepath.Join(t.TempDir(), "mismatch.stl")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.Info().Warnings, 1)
	assert.Contains(t, r.Info().Warnings[0].Error(), path)
}

func TestOpenWrongSizeCarriesPath(t *testing.T) {
	data := append(binaryCube(t, "cube"), 1, 2, 3)
	path := filepath.Join(t.TempDir(), "broken.stl")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Open(path)
	assert.Equal(t, WrongHeaderSize, KindOf(err))
	assert.Contains(t, err.Error(), path)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, os.WriteFile(path, binaryCube(t, "cube"), 0o644))

	m, info, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, m.FacetCount())
	assert.Equal(t, Binary, info.Format)
}

func TestReaderReportsOutOfRangeAtItsFacet(t *testing.T) {
	data := "solid big\n" +
		"facet normal 0 0 1\nouter loop\nvertex 1e39 0 0\nvertex 0 1 0\nvertex 0 0 1\nendloop\nendfacet\n" +
		"facet normal 0 0 1\nouter loop\nvertex 1 0 0\nvertex 0 1 0\nvertex 0 0 1\nendloop\nendfacet\n" +
		"endsolid big\n"

	r, err := NewReader(bytes.NewReader([]byte(data)), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, 2, r.Info().FacetCount)

	_, err = r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedASCII)
	assert.Contains(t, err.Error(), "facet 0")
}

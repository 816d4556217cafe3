package stl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	headerSize         = 84
	junkSize           = 80
	facetSize          = 50
	asciiLinesPerFacet = 7
)

// Info describes an STL stream as classified by Sniff.
type Info struct {
	Format Format
	Header string
	// FacetCount is derived from the file size (binary) or line count (ASCII).
	FacetCount int
	// DeclaredCount is the count stored in a binary header; zero for ASCII.
	DeclaredCount int32
	// DataOffset is the position of the first facet record.
	DataOffset int64
	Size       int64
	// Warnings holds non-fatal findings such as *CountMismatchWarning.
	Warnings []error
}

// Sniff classifies the stream as ASCII or binary and estimates its facet count.
//
// A stream whose bytes are all 7-bit clean is ASCII; the first byte above 127
// makes it binary. This is a heuristic: a binary file whose header and data
// happen to be 7-bit clean is read as ASCII, and an ASCII file containing
// UTF-8 text is read as binary.
//
// On success the stream is positioned at Info.DataOffset.
func Sniff(rs io.ReadSeeker, size int64) (*Info, error) {
	if rs == nil {
		return nil, newError(FileOpenError, "", errors.New("stream is not open"))
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind stream: %w", err)
	}

	format, err := detectFormat(bufio.NewReader(rs))
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind stream: %w", err)
	}

	var info *Info
	if format == Binary {
		info, err = sniffBinary(rs, size)
	} else {
		info, err = sniffASCII(rs, size)
	}
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(info.DataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to facet data: %w", err)
	}
	return info, nil
}

func detectFormat(r io.ByteReader) (Format, error) {
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return ASCII, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read file: %w", err)
		}
		if c > 127 {
			return Binary, nil
		}
	}
}

func sniffBinary(r io.Reader, size int64) (*Info, error) {
	if size < headerSize || (size-headerSize)%facetSize != 0 {
		return nil, newError(WrongHeaderSize, "",
			fmt.Errorf("%d bytes is not %d + %d*n", size, headerSize, facetSize))
	}

	info := &Info{
		Format:     Binary,
		FacetCount: int((size - headerSize) / facetSize),
		DataOffset: headerSize,
		Size:       size,
	}

	header := make([]byte, junkSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	info.Header = string(bytes.TrimRight(header, "\x00"))

	declared, err := ReadInt32LE(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read facet count: %w", err)
	}
	info.DeclaredCount = declared
	if int64(declared) != int64(info.FacetCount) {
		info.Warnings = append(info.Warnings, &CountMismatchWarning{
			Declared: declared,
			Computed: info.FacetCount,
		})
	}

	return info, nil
}

func sniffASCII(r io.Reader, size int64) (*Info, error) {
	br := bufio.NewReader(r)
	info := &Info{Format: ASCII, Size: size}

	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read header line: %w", err)
	}
	info.DataOffset = int64(len(first))
	header := strings.TrimRight(first, "\r\n")
	if len(header) > junkSize {
		header = header[:junkSize]
	}
	info.Header = header

	lines := 0
	for err == nil {
		var line string
		line, err = br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to count lines: %w", err)
		}
		// don't count short lines
		if len(strings.TrimRight(line, "\n")) > 4 {
			lines++
		}
	}
	info.FacetCount = lines / asciiLinesPerFacet

	return info, nil
}

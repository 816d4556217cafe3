package stl

import (
	"errors"
	"fmt"
)

// ErrorKind classifies codec and session failures so a host can tell them apart.
type ErrorKind int

const (
	// UnknownError is returned by KindOf for errors that carry no kind.
	UnknownError ErrorKind = iota
	// FileOpenError means a path could not be opened for reading or writing.
	FileOpenError
	// WrongHeaderSize means a binary file is not 84+50n bytes long.
	WrongHeaderSize
	// OutOfMemory means storage for the facets could not be allocated.
	OutOfMemory
	// MalformedASCIIRecord means an ASCII facet record could not be parsed.
	MalformedASCIIRecord
)

// Sentinel errors, one per kind, for use with errors.Is
var (
	ErrFileOpen        = errors.New("file could not be opened")
	ErrWrongHeaderSize = errors.New("file has a wrong size")
	ErrOutOfMemory     = errors.New("problem allocating memory")
	ErrMalformedASCII  = errors.New("malformed ASCII facet record")
)

func (k ErrorKind) String() string {
	switch k {
	case FileOpenError:
		return "FileOpenError"
	case WrongHeaderSize:
		return "WrongHeaderSize"
	case OutOfMemory:
		return "OutOfMemory"
	case MalformedASCIIRecord:
		return "MalformedAsciiRecord"
	default:
		return "UnknownError"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case FileOpenError:
		return ErrFileOpen
	case WrongHeaderSize:
		return ErrWrongHeaderSize
	case OutOfMemory:
		return ErrOutOfMemory
	case MalformedASCIIRecord:
		return ErrMalformedASCII
	default:
		return nil
	}
}

// Error is a classified failure together with the offending path.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := "unknown error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownError
}

// CountMismatchWarning reports a binary header whose facet count disagrees
// with the count implied by the file size. Loading continues with Computed.
type CountMismatchWarning struct {
	Path     string
	Declared int32
	Computed int
}

func (w *CountMismatchWarning) Error() string {
	msg := fmt.Sprintf("file size doesn't match number of facets in the header (header: %d, size: %d)",
		w.Declared, w.Computed)
	if w.Path != "" {
		return w.Path + ": " + msg
	}
	return msg
}

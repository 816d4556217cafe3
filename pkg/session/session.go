// Package session holds one STL file between load and save.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipparndt/stlviewer/pkg/analysis"
	"github.com/philipparndt/stlviewer/pkg/stl"
)

// State is the lifecycle state of a Session
type State int

const (
	Empty State = iota
	Loading
	Loaded
	Saving
	Closed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Saving:
		return "saving"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNotLoaded is returned by operations that need a loaded mesh
var ErrNotLoaded = errors.New("no mesh loaded")

// Options configures a Session.
type Options struct {
	// MaxFacets rejects files announcing more facets with OutOfMemory.
	// Zero means no limit.
	MaxFacets int
	// Streaming keeps no facets in memory. Stats are computed while reading
	// and Save reads the source file again. Memory still grows with the file:
	// the distinct point count needs every vertex position (3 per facet, 16
	// bytes each), which is about a third of a buffered load.
	Streaming bool
	// Strict enables keyword checking for ASCII records.
	Strict bool
	// OnWarning is called for every non-fatal finding during Load.
	OnWarning func(error)
}

// Session owns the mesh of a single file. It is not safe for concurrent use.
type Session struct {
	opts     Options
	state    State
	path     string
	header   string
	format   stl.Format
	count    int
	mesh     *stl.Mesh
	stats    analysis.Stats
	warnings []error
}

// New creates an empty session
func New(opts Options) *Session {
	return &Session{opts: opts}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Load reads the file at path and computes its statistics. It replaces
// whatever was loaded before. On failure the session is left Empty.
func (s *Session) Load(path string) error {
	s.reset()
	s.state = Loading

	if err := s.load(path); err != nil {
		s.reset()
		return err
	}

	s.state = Loaded
	for _, w := range s.warnings {
		if s.opts.OnWarning != nil {
			s.opts.OnWarning(w)
		}
	}
	return nil
}

func (s *Session) load(path string) error {
	r, err := stl.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	r.SetStrict(s.opts.Strict)

	info := r.Info()
	s.path = path
	s.header = info.Header
	s.format = info.Format
	s.count = info.FacetCount
	s.warnings = append(s.warnings, info.Warnings...)

	if s.opts.Streaming {
		acc := analysis.NewAccumulator(0)
		for {
			f, err := r.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}
			acc.Add(f)
		}
		s.stats = acc.Stats(s.header, s.format)
		return nil
	}

	mesh, err := r.ReadMesh(s.opts.MaxFacets)
	if err != nil {
		return err
	}
	s.mesh = mesh
	s.stats = analysis.Compute(mesh)
	return nil
}

// Save writes the mesh to path in the current format.
// Statistics are not recomputed.
func (s *Session) Save(path string) error {
	if s.state != Loaded {
		return ErrNotLoaded
	}
	s.state = Saving
	defer func() { s.state = Loaded }()

	if s.opts.Streaming {
		return s.transcode(path)
	}
	return stl.WriteFile(path, s.mesh)
}

// SaveAs sets the format and writes the mesh to path
func (s *Session) SaveAs(path string, format stl.Format) error {
	if s.state != Loaded {
		return ErrNotLoaded
	}
	s.SetFormat(format)
	return s.Save(path)
}

// transcode copies the facets of the source file to path one at a time.
// The output goes to a temporary file first so that path may be the source.
func (s *Session) transcode(path string) (err error) {
	src, err := stl.Open(s.path)
	if err != nil {
		return err
	}
	defer src.Close()
	src.SetStrict(s.opts.Strict)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".stlview-*")
	if err != nil {
		return &stl.Error{Kind: stl.FileOpenError, Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w, err := stl.NewWriter(tmp, s.format, s.header, s.count)
	if err != nil {
		return err
	}
	for {
		f, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := w.Write(f); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &stl.Error{Kind: stl.FileOpenError, Path: path, Err: err}
	}
	return nil
}

// SetFormat selects the format used by the next Save
func (s *Session) SetFormat(format stl.Format) {
	s.format = format
	if s.mesh != nil {
		s.mesh.SetFormat(format)
	}
}

// Format returns the format used by the next Save
func (s *Session) Format() stl.Format {
	return s.format
}

// Mesh returns the loaded mesh. It is nil when nothing is loaded and in
// streaming mode.
func (s *Session) Mesh() *stl.Mesh {
	return s.mesh
}

// Stats returns the statistics computed by the last successful Load
func (s *Session) Stats() analysis.Stats {
	return s.stats
}

// Warnings returns the non-fatal findings of the last Load
func (s *Session) Warnings() []error {
	return append([]error(nil), s.warnings...)
}

// Path returns the path of the loaded file
func (s *Session) Path() string {
	return s.path
}

// Close releases the mesh. A closed session can be loaded again.
func (s *Session) Close() error {
	s.reset()
	s.state = Closed
	return nil
}

func (s *Session) reset() {
	s.state = Empty
	s.path = ""
	s.header = ""
	s.format = stl.ASCII
	s.count = 0
	s.mesh = nil
	s.stats = analysis.Stats{}
	s.warnings = nil
}

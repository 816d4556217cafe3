// Package settings stores user preferences in a TOML file.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/stlviewer/pkg/stl"
)

const fileName = "settings.toml"

// Settings are the persisted preferences
type Settings struct {
	// ReverseYAxis flips the y axis when a mesh is displayed.
	ReverseYAxis bool `toml:"reverse_y_axis"`
	// DefaultFormat is used by convert when no format is given. Empty keeps
	// the format of the input file.
	DefaultFormat string   `toml:"default_format"`
	Units         string   `toml:"units"`
	Precision     int      `toml:"precision"`
	Snapshot      Snapshot `toml:"snapshot"`
}

// Snapshot holds the defaults of the snapshot command
type Snapshot struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

// Default returns the settings used when no file exists
func Default() Settings {
	return Settings{
		Units:     "mm",
		Precision: 3,
		Snapshot: Snapshot{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
			Foreground: "#4682b4",
		},
	}
}

// DefaultPath returns the settings file in the user configuration directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "stlviewer", fileName), nil
}

// Load reads the settings at path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	meta, err := toml.DecodeFile(path, &s)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("unknown settings in %s: %v", path, undecoded)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, creating the directory if needed
func (s Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(s); err != nil {
		file.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return file.Close()
}

// Validate checks value ranges and formats
func (s Settings) Validate() error {
	if s.DefaultFormat != "" {
		if _, err := stl.ParseFormat(s.DefaultFormat); err != nil {
			return fmt.Errorf("default_format: %w", err)
		}
	}
	if s.Precision < 0 || s.Precision > 12 {
		return fmt.Errorf("precision must be between 0 and 12, got %d", s.Precision)
	}
	if s.Snapshot.Width <= 0 || s.Snapshot.Height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", s.Snapshot.Width, s.Snapshot.Height)
	}
	if _, err := ParseColor(s.Snapshot.Background); err != nil {
		return fmt.Errorf("snapshot.background: %w", err)
	}
	if _, err := ParseColor(s.Snapshot.Foreground); err != nil {
		return fmt.Errorf("snapshot.foreground: %w", err)
	}
	return nil
}

// Format returns the default output format, if one is configured
func (s Settings) Format() (stl.Format, bool) {
	if s.DefaultFormat == "" {
		return stl.ASCII, false
	}
	f, err := stl.ParseFormat(s.DefaultFormat)
	if err != nil {
		return stl.ASCII, false
	}
	return f, true
}

// setters maps keys in dotted form to a function storing a parsed value
var setters = map[string]func(s *Settings, value string) error{
	"reverse_y_axis": func(s *Settings, value string) error {
		b, err := strconv.ParseBool(value)
		s.ReverseYAxis = b
		return err
	},
	"default_format": func(s *Settings, value string) error {
		s.DefaultFormat = value
		return nil
	},
	"units": func(s *Settings, value string) error {
		s.Units = value
		return nil
	},
	"precision": func(s *Settings, value string) error {
		n, err := strconv.Atoi(value)
		s.Precision = n
		return err
	},
	"snapshot.width": func(s *Settings, value string) error {
		n, err := strconv.Atoi(value)
		s.Snapshot.Width = n
		return err
	},
	"snapshot.height": func(s *Settings, value string) error {
		n, err := strconv.Atoi(value)
		s.Snapshot.Height = n
		return err
	},
	"snapshot.background": func(s *Settings, value string) error {
		s.Snapshot.Background = value
		return nil
	},
	"snapshot.foreground": func(s *Settings, value string) error {
		s.Snapshot.Foreground = value
		return nil
	},
}

// Keys lists the keys accepted by Set
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set parses value and stores it under key
func (s *Settings) Set(key, value string) error {
	set, ok := setters[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	next := *s
	if err := set(&next, value); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// ParseColor parses #rgb or #rrggbb
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

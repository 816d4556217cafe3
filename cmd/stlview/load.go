package main

import (
	"fmt"

	"github.com/philipparndt/stlviewer/pkg/session"
	"github.com/philipparndt/stlviewer/pkg/settings"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	maxFacets   int
	strictASCII bool
)

// settingsPath returns the --config path or the default location
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return settings.DefaultPath()
}

func loadSettings() (settings.Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return settings.Settings{}, err
	}
	return settings.Load(path)
}

// loadFile loads path into a new session. Warnings are printed to stderr.
func loadFile(cmd *cobra.Command, path string, streaming bool) (*session.Session, error) {
	s := session.New(session.Options{
		MaxFacets: maxFacets,
		Streaming: streaming,
		Strict:    strictASCII,
		OnWarning: func(err error) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		},
	})
	if err := s.Load(path); err != nil {
		return nil, err
	}
	return s, nil
}

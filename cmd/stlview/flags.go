package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/stlviewer/pkg/stl"
	"github.com/spf13/pflag"
)

// formatValue is a pflag.Value accepting an STL encoding
type formatValue struct {
	format stl.Format
	set    bool
}

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string {
	if !f.set {
		return ""
	}
	return f.format.String()
}

func (f *formatValue) Set(s string) error {
	format, err := stl.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	f.set = true
	return nil
}

func (f *formatValue) Type() string {
	return "ascii|binary"
}

// outputFormat selects how reports are printed
type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string {
	return string(*o)
}

func (o *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case outputText, outputJSON, outputYAML:
		*o = v
		return nil
	default:
		return fmt.Errorf("must be one of text, json, yaml")
	}
}

func (o *outputFormat) Type() string {
	return "text|json|yaml"
}

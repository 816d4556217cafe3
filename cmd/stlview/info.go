package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/stlviewer/pkg/analysis"
	"github.com/philipparndt/stlviewer/pkg/settings"
	"github.com/philipparndt/stlviewer/pkg/watcher"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	infoOutput    = outputText
	infoWatch     bool
	infoStreaming bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long: `Show the mesh information (facets, distinct points), the dimensions of the
bounding box and the volume and surface area of the model.

Volume is only meaningful for closed meshes with consistently oriented facets.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().VarP(&infoOutput, "output", "o", "Output format")
	infoCmd.Flags().BoolVarP(&infoWatch, "watch", "w", false, "Print again whenever the file changes")
	infoCmd.Flags().BoolVar(&infoStreaming, "streaming", false, "Do not keep facets in memory")
}

type vectorReport struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

type infoReport struct {
	File   string `json:"file" yaml:"file"`
	Header string `json:"header" yaml:"header"`
	Format string `json:"format" yaml:"format"`
	Mesh   struct {
		Facets int `json:"facets" yaml:"facets"`
		Points int `json:"points" yaml:"points"`
	} `json:"mesh" yaml:"mesh"`
	Dimensions struct {
		Units            string       `json:"units" yaml:"units"`
		Min              vectorReport `json:"min" yaml:"min"`
		Max              vectorReport `json:"max" yaml:"max"`
		Size             vectorReport `json:"size" yaml:"size"`
		BoundingDiameter float64      `json:"bounding_diameter" yaml:"bounding_diameter"`
		ShortestEdge     float64      `json:"shortest_edge" yaml:"shortest_edge"`
	} `json:"dimensions" yaml:"dimensions"`
	Properties struct {
		Volume  float64 `json:"volume" yaml:"volume"`
		Surface float64 `json:"surface" yaml:"surface"`
	} `json:"properties" yaml:"properties"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newInfoReport(path string, stats analysis.Stats, warnings []error, units string) infoReport {
	var r infoReport
	r.File = path
	r.Header = stats.Header
	r.Format = stats.Format.String()
	r.Mesh.Facets = stats.FacetCount
	r.Mesh.Points = stats.NumPoints
	r.Dimensions.Units = units
	r.Dimensions.Min = vectorReport{float64(stats.Min.X), float64(stats.Min.Y), float64(stats.Min.Z)}
	r.Dimensions.Max = vectorReport{float64(stats.Max.X), float64(stats.Max.Y), float64(stats.Max.Z)}
	r.Dimensions.Size = vectorReport{float64(stats.Size.X), float64(stats.Size.Y), float64(stats.Size.Z)}
	r.Dimensions.BoundingDiameter = stats.BoundingDiameter
	r.Dimensions.ShortestEdge = stats.ShortestEdge
	r.Properties.Volume = stats.Volume
	r.Properties.Surface = stats.Surface
	for _, w := range warnings {
		r.Warnings = append(r.Warnings, w.Error())
	}
	return r
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	prefs, err := loadSettings()
	if err != nil {
		return err
	}

	if err := printInfo(cmd, filename, prefs); err != nil {
		return err
	}
	if !infoWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnError(func(err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Watcher error: %v\n", err)
	})
	if err := fw.Watch([]string{filename}, func(string) {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := printInfo(cmd, filename, prefs); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}); err != nil {
		return err
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes (Ctrl+C to stop)\n", filename)
	<-ctx.Done()
	return nil
}

func printInfo(cmd *cobra.Command, filename string, prefs settings.Settings) error {
	s, err := loadFile(cmd, filename, infoStreaming)
	if err != nil {
		return err
	}
	defer s.Close()

	report := newInfoReport(filename, s.Stats(), s.Warnings(), prefs.Units)
	out := cmd.OutOrStdout()

	switch infoOutput {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeInfoText(out, report, prefs.Precision)
		return nil
	}
}

func writeInfoText(w io.Writer, r infoReport, precision int) {
	f := func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	units := r.Dimensions.Units

	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "File: %s\n", r.File)
	if r.Header != "" {
		fmt.Fprintf(w, "Header: %s\n", r.Header)
	}
	fmt.Fprintf(w, "Format: %s\n\n", r.Format)

	fmt.Fprintln(w, "Mesh Information:")
	fmt.Fprintf(w, "  Facets: %d\n", r.Mesh.Facets)
	fmt.Fprintf(w, "  Points: %d\n\n", r.Mesh.Points)

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  %-4s %12s %12s %12s\n", "", "min", "max", "delta")
	for _, axis := range []struct {
		name          string
		min, max, len float64
	}{
		{"X", r.Dimensions.Min.X, r.Dimensions.Max.X, r.Dimensions.Size.X},
		{"Y", r.Dimensions.Min.Y, r.Dimensions.Max.Y, r.Dimensions.Size.Y},
		{"Z", r.Dimensions.Min.Z, r.Dimensions.Max.Z, r.Dimensions.Size.Z},
	} {
		fmt.Fprintf(w, "  %-4s %12s %12s %12s %s\n", axis.name, f(axis.min), f(axis.max), f(axis.len), units)
	}
	fmt.Fprintf(w, "  Diameter: %s %s\n", f(r.Dimensions.BoundingDiameter), units)
	fmt.Fprintf(w, "  Shortest edge (estimate): %s %s\n\n", f(r.Dimensions.ShortestEdge), units)

	fmt.Fprintln(w, "Properties:")
	fmt.Fprintf(w, "  Volume: %s %s^3\n", f(r.Properties.Volume), units)
	fmt.Fprintf(w, "  Surface: %s %s^2\n", f(r.Properties.Surface), units)
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/philipparndt/stlviewer/pkg/settings"
	"github.com/philipparndt/stlviewer/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	snapWidth     int
	snapHeight    int
	snapView      string
	snapWireframe bool
	snapCaption   bool
	snapReverseY  bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [file] [image]",
	Short: "Render an STL file to a PNG or BMP image",
	Long: `Render the model centered on its bounding box and save the image.
The image format follows the extension of the output file (.png or .bmp).
Size and colors default to the [snapshot] settings.`,
	Args: cobra.ExactArgs(2),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapWidth, "width", 0, "Image width in pixels")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 0, "Image height in pixels")
	snapshotCmd.Flags().StringVar(&snapView, "view", "iso", "Camera view: iso, front, back, left, right, top, bottom")
	snapshotCmd.Flags().BoolVar(&snapWireframe, "wireframe", false, "Draw facet edges")
	snapshotCmd.Flags().BoolVar(&snapCaption, "caption", true, "Print the file name and size on the image")
	snapshotCmd.Flags().BoolVar(&snapReverseY, "reverse-y", false, "Reverse the y axis (default from settings)")

	snapshotCmd.RegisterFlagCompletionFunc("view", cobra.FixedCompletions(
		[]string{"iso", "front", "back", "left", "right", "top", "bottom"}, cobra.ShellCompDirectiveNoFileComp))
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	prefs, err := loadSettings()
	if err != nil {
		return err
	}
	opts, err := snapshotOptions(cmd, prefs)
	if err != nil {
		return err
	}

	s, err := loadFile(cmd, input, false)
	if err != nil {
		return err
	}
	defer s.Close()

	stats := s.Stats()
	if snapCaption {
		opts.Caption = fmt.Sprintf("%s  %.*f x %.*f x %.*f %s",
			filepath.Base(input),
			prefs.Precision, stats.Size.X,
			prefs.Precision, stats.Size.Y,
			prefs.Precision, stats.Size.Z,
			prefs.Units)
	}

	img, err := viewer.Render(s.Mesh().Facets, stats, opts)
	if err != nil {
		return err
	}
	if err := viewer.Save(output, img); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Image saved to %s (%dx%d)\n", output, opts.Width, opts.Height)
	return nil
}

func snapshotOptions(cmd *cobra.Command, prefs settings.Settings) (viewer.Options, error) {
	opts := viewer.DefaultOptions()
	opts.Width = prefs.Snapshot.Width
	opts.Height = prefs.Snapshot.Height
	opts.ReverseY = prefs.ReverseYAxis
	opts.Wireframe = snapWireframe

	var err error
	if opts.Background, err = settings.ParseColor(prefs.Snapshot.Background); err != nil {
		return opts, err
	}
	if opts.Foreground, err = settings.ParseColor(prefs.Snapshot.Foreground); err != nil {
		return opts, err
	}
	if opts.View, err = viewer.ParseView(snapView); err != nil {
		return opts, err
	}

	if snapWidth > 0 {
		opts.Width = snapWidth
	}
	if snapHeight > 0 {
		opts.Height = snapHeight
	}
	if cmd.Flags().Changed("reverse-y") {
		opts.ReverseY = snapReverseY
	}
	return opts, nil
}

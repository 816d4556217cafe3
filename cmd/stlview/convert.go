package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	convertFormat    formatValue
	convertStreaming bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert an STL file between ASCII and binary",
	Long: `Write the facets of an STL file to a new file.

The output format is taken from --format, then from the default_format setting,
and otherwise matches the input. Binary attribute bytes are kept when writing binary.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().VarP(&convertFormat, "format", "f", "Output format")
	convertCmd.Flags().BoolVar(&convertStreaming, "streaming", false, "Convert facet by facet without loading the mesh")
	convertCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"ascii", "binary"}, cobra.ShellCompDirectiveNoFileComp))
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	prefs, err := loadSettings()
	if err != nil {
		return err
	}

	s, err := loadFile(cmd, input, convertStreaming)
	if err != nil {
		return err
	}
	defer s.Close()

	format := s.Format()
	if convertFormat.set {
		format = convertFormat.format
	} else if f, ok := prefs.Format(); ok {
		format = f
	}

	if err := s.SaveAs(output, format); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d facets to %s (%s)\n", s.Stats().FacetCount, output, format)
	return nil
}

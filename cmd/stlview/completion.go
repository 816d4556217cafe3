package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell] [--no-descriptions]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for stlview.

To load completions:

Bash:

  $ source <(stlview completion bash)

  To load completions for each session, execute once:
  Linux:
    $ stlview completion bash > /etc/bash_completion.d/stlview
  macOS:
    $ stlview completion bash > /usr/local/etc/bash_completion.d/stlview

Zsh:

  If shell completion is not already enabled in your environment,
  you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  To load completions for each session, execute once:
  $ stlview completion zsh > "${fpath[1]}/_stlview"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ stlview completion fish | source

  To load completions for each session, execute once:
  $ stlview completion fish > ~/.config/fish/completions/stlview.fish

PowerShell:

  PS> stlview completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(cmd.OutOrStdout(), args[0], !completionNoDesc)
	},
}

var completionNoDesc bool

func writeCompletion(out io.Writer, shell string, desc bool) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, desc)
	case "zsh":
		if !desc {
			return rootCmd.GenZshCompletionNoDesc(out)
		}
		return rootCmd.GenZshCompletion(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, desc)
	case "powershell":
		if !desc {
			return rootCmd.GenPowerShellCompletion(out)
		}
		return rootCmd.GenPowerShellCompletionWithDesc(out)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}

// completeSTLFiles offers files ending in .stl for the first argument and
// falls back to plain file completion after that
func completeSTLFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return []string{"stl", "STL"}, cobra.ShellCompDirectiveFilterFileExt
	}
	return nil, cobra.ShellCompDirectiveDefault
}

func init() {
	completionCmd.Flags().BoolVar(&completionNoDesc, "no-descriptions", false, "disable completion descriptions")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)

	for _, c := range []*cobra.Command{infoCmd, facetsCmd, edgesCmd, measureCmd, convertCmd, snapshotCmd} {
		c.ValidArgsFunction = completeSTLFiles
	}
}

package cmd

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "impc",
	Short: "impc - compiler front end for the imp teaching language",
	Long: `impc drives the two stages of the imp compiler front end:

  lex    - scan a source file into a token listing
  parse  - parse a source file (or a token listing) into a syntax tree dump`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.CoreTracer = gologadapter.New()
		if verbose {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		} else {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose trace output")
}

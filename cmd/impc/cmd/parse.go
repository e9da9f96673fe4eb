package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/imp"
	"github.com/npillmayer/imp/ast"
	"github.com/npillmayer/imp/token"
	"github.com/spf13/cobra"
)

var (
	parseOut   string
	fromTokens bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file into a syntax tree dump",
	Long: `parse builds the syntax tree for a source file and writes an indented
tree dump. With --tokens, the input file is read as a token listing
(the output of 'impc lex') instead of source text.

The first structural error aborts the run with a non-zero status and no
output file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var toks []token.Token
		if fromTokens {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			if toks, err = token.Read(in); err != nil {
				return err
			}
		} else {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			toks = imp.Tokenize(src)
		}
		prog, err := imp.ParseTokens(toks)
		if err != nil {
			return err
		}
		out, err := os.Create(parseOut)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := ast.Print(out, prog); err != nil {
			return err
		}
		fmt.Printf("parse success, result in %s\n", parseOut)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "parse_out.txt", "tree dump output file")
	parseCmd.Flags().BoolVar(&fromTokens, "tokens", false, "input is a token listing, not source text")
	rootCmd.AddCommand(parseCmd)
}

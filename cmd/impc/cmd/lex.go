package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/imp"
	"github.com/npillmayer/imp/token"
	"github.com/spf13/cobra"
)

var lexOut string

var lexCmd = &cobra.Command{
	Use:   "lex <source-file>",
	Short: "Scan a source file into a token listing",
	Long: `lex scans a source file and writes the resulting token stream as a
line-record listing, one (kind, "lexeme", line, column) record per
token. Lexical errors do not stop the scan; they are listed as error
tokens and reported on stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		toks := imp.Tokenize(src)
		out, err := os.Create(lexOut)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := token.Write(out, toks); err != nil {
			return err
		}
		for _, t := range toks {
			if t.Kind == token.LexError {
				fmt.Fprintf(os.Stderr, "lexical error: %s: '%s' at %d:%d\n",
					t.Reason, t.Lexeme, t.Line, t.Column)
			}
		}
		fmt.Printf("lex success, result in %s\n", lexOut)
		return nil
	},
}

func init() {
	lexCmd.Flags().StringVarP(&lexOut, "out", "o", "lex_out.txt", "token listing output file")
	rootCmd.AddCommand(lexCmd)
}

package imp

import (
	"github.com/npillmayer/imp/ast"
	"github.com/npillmayer/imp/parser"
	"github.com/npillmayer/imp/scanner"
	"github.com/npillmayer/imp/token"
)

// Tokenize scans src to completion and returns the full token sequence,
// excluding the end-of-input sentinel. Lexical errors are embedded in
// the sequence as LexError tokens; Tokenize never fails.
func Tokenize(src []byte) []token.Token {
	sc := scanner.NewPooled(src)
	defer sc.Release()
	return sc.Tokens()
}

// Parse scans and parses src in one go, returning the program tree or
// the first syntax error (a *parser.SyntaxError).
func Parse(src []byte) (*ast.Program, error) {
	return parser.Parse(Tokenize(src))
}

// ParseTokens parses a previously produced token sequence, e.g. one
// reloaded through token.Read.
func ParseTokens(toks []token.Token) (*ast.Program, error) {
	return parser.Parse(toks)
}

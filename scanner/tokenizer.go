package scanner

import (
	lrscan "github.com/npillmayer/gorgo/lr/scanner"
)

// The Scanner doubles as a Tokenizer in the sense of gorgo's lr/scanner
// package, so clients may plug it into gorgo-based parsers without an
// adapter layer.

// NextToken reads the next token and returns its kind code, the token
// itself, and the byte position and length of its lexeme. The expected
// set is ignored; the language is context-free at the lexical level.
//
// Interface lr/scanner.Tokenizer
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	t := sc.Next()
	if t.IsEOF() {
		return lrscan.EOF, t, uint64(sc.tokPos), 0
	}
	return int(t.Kind), t, uint64(sc.tokPos), uint64(sc.tokLen)
}

// SetErrorHandler sets an error handler function, which receives every
// lexical error as it is emitted. Scanning continues regardless.
//
// Interface lr/scanner.Tokenizer
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}

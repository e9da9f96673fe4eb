package scanner

import (
	"fmt"
	"io"

	"github.com/npillmayer/imp/token"
)

// A Scanner holds a mutable cursor (byte offset, line, column) over an
// immutable input buffer. Each Scanner owns an independent cursor;
// instances must not be shared between concurrent callers.
type Scanner struct {
	src    []byte
	pos    int // scan cursor, byte offset into src
	line   int // 1-based line of the cursor
	col    int // 1-based column of the cursor
	tokPos int // byte offset of the most recent token
	tokLen int // byte length of the most recent token
	errh   func(error)
	pooled bool
}

// New creates a scanner over src.
func New(src []byte) *Scanner {
	sc := &Scanner{}
	sc.Init(src)
	return sc
}

// NewReader creates a scanner over the full contents of input.
func NewReader(input io.Reader) (*Scanner, error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	return New(src), nil
}

// Init re-initializes the scanner with new source, resetting the cursor
// to position 1:1. It is used by pooled scanners, but safe on any
// scanner.
func (sc *Scanner) Init(src []byte) {
	sc.src = src
	sc.pos = 0
	sc.line = 1
	sc.col = 1
	sc.tokPos = 0
	sc.tokLen = 0
	sc.errh = nil
}

// Next returns the next token from the source. At end of input it
// returns the empty-lexeme sentinel (see token.Token.IsEOF); calling
// Next again keeps returning the sentinel.
//
// Lexical errors are returned as LexError tokens and scanning resumes
// after the offending lexeme. Next never fails.
func (sc *Scanner) Next() token.Token {
	sc.skipWhitespace()
	sc.tokPos = sc.pos
	sc.tokLen = 0
	if sc.pos >= len(sc.src) {
		return token.Token{Kind: token.LexError, Line: sc.line, Column: sc.col}
	}
	line, col := sc.line, sc.col
	var t token.Token
	ch := sc.src[sc.pos]
	switch {
	case isAlpha(ch) || ch == '_':
		t = sc.scanIdentOrKeyword()
	case isDigit(ch):
		t = sc.scanNumber()
	case token.IsPunctStart(ch):
		t = sc.scanOpOrSep()
	default:
		sc.advance()
		t = token.Token{
			Kind:   token.LexError,
			Lexeme: string(ch),
			Reason: "unrecognized symbol",
		}
	}
	t.Line, t.Column = line, col
	sc.tokLen = sc.pos - sc.tokPos
	if t.Kind == token.LexError {
		T().Debugf("lexical error at %d:%d: %s '%s'", line, col, t.Reason, t.Lexeme)
		if sc.errh != nil {
			sc.errh(fmt.Errorf("%s: '%s' at %d:%d", t.Reason, t.Lexeme, line, col))
		}
	}
	return t
}

// Tokens scans the remaining input to completion and returns all tokens
// in order, excluding the end-of-input sentinel.
func (sc *Scanner) Tokens() []token.Token {
	var toks []token.Token
	for {
		t := sc.Next()
		if t.IsEOF() {
			return toks
		}
		toks = append(toks, t)
	}
}

// --- Scanning --------------------------------------------------------------

// skipWhitespace skips blanks and comments: '#' and "//" start line
// comments, "/*" starts a non-nesting block comment. An unterminated
// block comment silently ends the input.
func (sc *Scanner) skipWhitespace() {
	for sc.pos < len(sc.src) {
		ch := sc.src[sc.pos]
		switch {
		case ch == '#' || (ch == '/' && sc.peekAt(1) == '/'):
			for sc.pos < len(sc.src) && sc.src[sc.pos] != '\n' {
				sc.advance()
			}
		case ch == '/' && sc.peekAt(1) == '*':
			sc.advance()
			sc.advance()
			for sc.pos < len(sc.src) {
				if sc.src[sc.pos] == '*' && sc.peekAt(1) == '/' {
					sc.advance()
					sc.advance()
					break
				}
				sc.advance()
			}
		case isSpace(ch):
			sc.advance()
		default:
			return
		}
	}
}

func (sc *Scanner) scanIdentOrKeyword() token.Token {
	start := sc.pos
	for sc.pos < len(sc.src) && isAlnum(sc.src[sc.pos]) {
		sc.advance()
	}
	lexeme := string(sc.src[start:sc.pos])
	return token.Token{Kind: token.Lookup(lexeme), Lexeme: lexeme}
}

// scanNumber consumes a maximal numeric run. Malformed runs are fully
// consumed into a single LexError token, so that "12abc" or "1.2.3"
// never split into a number followed by further tokens.
func (sc *Scanner) scanNumber() token.Token {
	start := sc.pos
	hasDot := false
	malformed := false
	for sc.pos < len(sc.src) && isDigit(sc.src[sc.pos]) {
		sc.advance()
	}
	if sc.peek() == '.' {
		sc.advance()
		hasDot = true
		if !isDigit(sc.peek()) {
			malformed = true // missing digit after the decimal point
		}
		for sc.pos < len(sc.src) && isDigit(sc.src[sc.pos]) {
			sc.advance()
		}
		if sc.peek() == '.' { // a second decimal point
			malformed = true
			sc.advance()
			for sc.pos < len(sc.src) && isDigit(sc.src[sc.pos]) {
				sc.advance()
			}
		}
	}
	trailing := false
	if ch := sc.peek(); isAlpha(ch) || ch == '_' {
		trailing = true
		for sc.pos < len(sc.src) && isAlnum(sc.src[sc.pos]) {
			sc.advance()
		}
	}
	lexeme := string(sc.src[start:sc.pos])
	switch {
	case trailing && !hasDot:
		return token.Token{
			Kind:   token.LexError,
			Lexeme: lexeme,
			Reason: "illegal identifier (cannot start with a digit)",
		}
	case trailing || malformed:
		return token.Token{
			Kind:   token.LexError,
			Lexeme: lexeme,
			Reason: "illegal number format",
		}
	case hasDot:
		return token.Token{Kind: token.FloatLiteral, Lexeme: lexeme}
	}
	return token.Token{Kind: token.IntLiteral, Lexeme: lexeme}
}

// scanOpOrSep tries a two-character operator first, then falls back to
// the single-character operator, bitwise-operator and separator tables,
// in that order.
func (sc *Scanner) scanOpOrSep() token.Token {
	ch := sc.src[sc.pos]
	if la := sc.peekAt(1); la != 0 {
		double := string([]byte{ch, la})
		if kind, ok := token.LookupDouble(double); ok {
			sc.advance()
			sc.advance()
			return token.Token{Kind: kind, Lexeme: double}
		}
	}
	sc.advance()
	single := string(ch)
	kind, _ := token.LookupSingle(single) // caller checked IsPunctStart
	return token.Token{Kind: kind, Lexeme: single}
}

// --- Cursor ----------------------------------------------------------------

func (sc *Scanner) advance() {
	if sc.pos >= len(sc.src) {
		return
	}
	if sc.src[sc.pos] == '\n' {
		sc.line++
		sc.col = 1
	} else {
		sc.col++
	}
	sc.pos++
}

func (sc *Scanner) peek() byte {
	if sc.pos >= len(sc.src) {
		return 0
	}
	return sc.src[sc.pos]
}

func (sc *Scanner) peekAt(d int) byte {
	if sc.pos+d >= len(sc.src) {
		return 0
	}
	return sc.src[sc.pos+d]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_'
}

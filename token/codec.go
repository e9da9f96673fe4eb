package token

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The line-record format persists a token stream between the two
// compiler stages. Each token occupies one line:
//
//	(kindCode, "lexeme", line, column)
//
// with kindCode being the numeric value of Kind. The end-of-input
// sentinel is never written; reading stops at EOF of the record file.

// Write writes toks to w in line-record form. Sentinel tokens are
// skipped.
func Write(w io.Writer, toks []Token) error {
	for _, t := range toks {
		if t.IsEOF() {
			continue
		}
		_, err := fmt.Fprintf(w, "(%d, \"%s\", %d, %d)\n", int(t.Kind), t.Lexeme, t.Line, t.Column)
		if err != nil {
			return err
		}
	}
	return nil
}

// Read reconstructs a token stream from line-record form. Lines without
// a parenthesized record are skipped; a line with a recognizable record
// that cannot be decoded yields an error naming the line.
//
// The lexeme field is delimited by the first and the last double quote
// of the line; embedded whitespace is stripped from it, as the language
// has no lexeme that may legally contain any.
func Read(r io.Reader) ([]Token, error) {
	var toks []Token
	scan := bufio.NewScanner(r)
	lineno := 0
	for scan.Scan() {
		lineno++
		line := scan.Text()
		open := strings.IndexByte(line, '(')
		end := strings.LastIndexByte(line, ')')
		if open < 0 || end < open {
			continue // not a record line
		}
		tok, err := decodeRecord(line[open+1 : end])
		if err != nil {
			return nil, fmt.Errorf("token record line %d: %v", lineno, err)
		}
		toks = append(toks, tok)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

func decodeRecord(rec string) (Token, error) {
	var tok Token
	comma := strings.IndexByte(rec, ',')
	if comma < 0 {
		return tok, fmt.Errorf("missing kind delimiter")
	}
	code, err := strconv.Atoi(strings.TrimSpace(rec[:comma]))
	if err != nil || code < 0 || code > int(LexError) {
		return tok, fmt.Errorf("bad kind code '%s'", strings.TrimSpace(rec[:comma]))
	}
	tok.Kind = Kind(code)
	lq := strings.IndexByte(rec, '"')
	rq := strings.LastIndexByte(rec, '"')
	if lq < 0 || rq <= lq {
		return tok, fmt.Errorf("missing lexeme quotes")
	}
	tok.Lexeme = stripSpace(rec[lq+1 : rq])
	rest := strings.Split(rec[rq+1:], ",")
	if len(rest) != 3 { // leading empty field before the first comma
		return tok, fmt.Errorf("expected line and column fields")
	}
	if tok.Line, err = strconv.Atoi(strings.TrimSpace(rest[1])); err != nil {
		return tok, fmt.Errorf("bad line number '%s'", strings.TrimSpace(rest[1]))
	}
	if tok.Column, err = strconv.Atoi(strings.TrimSpace(rest[2])); err != nil {
		return tok, fmt.Errorf("bad column number '%s'", strings.TrimSpace(rest[2]))
	}
	return tok, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

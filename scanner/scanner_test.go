package scanner

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	lrscan "github.com/npillmayer/gorgo/lr/scanner"

	"github.com/npillmayer/imp/token"
)

func ExampleScanner() {
	sc := New([]byte("a = 1;"))
	for {
		t := sc.Next()
		if t.IsEOF() {
			break
		}
		fmt.Printf("%s '%s'\n", t.Kind, t.Lexeme)
	}
	// Output: Identifier 'a'
	// Operator '='
	// IntLiteral '1'
	// Separator ';'
}

func kindsOf(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}

func lexemesOf(toks []token.Token) []string {
	lex := make([]string, len(toks))
	for i, t := range toks {
		lex[i] = t.Lexeme
	}
	return lex
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScanSimpleStatement(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("x = y + 42;")).Tokens()
	want := []string{"x", "=", "y", "+", "42", ";"}
	if !equalStrings(lexemesOf(toks), want) {
		t.Errorf("Expected lexemes %v, have %v", want, lexemesOf(toks))
	}
	wantKinds := []token.Kind{
		token.Identifier, token.Operator, token.Identifier,
		token.Operator, token.IntLiteral, token.Separator,
	}
	for i, k := range kindsOf(toks) {
		if k != wantKinds[i] {
			t.Errorf("Expected token %d to have kind %s, is %s", i, wantKinds[i], k)
		}
	}
}

func TestScanKeywords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("int floaty if true _for")).Tokens()
	wantKinds := []token.Kind{
		token.Keyword, token.Identifier, token.Keyword,
		token.BoolLiteral, token.Identifier,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("Expected %d tokens, have %d", len(wantKinds), len(toks))
	}
	for i, k := range kindsOf(toks) {
		if k != wantKinds[i] {
			t.Errorf("Expected '%s' to have kind %s, is %s", toks[i].Lexeme, wantKinds[i], k)
		}
	}
}

func TestScanMaximalMunch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("a+=1; i++; x<<2; y<=z")).Tokens()
	want := []string{"a", "+=", "1", ";", "i", "++", ";", "x", "<<", "2", ";", "y", "<=", "z"}
	if !equalStrings(lexemesOf(toks), want) {
		t.Errorf("Expected lexemes %v, have %v", want, lexemesOf(toks))
	}
	if toks[8].Kind != token.BitwiseOperator {
		t.Errorf("Expected '<<' to be a bitwise operator, is %s", toks[8].Kind)
	}
	if toks[1].Kind != token.Operator || toks[12].Kind != token.Operator {
		t.Errorf("Expected '+=' and '<=' to be operators")
	}
}

func TestScanPositions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	src := "int a;\n  a = 1; # trailing comment\n/* block\ncomment */ b = 2;\n"
	toks := New([]byte(src)).Tokens()
	type pos struct{ line, col int }
	want := []pos{
		{1, 1}, {1, 5}, {1, 6}, // int a ;
		{2, 3}, {2, 5}, {2, 7}, {2, 8}, // a = 1 ;
		{4, 12}, {4, 14}, {4, 16}, {4, 17}, // b = 2 ;
	}
	if len(toks) != len(want) {
		t.Fatalf("Expected %d tokens, have %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Line != w.line || toks[i].Column != w.col {
			t.Errorf("Expected token '%s' at %d:%d, is at %d:%d",
				toks[i].Lexeme, w.line, w.col, toks[i].Line, toks[i].Column)
		}
	}
}

func TestScanCommentIdempotence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	plain := New([]byte("while (i < 5) { i++; }")).Tokens()
	noisy := New([]byte("while /* a */ ( i // b\n< # c\n5 ) {\n i ++ ; }")).Tokens()
	if !equalStrings(lexemesOf(plain), lexemesOf(noisy)) {
		t.Errorf("Expected identical token sequences, have %v and %v",
			lexemesOf(plain), lexemesOf(noisy))
	}
}

func TestScanIllegalIdentifier(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("12abc")).Tokens()
	if len(toks) != 1 {
		t.Fatalf("Expected a single token for '12abc', have %d", len(toks))
	}
	if toks[0].Kind != token.LexError || toks[0].Lexeme != "12abc" {
		t.Errorf("Expected one LexError '12abc', have %v", toks[0])
	}
	if toks[0].Reason != "illegal identifier (cannot start with a digit)" {
		t.Errorf("Expected illegal-identifier reason, have '%s'", toks[0].Reason)
	}
}

func TestScanIllegalNumbers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		src    string
		lexeme string
	}{
		{"1.2.3", "1.2.3"},
		{"7.", "7."},
		{"3.14x", "3.14x"},
	}
	for _, c := range cases {
		toks := New([]byte(c.src)).Tokens()
		if len(toks) != 1 {
			t.Errorf("Expected a single token for '%s', have %d", c.src, len(toks))
			continue
		}
		if toks[0].Kind != token.LexError || toks[0].Lexeme != c.lexeme {
			t.Errorf("Expected one LexError '%s', have %v", c.lexeme, toks[0])
		}
		if toks[0].Reason != "illegal number format" {
			t.Errorf("Expected illegal-number reason for '%s', have '%s'", c.src, toks[0].Reason)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("42 3.14")).Tokens()
	if toks[0].Kind != token.IntLiteral || toks[0].Lexeme != "42" {
		t.Errorf("Expected IntLiteral '42', have %v", toks[0])
	}
	if toks[1].Kind != token.FloatLiteral || toks[1].Lexeme != "3.14" {
		t.Errorf("Expected FloatLiteral '3.14', have %v", toks[1])
	}
}

func TestScanUnrecognizedSymbol(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("a @ b")).Tokens()
	want := []string{"a", "@", "b"}
	if !equalStrings(lexemesOf(toks), want) {
		t.Fatalf("Expected scanning to resume after the bad symbol, have %v", lexemesOf(toks))
	}
	if toks[1].Kind != token.LexError || toks[1].Reason != "unrecognized symbol" {
		t.Errorf("Expected LexError for '@', have %v", toks[1])
	}
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	toks := New([]byte("a = 1; /* never closed")).Tokens()
	want := []string{"a", "=", "1", ";"}
	if !equalStrings(lexemesOf(toks), want) {
		t.Errorf("Expected the comment to end the input silently, have %v", lexemesOf(toks))
	}
}

func TestTokenizerInterface(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New([]byte("x"))
	val, tok, pos, length := sc.NextToken(nil)
	if val != int(token.Identifier) {
		t.Errorf("Expected kind code %d, have %d", int(token.Identifier), val)
	}
	if tok.(token.Token).Lexeme != "x" || pos != 0 || length != 1 {
		t.Errorf("Expected token 'x' at offset 0 with length 1, have %v (%d+%d)", tok, pos, length)
	}
	val, _, _, _ = sc.NextToken(nil)
	if val != lrscan.EOF {
		t.Errorf("Expected EOF code at end of input, have %d", val)
	}
}

func TestErrorHandler(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New([]byte("1.2.3"))
	var handled error
	sc.SetErrorHandler(func(err error) { handled = err })
	sc.Tokens()
	if handled == nil {
		t.Errorf("Expected the error handler to receive the lexical error")
	}
}

func TestPooledScanner(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for i := 0; i < 3; i++ {
		sc := NewPooled([]byte("a = 1;"))
		toks := sc.Tokens()
		if len(toks) != 4 {
			t.Errorf("Expected 4 tokens from pooled scanner, have %d", len(toks))
		}
		sc.Release()
	}
}

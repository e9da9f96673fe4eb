package token

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	if k := Lookup("while"); k != Keyword {
		t.Errorf("Expected 'while' to be a keyword, is %s", k)
	}
	if k := Lookup("true"); k != BoolLiteral {
		t.Errorf("Expected 'true' to be a boolean literal, is %s", k)
	}
	if k := Lookup("whilst"); k != Identifier {
		t.Errorf("Expected 'whilst' to be an identifier, is %s", k)
	}
}

func TestLookupOperators(t *testing.T) {
	if k, ok := LookupDouble("<<"); !ok || k != BitwiseOperator {
		t.Errorf("Expected '<<' to be a bitwise operator, is %s (%v)", k, ok)
	}
	if k, ok := LookupDouble("+="); !ok || k != Operator {
		t.Errorf("Expected '+=' to be an operator, is %s (%v)", k, ok)
	}
	if _, ok := LookupDouble("=+"); ok {
		t.Errorf("Expected '=+' to match no operator")
	}
	if k, ok := LookupSingle("&"); !ok || k != Operator {
		t.Errorf("Expected '&' to classify as operator, is %s (%v)", k, ok)
	}
	if k, ok := LookupSingle("~"); !ok || k != BitwiseOperator {
		t.Errorf("Expected '~' to classify as bitwise operator, is %s (%v)", k, ok)
	}
	if k, ok := LookupSingle("{"); !ok || k != Separator {
		t.Errorf("Expected '{' to classify as separator, is %s (%v)", k, ok)
	}
}

func TestEOFSentinel(t *testing.T) {
	eof := Token{Kind: LexError, Line: 3, Column: 1}
	if !eof.IsEOF() {
		t.Errorf("Expected empty-lexeme error token to be the EOF sentinel")
	}
	lexerr := Token{Kind: LexError, Lexeme: "@", Reason: "unrecognized symbol"}
	if lexerr.IsEOF() {
		t.Errorf("Expected a real lexical error not to be the EOF sentinel")
	}
}

func TestWriteRecords(t *testing.T) {
	toks := []Token{
		{Kind: Keyword, Lexeme: "int", Line: 1, Column: 1},
		{Kind: Identifier, Lexeme: "a", Line: 1, Column: 5},
		{Kind: Separator, Lexeme: ";", Line: 1, Column: 6},
		{Kind: LexError, Line: 1, Column: 7}, // sentinel, must be skipped
	}
	var sb strings.Builder
	if err := Write(&sb, toks); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "(4, \"int\", 1, 1)\n(0, \"a\", 1, 5)\n(6, \";\", 1, 6)\n"
	if sb.String() != want {
		t.Errorf("Expected record listing\n%s, have\n%s", want, sb.String())
	}
}

func TestReadRecords(t *testing.T) {
	listing := `header line without record
(4, "int", 1, 1)
( 0 , " a " , 1 , 5 )
(6, ",", 1, 6)

(8, "12abc", 2, 1)
`
	toks, err := Read(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("Expected 4 tokens, have %d", len(toks))
	}
	if toks[1].Lexeme != "a" {
		t.Errorf("Expected whitespace-stripped lexeme 'a', have '%s'", toks[1].Lexeme)
	}
	if toks[2].Kind != Separator || toks[2].Lexeme != "," {
		t.Errorf("Expected comma separator token, have %v", toks[2])
	}
	if toks[3].Kind != LexError || toks[3].Line != 2 {
		t.Errorf("Expected error token at line 2, have %v", toks[3])
	}
}

func TestReadRejectsBadRecord(t *testing.T) {
	if _, err := Read(strings.NewReader("(99, \"x\", 1, 1)\n")); err == nil {
		t.Errorf("Expected an error for an out-of-range kind code")
	}
	if _, err := Read(strings.NewReader("(1, x, 1, 1)\n")); err == nil {
		t.Errorf("Expected an error for a record without lexeme quotes")
	}
}

func TestRoundTrip(t *testing.T) {
	toks := []Token{
		{Kind: Keyword, Lexeme: "while", Line: 2, Column: 1},
		{Kind: Separator, Lexeme: "(", Line: 2, Column: 7},
		{Kind: Identifier, Lexeme: "x", Line: 2, Column: 8},
		{Kind: Operator, Lexeme: "<=", Line: 2, Column: 10},
		{Kind: IntLiteral, Lexeme: "10", Line: 2, Column: 13},
		{Kind: Separator, Lexeme: ")", Line: 2, Column: 15},
	}
	var sb strings.Builder
	if err := Write(&sb, toks); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	back, err := Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(back) != len(toks) {
		t.Fatalf("Expected %d tokens after round trip, have %d", len(toks), len(back))
	}
	for i, tok := range back {
		if tok != toks[i] {
			t.Errorf("Expected token %d to be %v, have %v", i, toks[i], tok)
		}
	}
}

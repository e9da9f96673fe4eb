/*
Package token defines the lexical tokens of the imp language, together
with the symbol tables the scanner classifies against and a textual
line-record codec for persisting token streams between compiler stages.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package token

import "fmt"

// Kind classifies a token. The numeric values double as the kind codes
// of the line-record interchange format and therefore must not be
// reordered.
type Kind uint8

const (
	Identifier      Kind = iota // 0
	IntLiteral                  // 1
	FloatLiteral                // 2
	BoolLiteral                 // 3, true / false
	Keyword                     // 4
	Operator                    // 5
	Separator                   // 6
	BitwiseOperator             // 7
	LexError                    // 8
)

var kindNames = [...]string{
	"Identifier", "IntLiteral", "FloatLiteral", "BoolLiteral",
	"Keyword", "Operator", "Separator", "BitwiseOperator", "LexError",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Token is a classified lexical unit together with the exact source
// substring it was derived from and the 1-based position of the
// substring's first character. Tokens are immutable values: produced
// once by the scanner, consumed once by the parser.
//
// Lexical errors are tokens, too (kind LexError), with Reason holding a
// short diagnostic category. The scanner signals end of input with an
// empty-lexeme LexError token; that sentinel is a control signal, never
// a diagnostic, and clients must filter it with IsEOF before reporting
// anything.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
	Reason string // set for kind LexError only; not part of the wire format
}

// IsEOF reports whether t is the scanner's end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == LexError && t.Lexeme == ""
}

func (t Token) String() string {
	if t.IsEOF() {
		return "<EOF>"
	}
	return fmt.Sprintf("%s '%s' at %d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// --- Symbol tables ---------------------------------------------------------

// keywords maps reserved words to their token kind. The boolean
// constants are reserved, but classify as literals.
var keywords = map[string]Kind{
	"int":   Keyword,
	"float": Keyword,
	"bool":  Keyword,
	"if":    Keyword,
	"else":  Keyword,
	"while": Keyword,
	"for":   Keyword,
	"read":  Keyword,
	"write": Keyword,
	"true":  BoolLiteral,
	"false": BoolLiteral,
}

// doubleOps holds all two-character operators. The scanner tries these
// before any single-character table (maximal munch).
var doubleOps = map[string]Kind{
	"+=": Operator,
	"-=": Operator,
	"*=": Operator,
	"/=": Operator,
	"==": Operator,
	"!=": Operator,
	"<=": Operator,
	">=": Operator,
	"&&": Operator,
	"||": Operator,
	"++": Operator,
	"--": Operator,
	"<<": BitwiseOperator,
	">>": BitwiseOperator,
}

// singleOps holds single-character operators. '&' and '|' classify as
// plain operators, as the historic tables had them in both roles and
// the operator table won.
var singleOps = map[string]Kind{
	"+": Operator,
	"-": Operator,
	"*": Operator,
	"/": Operator,
	"=": Operator,
	"<": Operator,
	">": Operator,
	"!": Operator,
	"&": Operator,
	"|": Operator,
	"~": BitwiseOperator,
	"^": BitwiseOperator,
}

var separators = map[string]Kind{
	";": Separator,
	",": Separator,
	"(": Separator,
	")": Separator,
	"{": Separator,
	"}": Separator,
	"[": Separator,
	"]": Separator,
	":": Separator,
}

// Lookup classifies an identifier-shaped lexeme as a keyword, a boolean
// literal or a plain identifier.
func Lookup(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Identifier
}

// LookupDouble classifies a two-character operator candidate. ok is
// false if no such operator exists.
func LookupDouble(op string) (Kind, bool) {
	k, ok := doubleOps[op]
	return k, ok
}

// LookupSingle classifies a single punctuation character, trying the
// operator, bitwise-operator and separator tables in that order. ok is
// false if the character matches none of them.
func LookupSingle(ch string) (Kind, bool) {
	if k, ok := singleOps[ch]; ok {
		return k, ok
	}
	k, ok := separators[ch]
	return k, ok
}

// IsPunctStart reports whether ch can start an operator or separator
// token.
func IsPunctStart(ch byte) bool {
	_, ok := LookupSingle(string(ch))
	return ok
}

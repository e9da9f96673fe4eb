/*
Package imp is a compiler front end for a small imperative teaching
language: typed declarations (int, float, bool), assignment including
compound and increment/decrement forms, if/else, while, for, read,
write, and arithmetic, boolean and bitwise expressions.

The front end consists of two components with data flowing strictly
left to right:

A scanner (package scanner) converts raw source characters into an
ordered, finite sequence of tokens, each carrying its classified kind,
its exact lexeme and its source position. Lexical errors do not stop
the scanner; they travel as error tokens embedded in the stream.

A parser (package parser) consumes the token sequence exactly once,
with one token of lookahead, and builds an abstract syntax tree
(package ast). Statements and declarations are parsed by recursive
descent; expressions go through a two-stack operator-precedence engine.
The first structural mismatch aborts the parse with a typed error.

Between the two stages, token streams may be persisted in a textual
line-record format (package token), one record per token.

The root package provides the end-to-end conveniences; they are all a
typical client needs:

  prog, err := imp.Parse([]byte(src))
  if err != nil {
      … // first syntax error, with position
  }
  fmt.Print(ast.Dump(prog))

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
package imp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

/*
Package ast declares the syntax-tree node types of the imp language.

The tree is a strict ownership tree: every node owns its children
exclusively, there is no sharing and there are no back-references.
Node arity is enforced by struct shape rather than by runtime checks;
a node kind that admits an absent part (the else branch of an If, the
three clauses of a For) models absence as a nil field.

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
package ast

// Node is implemented by every syntax-tree node type.
type Node interface {
	node()
}

// --- Program structure -----------------------------------------------------

// Program is the root of a parsed compilation unit:
// all declarations first, then all statements.
type Program struct {
	Decls *DeclList
	Stmts *StmtList
}

// DeclList holds the declaration section of a program.
type DeclList struct {
	Groups []*DeclGroup
}

// DeclGroup is one declaration statement: a type tag followed by one or
// more declared names, each with an optional initializer. A group may
// be empty ("int;").
type DeclGroup struct {
	Type  *TypeTag
	Items []DeclItem
}

// DeclItem is a single declared name within a DeclGroup. Init is nil
// when the name carries no initializer.
type DeclItem struct {
	Name *Ident
	Init Node
}

// StmtList holds a sequence of statements in source order.
type StmtList struct {
	List []Node
}

// --- Statements ------------------------------------------------------------

// Assign is an assignment statement. Op is one of "=", "+=", "-=",
// "*=", "/=", "++" or "--". For the postfix increment/decrement forms
// Value is nil; every other form has exactly a target and a value.
type Assign struct {
	Op     string
	Target *Ident
	Value  Node
}

// If is a conditional with a mandatory brace-delimited then branch and
// an optional else branch (nil when absent).
type If struct {
	Cond Node
	Then *Block
	Else *Block
}

// While is a loop with a condition and a body; the body is either a
// Block or a single statement node.
type While struct {
	Cond Node
	Body Node
}

// For is a three-clause loop. Any of Init, Cond and Update may be nil,
// denoting an explicitly absent clause. Body is always a Block.
type For struct {
	Init   Node
	Cond   Node
	Update Node
	Body   Node
}

// Read is an input statement naming one or more target identifiers.
type Read struct {
	Names []*Ident
}

// Write is an output statement naming one or more identifiers.
type Write struct {
	Names []*Ident
}

// Block is a brace-delimited statement sequence.
type Block struct {
	List []Node
}

// Empty is the no-op statement produced by a bare semicolon.
type Empty struct{}

// --- Expressions -----------------------------------------------------------

// Expr wraps the root of an expression produced by the
// operator-precedence engine.
type Expr struct {
	X Node
}

// Compare is a two-operand comparison produced by the
// boolean-expression entry point. Op is one of the relational or
// equality operators.
type Compare struct {
	Op    string
	Left  Node
	Right Node
}

// Binary is a two-operand operator application, ordered (left, right).
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

// Unary is a one-operand operator application. Op is "!", "~", "++",
// "--" or "neg", the internal label for unary minus.
type Unary struct {
	Op string
	X  Node
}

// Ident is an identifier leaf.
type Ident struct {
	Name string
}

// IntLit is an integer literal leaf; Text is the exact lexeme.
type IntLit struct {
	Text string
}

// FloatLit is a floating-point literal leaf; Text is the exact lexeme.
type FloatLit struct {
	Text string
}

// BoolLit is a boolean literal leaf, "true" or "false".
type BoolLit struct {
	Text string
}

// TypeTag names the declared type of a DeclGroup.
type TypeTag struct {
	Name string
}

func (*Program) node()   {}
func (*DeclList) node()  {}
func (*DeclGroup) node() {}
func (*StmtList) node()  {}
func (*Assign) node()    {}
func (*If) node()        {}
func (*While) node()     {}
func (*For) node()       {}
func (*Read) node()      {}
func (*Write) node()     {}
func (*Block) node()     {}
func (*Empty) node()     {}
func (*Expr) node()      {}
func (*Compare) node()   {}
func (*Binary) node()    {}
func (*Unary) node()     {}
func (*Ident) node()     {}
func (*IntLit) node()    {}
func (*FloatLit) node()  {}
func (*BoolLit) node()   {}
func (*TypeTag) node()   {}

package parser

import (
	"fmt"

	"github.com/npillmayer/imp/ast"
	"github.com/npillmayer/imp/token"
)

// A SyntaxError is the fatal outcome of a parse: the first structural
// mismatch encountered, with the offending lexeme and its position.
type SyntaxError struct {
	Msg    string // what the parser expected, or what went wrong
	Found  string // the offending lexeme, or "end of input"
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %s, found %s", e.Msg, e.Found)
	}
	return fmt.Sprintf("syntax error: %s, found %s at %d:%d", e.Msg, e.Found, e.Line, e.Column)
}

// A Parser holds a mutable index over an immutable token sequence.
// Each parse call owns an independent cursor and produces an
// independent tree; parsers must not be shared between concurrent
// callers.
type Parser struct {
	toks []token.Token
	pos  int
}

// New creates a parser over a token sequence. An embedded end-of-input
// sentinel, if present, terminates the sequence early.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse is a convenience wrapper: parse toks into a program tree.
func Parse(toks []token.Token) (*ast.Program, error) {
	return New(toks).Parse()
}

// Parse consumes the whole token sequence and returns the program tree,
// or nil and a *SyntaxError describing the first structural mismatch.
// The grammar is
//
//	program := declaration* statement*
//
// No partial tree is returned on error.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			T().Errorf(serr.Error())
			prog, err = nil, serr
		}
	}()
	decls := p.parseDecls()
	stmts := p.parseStmts()
	return &ast.Program{Decls: decls, Stmts: stmts}, nil
}

// --- Declarations ----------------------------------------------------------

func (p *Parser) parseDecls() *ast.DeclList {
	decls := &ast.DeclList{}
	for p.checkType() {
		decls.Groups = append(decls.Groups, p.parseDeclGroup())
	}
	return decls
}

func (p *Parser) checkType() bool {
	return p.check(token.Keyword, "int") || p.check(token.Keyword, "float") ||
		p.check(token.Keyword, "bool")
}

// parseDeclGroup parses one declaration statement,
//
//	<type> ( <id> [ "=" expr ] ) ( "," <id> [ "=" expr ] )* ";"
//
// including its terminating semicolon. A bool declarator's initializer
// goes through the boolean-expression entry point; no type checking
// happens here, only structure. The degenerate "int;" is allowed.
func (p *Parser) parseDeclGroup() *ast.DeclGroup {
	typ := p.advance().Lexeme
	group := &ast.DeclGroup{Type: &ast.TypeTag{Name: typ}}
	if p.match(token.Separator, ";") { // empty declaration
		return group
	}
	for {
		id := p.expectKind(token.Identifier, "expected variable name in declaration")
		item := ast.DeclItem{Name: &ast.Ident{Name: id.Lexeme}}
		if p.match(token.Operator, "=") {
			if typ == "bool" {
				item.Init = p.parseBoolExpr()
			} else {
				item.Init = p.parseArithExpr()
			}
		}
		group.Items = append(group.Items, item)
		if !p.match(token.Separator, ",") {
			break
		}
	}
	p.expect(token.Separator, ";", "expected ';' after declaration")
	return group
}

// --- Statements ------------------------------------------------------------

func (p *Parser) parseStmts() *ast.StmtList {
	stmts := &ast.StmtList{}
	for !p.atEnd() {
		stmts.List = append(stmts.List, p.parseStmt())
	}
	return stmts
}

func (p *Parser) parseStmt() ast.Node {
	t := p.peek()
	switch {
	case p.check(token.Separator, "{"):
		return p.parseBlock()
	case p.check(token.Keyword, "if"):
		return p.parseIf()
	case p.check(token.Keyword, "while"):
		return p.parseWhile()
	case p.check(token.Keyword, "for"):
		return p.parseFor()
	case p.check(token.Keyword, "read"):
		return p.parseRead()
	case p.check(token.Keyword, "write"):
		return p.parseWrite()
	case t.Kind == token.Identifier:
		return p.parseAssign(false)
	case p.match(token.Separator, ";"):
		return &ast.Empty{}
	}
	p.fail("expected statement")
	return nil
}

// parseAssign parses an assignment statement. The postfix forms "++"
// and "--" take no right-hand side; plain "=" disambiguates its
// right-hand side with a one-token heuristic (boolean literal, '!',
// identifier or '(' select the boolean entry point), compound operators
// always parse arithmetic. With inFor set, the terminating ';' is left
// for the caller, which owns that separator inside a for clause.
func (p *Parser) parseAssign(inFor bool) *ast.Assign {
	id := p.expectKind(token.Identifier, "expected identifier in assignment")
	node := &ast.Assign{Target: &ast.Ident{Name: id.Lexeme}}
	t := p.peek()
	if t.Kind == token.Operator && (t.Lexeme == "++" || t.Lexeme == "--") {
		p.advance()
		node.Op = t.Lexeme
		if !inFor {
			p.expect(token.Separator, ";", "expected ';' after assignment")
		}
		return node
	}
	if t.Kind != token.Operator || !isAssignOp(t.Lexeme) {
		p.fail("expected assignment operator")
	}
	p.advance()
	node.Op = t.Lexeme
	if t.Lexeme == "=" && p.looksBoolean() {
		node.Value = p.parseBoolExpr()
	} else {
		node.Value = p.parseArithExpr()
	}
	if !inFor {
		p.expect(token.Separator, ";", "expected ';' after assignment")
	}
	return node
}

func isAssignOp(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "/=":
		return true
	}
	return false
}

// looksBoolean is a heuristic, not type inference.
func (p *Parser) looksBoolean() bool {
	t := p.peek()
	return t.Kind == token.BoolLiteral || t.Kind == token.Identifier ||
		(t.Kind == token.Operator && t.Lexeme == "!") ||
		(t.Kind == token.Separator && t.Lexeme == "(")
}

func (p *Parser) parseIf() *ast.If {
	T().Debugf("parsing if statement at %v", p.peek())
	p.expect(token.Keyword, "if", "expected 'if'")
	p.expect(token.Separator, "(", "expected '(' after 'if'")
	node := &ast.If{Cond: p.parseBoolExpr()}
	p.expect(token.Separator, ")", "expected ')' after condition")
	node.Then = p.parseBlock()
	if p.match(token.Keyword, "else") {
		node.Else = p.parseBlock()
	}
	return node
}

func (p *Parser) parseWhile() *ast.While {
	p.expect(token.Keyword, "while", "expected 'while'")
	p.expect(token.Separator, "(", "expected '(' after 'while'")
	node := &ast.While{Cond: p.parseBoolExpr()}
	p.expect(token.Separator, ")", "expected ')' after condition")
	if p.check(token.Separator, "{") {
		node.Body = p.parseBlock()
	} else {
		node.Body = p.parseStmt()
	}
	return node
}

// parseFor parses a three-clause loop. Any clause may be absent; an
// absent clause stays a nil child, never an empty expression node. A
// declaration initializer consumes its own ';', an assignment
// initializer leaves it to the for construct.
func (p *Parser) parseFor() *ast.For {
	T().Debugf("parsing for statement at %v", p.peek())
	p.expect(token.Keyword, "for", "expected 'for'")
	p.expect(token.Separator, "(", "expected '(' after 'for'")
	node := &ast.For{}
	if p.check(token.Separator, ";") {
		p.advance()
	} else if p.checkType() {
		node.Init = p.parseDeclGroup()
	} else {
		node.Init = p.parseAssign(true)
		p.expect(token.Separator, ";", "expected ';' after for initializer")
	}
	if !p.check(token.Separator, ";") {
		node.Cond = p.parseBoolExpr()
	}
	p.expect(token.Separator, ";", "expected ';' after for condition")
	if !p.check(token.Separator, ")") {
		node.Update = p.parseAssign(true)
	}
	p.expect(token.Separator, ")", "expected ')' after for update")
	if p.check(token.Separator, "{") {
		node.Body = p.parseBlock()
	} else {
		node.Body = &ast.Block{List: []ast.Node{p.parseStmt()}}
	}
	return node
}

func (p *Parser) parseRead() *ast.Read {
	p.expect(token.Keyword, "read", "expected 'read'")
	p.expect(token.Separator, "(", "expected '(' after 'read'")
	node := &ast.Read{}
	for {
		id := p.expectKind(token.Identifier, "expected variable name in read statement")
		node.Names = append(node.Names, &ast.Ident{Name: id.Lexeme})
		if !p.match(token.Separator, ",") {
			break
		}
	}
	p.expect(token.Separator, ")", "expected ')' after read arguments")
	p.expect(token.Separator, ";", "expected ';' after read statement")
	return node
}

// parseWrite accepts the parenthesized identifier list as well as the
// parenthesis-free single-identifier short form "write x;".
func (p *Parser) parseWrite() *ast.Write {
	p.expect(token.Keyword, "write", "expected 'write'")
	node := &ast.Write{}
	if p.match(token.Separator, "(") {
		for {
			id := p.expectKind(token.Identifier, "expected variable name in write statement")
			node.Names = append(node.Names, &ast.Ident{Name: id.Lexeme})
			if !p.match(token.Separator, ",") {
				break
			}
		}
		p.expect(token.Separator, ")", "expected ')' after write arguments")
	} else {
		id := p.expectKind(token.Identifier, "expected variable name in write statement")
		node.Names = append(node.Names, &ast.Ident{Name: id.Lexeme})
	}
	p.expect(token.Separator, ";", "expected ';' after write statement")
	return node
}

func (p *Parser) parseBlock() *ast.Block {
	p.expect(token.Separator, "{", "expected '{' to start block")
	node := &ast.Block{}
	for !p.atEnd() && !p.check(token.Separator, "}") {
		node.List = append(node.List, p.parseStmt())
	}
	p.expect(token.Separator, "}", "expected '}' to end block")
	return node
}

// --- Token cursor ----------------------------------------------------------

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.toks) || p.toks[p.pos].IsEOF()
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.LexError}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind, lexeme string) bool {
	if p.atEnd() {
		return false
	}
	t := p.toks[p.pos]
	return t.Kind == k && t.Lexeme == lexeme
}

func (p *Parser) match(k token.Kind, lexeme string) bool {
	if p.check(k, lexeme) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, lexeme string, msg string) token.Token {
	if !p.check(k, lexeme) {
		p.fail(msg)
	}
	return p.advance()
}

func (p *Parser) expectKind(k token.Kind, msg string) token.Token {
	if p.atEnd() || p.toks[p.pos].Kind != k {
		p.fail(msg)
	}
	return p.advance()
}

// fail aborts the parse by panicking with a *SyntaxError; Parse
// recovers it. The end-of-input sentinel is a control signal and never
// shows up as an offending lexeme.
func (p *Parser) fail(msg string) {
	serr := &SyntaxError{Msg: msg}
	if p.atEnd() {
		serr.Found = "end of input"
		if len(p.toks) > 0 {
			last := p.toks[len(p.toks)-1]
			serr.Line, serr.Column = last.Line, last.Column
		}
	} else {
		t := p.toks[p.pos]
		serr.Found = "'" + t.Lexeme + "'"
		serr.Line, serr.Column = t.Line, t.Column
	}
	panic(serr)
}

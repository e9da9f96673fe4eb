package parser

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/imp/ast"
	"github.com/npillmayer/imp/token"
)

// The expression engine is a classical shunting-yard reduction over two
// explicit stacks, one holding operand nodes, one holding pending
// operator symbols. Parentheses live on the operator stack as
// sentinels; they have no precedence-table entry.

// precedence levels, low to high, all left-associative. The spacing
// leaves room for the bitwise operators between the boolean connectives
// and the comparisons, and for the shifts between comparisons and the
// additive level.
var precedence = map[string]int{
	"||": 10,
	"&&": 20,
	"|":  22, "^": 24, "&": 26,
	"==": 30, "!=": 30, "<": 30, "<=": 30, ">": 30, ">=": 30,
	"<<": 35, ">>": 35,
	"+": 40, "-": 40,
	"*": 50, "/": 50,
	"!": 60, "++": 60, "--": 60, "neg": 60, "~": 60,
}

func isUnaryOp(op string) bool {
	switch op {
	case "!", "++", "--", "neg", "~":
		return true
	}
	return false
}

func isRelOp(op string) bool {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return true
	}
	return false
}

// parseBoolExpr is the boolean-expression entry point: parse through
// the arithmetic engine first; should the engine have stopped in front
// of a relational or equality operator, consume it and a second
// arithmetic expression and build a comparison node. Otherwise the
// arithmetic result is returned unchanged, which covers bare boolean
// variables and literals used as conditions.
func (p *Parser) parseBoolExpr() ast.Node {
	left := p.parseArithExpr()
	t := p.peek()
	if t.Kind == token.Operator && isRelOp(t.Lexeme) {
		p.advance()
		right := p.parseArithExpr()
		return &ast.Compare{Op: t.Lexeme, Left: left, Right: right}
	}
	return left
}

// parseArithExpr parses one expression by operator-precedence
// reduction. The engine stops, without consuming, at a statement
// terminator (';' or ','), an opening brace, any keyword, or a closing
// parenthesis it has no matching opening parenthesis for (the caller
// owns that one). Exactly one operand must survive the final drain; the
// result is wrapped in an Expr node.
func (p *Parser) parseArithExpr() ast.Node {
	operands := arraystack.New() // of ast.Node
	ops := arraystack.New()      // of string
	parens := 0

	reduce := func() {
		v, ok := ops.Pop()
		if !ok {
			p.fail("missing operator in expression")
		}
		op := v.(string)
		if isUnaryOp(op) {
			x, ok := operands.Pop()
			if !ok {
				p.fail("missing operand for unary operator '" + op + "'")
			}
			operands.Push(&ast.Unary{Op: op, X: x.(ast.Node)})
			return
		}
		right, okr := operands.Pop()
		left, okl := operands.Pop()
		if !okr || !okl {
			p.fail("missing operands for binary operator '" + op + "'")
		}
		operands.Push(&ast.Binary{Op: op, Left: left.(ast.Node), Right: right.(ast.Node)})
	}

	for !p.exprBoundary(parens) {
		t := p.peek()
		switch {
		case t.Kind == token.Separator && t.Lexeme == "(":
			p.advance()
			ops.Push("(")
			parens++
		case t.Kind == token.Separator && t.Lexeme == ")":
			p.advance()
			for {
				top, ok := ops.Peek()
				if !ok {
					p.fail("unmatched parentheses in expression")
				}
				if top.(string) == "(" {
					ops.Pop()
					break
				}
				reduce()
			}
			parens--
		case t.Kind == token.Operator || t.Kind == token.BitwiseOperator:
			p.advance()
			op := t.Lexeme
			// no left operand available: '-' is unary negation
			if op == "-" && (operands.Empty() || topIsParen(ops)) {
				op = "neg"
			}
			for {
				top, ok := ops.Peek()
				if !ok || top.(string) == "(" || precedence[top.(string)] < precedence[op] {
					break
				}
				reduce()
			}
			ops.Push(op)
		case t.Kind == token.Identifier:
			p.advance()
			operands.Push(&ast.Ident{Name: t.Lexeme})
		case t.Kind == token.IntLiteral:
			p.advance()
			operands.Push(&ast.IntLit{Text: t.Lexeme})
		case t.Kind == token.FloatLiteral:
			p.advance()
			operands.Push(&ast.FloatLit{Text: t.Lexeme})
		case t.Kind == token.BoolLiteral:
			p.advance()
			operands.Push(&ast.BoolLit{Text: t.Lexeme})
		default:
			p.fail("expected operand in expression")
		}
	}
	for !ops.Empty() {
		if topIsParen(ops) {
			p.fail("unmatched parentheses in expression")
		}
		reduce()
	}
	if operands.Empty() {
		p.fail("empty expression")
	}
	if operands.Size() > 1 {
		p.fail("malformed expression")
	}
	x, _ := operands.Pop()
	return &ast.Expr{X: x.(ast.Node)}
}

// exprBoundary reports whether the expression engine must stop in front
// of the current token.
func (p *Parser) exprBoundary(parens int) bool {
	if p.atEnd() {
		return true
	}
	t := p.toks[p.pos]
	if t.Kind == token.Keyword {
		return true
	}
	if t.Kind != token.Separator {
		return false
	}
	switch t.Lexeme {
	case ";", ",", "{":
		return true
	case ")":
		return parens == 0
	}
	return false
}

func topIsParen(ops *arraystack.Stack) bool {
	top, ok := ops.Peek()
	return ok && top.(string) == "("
}

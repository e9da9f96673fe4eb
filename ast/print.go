package ast

import (
	"io"
	"strings"
)

// Print writes an indented textual dump of the tree rooted at n to w:
// one line per node, two spaces of indent per depth level, a [KIND] tag
// optionally followed by the node's literal value. Nil children are
// skipped. The dump is diagnostic output, not an interchange format.
func Print(w io.Writer, n Node) error {
	p := printer{w: w}
	p.print(n, 0)
	return p.err
}

// Dump returns the Print output as a string.
func Dump(n Node) string {
	var sb strings.Builder
	Print(&sb, n)
	return sb.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, tag, value string) {
	if p.err != nil {
		return
	}
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteByte('[')
	sb.WriteString(tag)
	sb.WriteByte(']')
	if value != "" {
		sb.WriteByte(' ')
		sb.WriteString(value)
	}
	sb.WriteByte('\n')
	_, p.err = io.WriteString(p.w, sb.String())
}

func (p *printer) print(n Node, depth int) {
	if n == nil || p.err != nil {
		return
	}
	switch n := n.(type) {
	case *Program:
		p.line(depth, "BLOCK", "")
		p.print(n.Decls, depth+1)
		p.print(n.Stmts, depth+1)
	case *DeclList:
		p.line(depth, "DECLS", "")
		for _, g := range n.Groups {
			p.print(g, depth+1)
		}
	case *DeclGroup:
		p.line(depth, "LIST", "")
		p.print(n.Type, depth+1)
		for _, item := range n.Items {
			p.print(item.Name, depth+1)
			p.print(item.Init, depth+1)
		}
	case *StmtList:
		p.line(depth, "STMTS", "")
		for _, s := range n.List {
			p.print(s, depth+1)
		}
	case *Assign:
		p.line(depth, "ASSIGN", n.Op)
		p.print(n.Target, depth+1)
		p.print(n.Value, depth+1)
	case *If:
		p.line(depth, "IF", "")
		p.print(n.Cond, depth+1)
		p.print(n.Then, depth+1)
		if n.Else != nil {
			p.print(n.Else, depth+1)
		}
	case *While:
		p.line(depth, "WHILE", "")
		p.print(n.Cond, depth+1)
		p.print(n.Body, depth+1)
	case *For:
		p.line(depth, "FOR", "")
		p.print(n.Init, depth+1)
		p.print(n.Cond, depth+1)
		p.print(n.Update, depth+1)
		p.print(n.Body, depth+1)
	case *Read:
		p.line(depth, "READ", "")
		for _, id := range n.Names {
			p.print(id, depth+1)
		}
	case *Write:
		p.line(depth, "WRITE", "")
		for _, id := range n.Names {
			p.print(id, depth+1)
		}
	case *Block:
		p.line(depth, "BLOCK", "")
		for _, s := range n.List {
			p.print(s, depth+1)
		}
	case *Empty:
		p.line(depth, "STMTS", "empty_stmt")
	case *Expr:
		p.line(depth, "EXPR", "")
		p.print(n.X, depth+1)
	case *Compare:
		p.line(depth, "BOOL", n.Op)
		p.print(n.Left, depth+1)
		p.print(n.Right, depth+1)
	case *Binary:
		p.line(depth, "OP", n.Op)
		p.print(n.Left, depth+1)
		p.print(n.Right, depth+1)
	case *Unary:
		p.line(depth, "OP", n.Op)
		p.print(n.X, depth+1)
	case *Ident:
		p.line(depth, "ID", n.Name)
	case *IntLit:
		p.line(depth, "NUM", n.Text)
	case *FloatLit:
		p.line(depth, "FLOAT", n.Text)
	case *BoolLit:
		p.line(depth, "BOOLVAL", n.Text)
	case *TypeTag:
		p.line(depth, "TYPE", n.Name)
	}
}

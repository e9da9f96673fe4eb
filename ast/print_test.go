package ast

import (
	"testing"
)

func TestDumpShape(t *testing.T) {
	tree := &Program{
		Decls: &DeclList{Groups: []*DeclGroup{
			{Type: &TypeTag{Name: "int"}, Items: []DeclItem{
				{Name: &Ident{Name: "a"}},
			}},
		}},
		Stmts: &StmtList{List: []Node{
			&Assign{Op: "=", Target: &Ident{Name: "a"},
				Value: &Expr{X: &Binary{Op: "+",
					Left:  &IntLit{Text: "1"},
					Right: &IntLit{Text: "2"},
				}}},
		}},
	}
	want := `[BLOCK]
  [DECLS]
    [LIST]
      [TYPE] int
      [ID] a
  [STMTS]
    [ASSIGN] =
      [ID] a
      [EXPR]
        [OP] +
          [NUM] 1
          [NUM] 2
`
	if d := Dump(tree); d != want {
		t.Errorf("Expected dump\n%s, have\n%s", want, d)
	}
}

func TestDumpSkipsNilChildren(t *testing.T) {
	loop := &For{Body: &Block{}}
	want := `[FOR]
  [BLOCK]
`
	if d := Dump(loop); d != want {
		t.Errorf("Expected nil clauses to leave no lines, have\n%s", d)
	}
}

func TestDumpIncrementHasNoValueChild(t *testing.T) {
	incr := &Assign{Op: "++", Target: &Ident{Name: "i"}}
	want := `[ASSIGN] ++
  [ID] i
`
	if d := Dump(incr); d != want {
		t.Errorf("Expected increment dump\n%s, have\n%s", want, d)
	}
}

func TestDumpEmptyStatement(t *testing.T) {
	if d := Dump(&Empty{}); d != "[STMTS] empty_stmt\n" {
		t.Errorf("Expected the empty statement marker, have\n%s", d)
	}
}

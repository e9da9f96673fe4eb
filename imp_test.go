package imp_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/npillmayer/imp"
	"github.com/npillmayer/imp/ast"
	"github.com/npillmayer/imp/token"
)

func ExampleParse() {
	prog, err := imp.Parse([]byte("int a; a = 1 + 2;"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(ast.Dump(prog))
	// Output:
	// [BLOCK]
	//   [DECLS]
	//     [LIST]
	//       [TYPE] int
	//       [ID] a
	//   [STMTS]
	//     [ASSIGN] =
	//       [ID] a
	//       [EXPR]
	//         [OP] +
	//           [NUM] 1
	//           [NUM] 2
}

func TestTokenizeEmbedsErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	toks := imp.Tokenize([]byte("a = 12abc;"))
	var errs int
	for _, tok := range toks {
		if tok.Kind == token.LexError {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("Expected one embedded error token, have %d", errs)
	}
}

func TestParseReportsPosition(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	_, err := imp.Parse([]byte("int a\na = 1;"))
	if err == nil {
		t.Fatalf("Expected the missing ';' to fail the parse")
	}
	if !strings.Contains(err.Error(), "at 2:1") {
		t.Errorf("Expected the error to point at 2:1, have '%s'", err.Error())
	}
}

func TestTokenListingRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	src := []byte("int a; a = 1;")
	var sb strings.Builder
	if err := token.Write(&sb, imp.Tokenize(src)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	toks, err := token.Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	direct, _ := imp.Parse(src)
	reloaded, err := imp.ParseTokens(toks)
	if err != nil {
		t.Fatalf("ParseTokens failed: %v", err)
	}
	if ast.Dump(direct) != ast.Dump(reloaded) {
		t.Errorf("Expected identical trees from source and reloaded tokens")
	}
}

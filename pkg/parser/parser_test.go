package parser

import (
	"testing"

	"github.com/conneroisu/cash/internal/ast"
	"github.com/conneroisu/cash/pkg/lexer"
)

func parseProgram(t *testing.T, input string) []ast.Expr {
	t.Helper()
	p := New(lexer.New(input))
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	block, ok := prog.(*ast.Block)
	if !ok {
		t.Fatalf("Parse() did not return *ast.Block, got %T", prog)
	}
	return block.Stmts
}

func firstStmt(t *testing.T, input string) ast.Expr {
	t.Helper()
	stmts := parseProgram(t, input)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	return stmts[0]
}

func TestParseAssignment(t *testing.T) {
	stmt := firstStmt(t, "x = 5;")
	asn, ok := stmt.(*ast.Assignment)
	if !ok {
		t.Fatalf("stmt not *ast.Assignment, got %T", stmt)
	}
	if asn.Name != "x" || asn.Op != "" {
		t.Fatalf("unexpected assignment: %+v", asn)
	}
	lit, ok := asn.Value.(*ast.IntLit)
	if !ok || lit.Value != 5 {
		t.Fatalf("expected IntLit(5), got %#v", asn.Value)
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	stmt := firstStmt(t, "x += 5;")
	asn, ok := stmt.(*ast.Assignment)
	if !ok {
		t.Fatalf("stmt not *ast.Assignment, got %T", stmt)
	}
	if asn.Op != ast.OpAdd {
		t.Fatalf("expected OpAdd, got %v", asn.Op)
	}
}

func TestParseIndexedAssignment(t *testing.T) {
	stmt := firstStmt(t, "a[0][1] = 9;")
	asn, ok := stmt.(*ast.Assignment)
	if !ok {
		t.Fatalf("stmt not *ast.Assignment, got %T", stmt)
	}
	if asn.Name != "a" || len(asn.IndexPath) != 2 {
		t.Fatalf("unexpected assignment: %+v", asn)
	}
}

func TestParseExpressionStatement(t *testing.T) {
	stmt := firstStmt(t, "1 + 2 * 3;")
	expr, ok := stmt.(*ast.Expression)
	if !ok {
		t.Fatalf("stmt not *ast.Expression, got %T", stmt)
	}
	if len(expr.Primaries) != 3 || len(expr.Infixes) != 2 {
		t.Fatalf("unexpected flat expression shape: %+v", expr)
	}
	if expr.Infixes[0] != ast.OpAdd || expr.Infixes[1] != ast.OpMul {
		t.Fatalf("unexpected infix ops: %+v", expr.Infixes)
	}
}

func TestParseCall(t *testing.T) {
	stmt := firstStmt(t, "print(1, 2);")
	expr, ok := stmt.(*ast.Expression)
	if !ok || len(expr.Primaries) != 1 {
		t.Fatalf("stmt not a single-primary expression, got %#v", stmt)
	}
	prim := expr.Primaries[0]
	if len(prim.Postfixes) != 1 {
		t.Fatalf("expected one call postfix, got %d", len(prim.Postfixes))
	}
	call, ok := prim.Postfixes[0].(*ast.CallPostfix)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected CallPostfix with 2 args, got %#v", prim.Postfixes[0])
	}
}

func TestParseDotFieldAccess(t *testing.T) {
	stmt := firstStmt(t, "d.key;")
	expr := stmt.(*ast.Expression)
	prim := expr.Primaries[0]
	idx, ok := prim.Postfixes[0].(*ast.IndexPostfix)
	if !ok {
		t.Fatalf("expected IndexPostfix, got %#v", prim.Postfixes[0])
	}
	lit, ok := idx.Key.(*ast.StringLit)
	if !ok || len(lit.Parts) != 1 || lit.Parts[0].Literal != "key" {
		t.Fatalf("expected dot access to desugar to \"key\", got %#v", idx.Key)
	}
}

func TestParseIfElse(t *testing.T) {
	stmt := firstStmt(t, `if x > y { x } else { y };`)
	cond, ok := stmt.(*ast.Conditional)
	if !ok {
		t.Fatalf("stmt not *ast.Conditional, got %T", stmt)
	}
	if len(cond.Arms) != 1 || cond.Else == nil {
		t.Fatalf("unexpected conditional shape: %+v", cond)
	}
}

func TestParseIfElseIfChain(t *testing.T) {
	stmt := firstStmt(t, `if a { 1 } else if b { 2 } else { 3 };`)
	cond := stmt.(*ast.Conditional)
	if len(cond.Arms) != 2 || cond.Else == nil {
		t.Fatalf("unexpected conditional shape: %+v", cond)
	}
}

func TestParseWhile(t *testing.T) {
	stmt := firstStmt(t, `while i < 10 { i = i + 1; };`)
	w, ok := stmt.(*ast.While)
	if !ok {
		t.Fatalf("stmt not *ast.While, got %T", stmt)
	}
	body, ok := w.Body.(*ast.Block)
	if !ok || len(body.Stmts) != 1 {
		t.Fatalf("unexpected while body: %#v", w.Body)
	}
}

func TestParseFor(t *testing.T) {
	stmt := firstStmt(t, `for x in 0..5 { print(x); };`)
	f, ok := stmt.(*ast.For)
	if !ok {
		t.Fatalf("stmt not *ast.For, got %T", stmt)
	}
	if f.Var != "x" {
		t.Fatalf("expected var x, got %q", f.Var)
	}
}

func TestParseFunctionLiteral(t *testing.T) {
	stmt := firstStmt(t, `add = fn(a, b = 1) { return a + b; };`)
	asn := stmt.(*ast.Assignment)
	fn, ok := asn.Value.(*ast.FunctionLit)
	if !ok {
		t.Fatalf("expected FunctionLit, got %T", asn.Value)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
	if fn.Params[1].Default == nil {
		t.Fatalf("expected default for b")
	}
}

func TestParseBreakContinue(t *testing.T) {
	stmts := parseProgram(t, `while true { if x { break; }; continue; };`)
	w := stmts[0].(*ast.While)
	body := w.Body.(*ast.Block)
	if len(body.Stmts) != 2 {
		t.Fatalf("expected 2 statements in while body, got %d", len(body.Stmts))
	}
	if _, ok := body.Stmts[1].(*ast.KeywordStatement); !ok {
		t.Fatalf("expected KeywordStatement, got %T", body.Stmts[1])
	}
}

func TestParseListAndDictLiterals(t *testing.T) {
	stmt := firstStmt(t, `xs = [1, 2, 3];`)
	asn := stmt.(*ast.Assignment)
	lst, ok := asn.Value.(*ast.ListLit)
	if !ok || len(lst.Elems) != 3 {
		t.Fatalf("expected 3-element ListLit, got %#v", asn.Value)
	}

	stmt = firstStmt(t, `d = { "a": 1, "b": 2 };`)
	asn = stmt.(*ast.Assignment)
	dict, ok := asn.Value.(*ast.DictLit)
	if !ok || len(dict.Entries) != 2 {
		t.Fatalf("expected 2-entry DictLit, got %#v", asn.Value)
	}
}

func TestParseStringInterpolation(t *testing.T) {
	stmt := firstStmt(t, `x = "hi ${name}";`)
	asn := stmt.(*ast.Assignment)
	str, ok := asn.Value.(*ast.StringLit)
	if !ok {
		t.Fatalf("expected StringLit, got %T", asn.Value)
	}
	if len(str.Parts) != 2 {
		t.Fatalf("expected 2 string parts, got %d", len(str.Parts))
	}
	if str.Parts[0].Interp != nil || str.Parts[0].Literal != "hi " {
		t.Fatalf("unexpected first part: %+v", str.Parts[0])
	}
	if str.Parts[1].Interp == nil {
		t.Fatalf("expected second part to be an interpolation")
	}
}

func TestParseRange(t *testing.T) {
	stmt := firstStmt(t, `r = 0..10;`)
	asn := stmt.(*ast.Assignment)
	expr := asn.Value.(*ast.Expression)
	_, ok := expr.Primaries[0].Inner.(*ast.RangeLit)
	if !ok {
		t.Fatalf("expected RangeLit, got %#v", expr.Primaries[0].Inner)
	}
}

func TestParsePipeStatement(t *testing.T) {
	stmt := firstStmt(t, `pipe ls("-la") | grep("go");`)
	pipe, ok := stmt.(*ast.Pipe)
	if !ok {
		t.Fatalf("stmt not *ast.Pipe, got %T", stmt)
	}
	if pipe.Capturing {
		t.Fatalf("expected non-capturing pipe statement")
	}
	if len(pipe.Commands) != 2 || pipe.Commands[0].Name != "ls" || pipe.Commands[1].Name != "grep" {
		t.Fatalf("unexpected pipe commands: %+v", pipe.Commands)
	}
}

func TestParseCaptureExpression(t *testing.T) {
	stmt := firstStmt(t, `out = capture(ls("-la") | grep("go"));`)
	asn := stmt.(*ast.Assignment)
	pipe, ok := asn.Value.(*ast.Pipe)
	if !ok || !pipe.Capturing {
		t.Fatalf("expected capturing *ast.Pipe, got %#v", asn.Value)
	}
}

func TestParseAsyncAwait(t *testing.T) {
	stmt := firstStmt(t, `f = async slow();`)
	asn := stmt.(*ast.Assignment)
	expr, ok := asn.Value.(*ast.Expression)
	if !ok || !expr.Async {
		t.Fatalf("expected async expression, got %#v", asn.Value)
	}

	stmt = firstStmt(t, `v = await f;`)
	asn = stmt.(*ast.Assignment)
	expr2 := asn.Value.(*ast.Expression)
	if len(expr2.Primaries[0].Prefixes) != 1 || expr2.Primaries[0].Prefixes[0] != ast.PrefixAwait {
		t.Fatalf("expected await prefix, got %+v", expr2.Primaries[0])
	}
}

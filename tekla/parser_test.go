package tekla

import (
	"strings"
	"testing"
)

func parseOK(t *testing.T, src string) []Stmt {
	t.Helper()
	stmts, err := Parse(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return stmts
}

func TestParsePrecedence(t *testing.T) {
	stmts := parseOK(t, "-123 + (45.23);")
	expr, ok := SingleExpression(stmts)
	if !ok {
		t.Fatalf("got %v", stmts)
	}
	if got := Sprint(expr); got != "(Plus (Minus 123) (group 45.23))" {
		t.Fatalf("got %s", got)
	}
}

func TestParseExpressions(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
	}{
		{"1 + 2 * 3;", "(Plus 1 (Star 2 3))"},
		{"1 - 2 - 3;", "(Minus (Minus 1 2) 3)"},
		{"8 / 4 / 2;", "(Slash (Slash 8 4) 2)"},
		{"a = b = 3;", "(Equal a (Equal b 3))"},
		{"x += 2;", "(Equal x (Plus (Var x) 2))"},
		{"x /= y - 1;", "(Equal x (Slash (Var x) (Minus (Var y) 1)))"},
		{"!true == false;", "(Equal_Equal (Bang true) false)"},
		{"!!a;", "(Bang (Bang (Var a)))"},
		{"a || b && c;", "(Or (Var a) (And (Var b) (Var c)))"},
		{"a and b;", "(And (Var a) (Var b))"},
		{"1 < 2 != 3 >= 4;", "(Not_Equal (Less 1 2) (Greater_Equal 3 4))"},
		{"nil;", "nil"},
		{`"s";`, "s"},
		{"a = 1 || 2;", "(Equal a (Or 1 2))"},
	} {
		stmts := parseOK(t, c.src)
		expr, ok := SingleExpression(stmts)
		if !ok {
			t.Fatalf("%s: got %v", c.src, stmts)
		}
		if got := Sprint(expr); got != c.expected {
			t.Fatalf("%s: got %s", c.src, got)
		}
	}
}

func TestParseStatements(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
	}{
		{
			"let a; let b = 1;",
			"let a;\nlet b = 1;",
		},
		{
			"if (a) { print(1); } else if (b) { print(2); } else { print(3); }",
			"if (Var a) { print 1; } else if (Var b) { print 2; } else { print 3; }",
		},
		{
			"for (let i = 0; i < 3; i = i + 1) print(i);",
			"{ let i = 0; while (Less (Var i) 3) step (Equal i (Plus (Var i) 1)) print (Var i); }",
		},
		{
			"for (i = 0; ; ) { break; }",
			"{ (Equal i 0); while true { break; } }",
		},
		{
			"for (;;) break;",
			"while true break;",
		},
		{
			"while (x) { continue; }",
			"while (Var x) { continue; }",
		},
		{
			"{ let a = 1; { a; } }",
			"{ let a = 1; { (Var a); } }",
		},
	} {
		stmts := parseOK(t, c.src)
		if got := Sprint(stmts); got != c.expected {
			t.Fatalf("%s: got %s", c.src, got)
		}
	}
}

func TestParseForDesugaring(t *testing.T) {
	stmts := parseOK(t, "for (let i = 0; i < 3; i += 1) { print(i); }")
	block, ok := stmts[0].(*BlockStmt)
	if !ok || len(block.Statements) != 2 {
		t.Fatalf("got %#v", stmts[0])
	}
	if _, ok := block.Statements[0].(*LetStmt); !ok {
		t.Fatalf("got %#v", block.Statements[0])
	}
	loop, ok := block.Statements[1].(*WhileStmt)
	if !ok {
		t.Fatalf("got %#v", block.Statements[1])
	}
	if loop.Increment == nil {
		t.Fatal("increment should be kept on the loop")
	}
	if _, ok := loop.Body.(*BlockStmt); !ok {
		t.Fatalf("got %#v", loop.Body)
	}
}

func TestParseErrorsCollected(t *testing.T) {
	src := "let = 1;\nprint(2)\nlet x = 3;\n1 +;\nlet ok = 1;"
	tokens, illegals := Lex(src)
	if len(illegals) != 0 {
		t.Fatal(illegals)
	}
	parser := NewParser(tokens)
	stmts := parser.Parse()
	if !parser.HadErrors() {
		t.Fatal("should error")
	}
	errs := parser.Errors()
	if len(errs) != 3 {
		t.Fatalf("got %v", errs)
	}
	for i, c := range []struct {
		line int
		msg  string
	}{
		{1, "expected an identifier after 'let'"},
		{3, "expected ';' after print statement"},
		{4, "expected an expression"},
	} {
		if errs[i].Token.Pos.Line != c.line || errs[i].Msg != c.msg {
			t.Fatalf("got %v", errs[i])
		}
	}
	if got := Sprint(stmts); got != "let ok = 1;" {
		t.Fatalf("got %s", got)
	}

	_, err := Parse(src)
	if err == nil {
		t.Fatal("should error")
	}
	if n := strings.Count(err.Error(), "syntax error"); n != 3 {
		t.Fatalf("got %v", err)
	}
}

func TestParseErrorMessages(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
	}{
		{"1 = 2;", "syntax error: invalid assignment target at line 1 on token Equal"},
		{"(a) = 2;", "syntax error: invalid assignment target at line 1 on token Equal"},
		{"func f() {}", "syntax error: functions are not supported at line 1 on token Function"},
		{"return 1;", "syntax error: functions are not supported at line 1 on token Return"},
		{"print(1", "syntax error at end: expected ')' after print argument"},
		{"print 1;", "syntax error: expected '(' after 'print' at line 1 on token Integer"},
		{"if (a) print(1);", "syntax error: expected '{' at the start of then clause at line 1 on token Print"},
		{"if (a) { } else print(1);", "syntax error: expected '{' at the start of else clause at line 1 on token Print"},
		{"while a {}", "syntax error: expected '(' after 'while' at line 1 on token Identifier"},
		{"{ let a = 1;", "syntax error at end: expected '}' at the end of the block"},
		{"break", "syntax error at end: expected ';' after 'break'"},
		{"a + ;", "syntax error: expected an expression at line 1 on token Semicolon"},
	} {
		_, err := Parse(c.src)
		if err == nil {
			t.Fatalf("%s: should error", c.src)
		}
		if got := err.Error(); got != c.expected {
			t.Fatalf("%s: got %s", c.src, got)
		}
	}
}

func TestParseLexicalErrors(t *testing.T) {
	_, err := Parse("let a = #; let b = @;")
	if err == nil {
		t.Fatal("should error")
	}
	if n := strings.Count(err.Error(), "illegal token"); n != 2 {
		t.Fatalf("got %v", err)
	}
}

func TestNewParserAppendsEOF(t *testing.T) {
	lexer := NewLexer(strings.NewReader("print(1);\nprint(2);"))
	tokens := lexer.ReadSequenceOfTokens()
	parser := NewParser(tokens)
	stmts := parser.Parse()
	if parser.HadErrors() {
		t.Fatal(parser.Errors())
	}
	if got := Sprint(stmts); got != "print 1;" {
		t.Fatalf("got %s", got)
	}

	if stmts := NewParser(nil).Parse(); len(stmts) != 0 {
		t.Fatalf("got %v", stmts)
	}
}

func TestSingleExpression(t *testing.T) {
	for _, c := range []struct {
		src string
		ok  bool
	}{
		{"1 + 2;", true},
		{"a = 2;", true},
		{"print(1);", false},
		{"1; 2;", false},
		{"let a = 1;", false},
		{"", false},
	} {
		if _, ok := SingleExpression(parseOK(t, c.src)); ok != c.ok {
			t.Fatalf("%q: got %v", c.src, ok)
		}
	}
}

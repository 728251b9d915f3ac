package tekla

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts := parseOK(t, src)
	buf := new(bytes.Buffer)
	interp := NewInterpreter(WithOutput(buf))
	err := interp.Interpret(stmts)
	return buf.String(), err
}

func expectOutput(t *testing.T, src string, lines ...string) {
	t.Helper()
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	expected := strings.Join(lines, "\n")
	if len(lines) > 0 {
		expected += "\n"
	}
	if out != expected {
		t.Fatalf("%s: got %q", src, out)
	}
}

func TestArithmetic(t *testing.T) {
	expectOutput(t, "print(5 / 2);", "2.5")
	expectOutput(t, "print(2 - 2);", "0")
	expectOutput(t, "print(0 * 10);", "0")
	expectOutput(t, "print(3 * (2 + 4));", "18")
	expectOutput(t, "print(1 / 0); print(-1 / 0); print(0 / 0);", "Infinity", "-Infinity", "NaN")
}

func TestUnaryAndLiterals(t *testing.T) {
	expectOutput(t, "print(!true);", "false")
	expectOutput(t, "print(!nil);", "true")
	expectOutput(t, "print(!0);", "false")
	expectOutput(t, "print(nil);", "nil")
	expectOutput(t, `print("test" + "test");`, "testtest")
}

func TestComparison(t *testing.T) {
	expectOutput(t, "print(1 < 2); print(2 <= 2); print(3 > 4); print(4 >= 5);",
		"true", "true", "false", "false")
	expectOutput(t, `print(1 == 1); print("a" == "a"); print(1 == "1"); print(nil == nil); print(nil == false); print(true != false);`,
		"true", "true", "false", "true", "false", "true")
}

func TestLogical(t *testing.T) {
	expectOutput(t, "print(false || 2);", "true")
	expectOutput(t, "print(false && 2);", "false")
	expectOutput(t, "print(1 && nil);", "false")
	expectOutput(t, `print(nil || "x");`, "true")
	expectOutput(t, "print(true and true);", "true")
}

func TestShortCircuit(t *testing.T) {
	expectOutput(t, "let a = 0; true || (a = 1); false && (a = 2); print(a);", "0")
	expectOutput(t, "print(true || undefined); print(false && undefined);", "true", "false")
}

func TestLet(t *testing.T) {
	expectOutput(t, "let a = 10; print(a);", "10")
	expectOutput(t, "let a = 10; a = a * a; print(a);", "100")
	expectOutput(t, "let a = 2; let b = a * 4; print(b);", "8")
	expectOutput(t, "let a; print(a);", "nil")
	expectOutput(t, "let a = 1; let a = 2; print(a);", "2")
	expectOutput(t, "let a = 1; a -= 3; a *= 2; a /= 8; print(a);", "-0.5")
	expectOutput(t, "let a; let b; a = b = 3; print(a + b);", "6")
}

func TestBlockScoping(t *testing.T) {
	expectOutput(t, `
let a = 2;
{ let a = 3; { let a = 4; print(a); } print(a); }
print(a);
`, "4", "3", "2")
	expectOutput(t, "let a = 1; { a = 5; } print(a);", "5")
}

func TestIf(t *testing.T) {
	expectOutput(t, `
let n = 15;
if (n < 10) { print("small"); } else if (n < 20) { print("medium"); } else { print("large"); }
if (nil) { print("no"); }
if (0) { print("zero is truthy"); }
`, "medium", "zero is truthy")
}

func TestWhile(t *testing.T) {
	expectOutput(t, "let a = 2; while (true) { print(a); break; }", "2")
	expectOutput(t, "let a = 2; while (true) { print(a); a = a + 1; if (a == 5) { break; } }", "2", "3", "4")
	expectOutput(t, "let a = 1; while (a < 4) { a = a + 1; print(a); }", "2", "3", "4")
	expectOutput(t, "let i = 0; while (i < 5) { i = i + 1; if (i == 3) { continue; } print(i); }",
		"1", "2", "4", "5")
}

func TestFor(t *testing.T) {
	expectOutput(t, `for (let i=0;i<=10;i=i+1){ if (i==2||i==3){i=i+1; continue;} if (i==9){break;} print(i); }`,
		"0", "1", "4", "5", "6", "7", "8")
	expectOutput(t, "let n = 0; for (;;) { n += 1; if (n > 2) { break; } } print(n);", "3")
	expectOutput(t, "for (let i = 0; i < 2; i += 1) print(i);", "0", "1")
}

func TestFibonacci(t *testing.T) {
	var expected []string
	a, b := 0, 1
	for range 21 {
		expected = append(expected, itoa(a))
		a, b = b, a+b
	}
	expectOutput(t, `
let a = 0;
let temp;
for (let b = 1; a <= 6765; b = temp + b) {
  print(a);
  temp = a;
  a = b;
}
`, expected...)
}

func itoa(n int) string {
	return FormatValue(float64(n))
}

func TestNestedLoops(t *testing.T) {
	expectOutput(t, `
for (let i = 0; i < 3; i += 1) {
  for (let j = 0; j < 3; j += 1) {
    if (j == 1) { break; }
    print(i * 10 + j);
  }
  if (i == 1) { continue; }
  print(i);
}
`, "0", "0", "10", "20", "2")
}

func TestLoopVariableNotLeaked(t *testing.T) {
	out, err := run(t, "for (let i = 0; i < 1; i += 1) {} print(i);")
	if err == nil {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(err.Error(), "undefined variable 'i'") {
		t.Fatalf("got %v", err)
	}
}

func TestRuntimeErrors(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
		line     int
	}{
		{"print(x);", "runtime error: undefined variable 'x' on line 1", 1},
		{"\nx = 1;", "runtime error: undefined variable 'x' on line 2", 2},
		{`print(-"a");`, "runtime error: operand must be a number, got string on line 1", 1},
		{`print(1 + "a");`, "runtime error: operands must be two numbers or two strings on line 1", 1},
		{`print(1 < "a");`, "runtime error: operands must be numbers, got number and string on line 1", 1},
		{"print(nil * true);", "runtime error: operands must be numbers, got nil and boolean on line 1", 1},
		{"break;", "runtime error: break outside of a loop on line 1", 1},
		{"{ continue; }", "runtime error: continue outside of a loop on line 1", 1},
		{"if (true) {\n break;\n}", "runtime error: break outside of a loop on line 2", 2},
	} {
		_, err := run(t, c.src)
		if err == nil {
			t.Fatalf("%s: should error", c.src)
		}
		if err.Error() != c.expected {
			t.Fatalf("%s: got %v", c.src, err)
		}
		var runtimeErr *RuntimeError
		if !errors.As(err, &runtimeErr) {
			t.Fatalf("got %T", err)
		}
		if runtimeErr.Position().Line != c.line {
			t.Fatalf("%s: got %v", c.src, runtimeErr.Position())
		}
	}
}

func TestRuntimeErrorStopsExecution(t *testing.T) {
	out, err := run(t, "print(1); print(x); print(2);")
	if err == nil {
		t.Fatal("should error")
	}
	if out != "1\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpreterErrorsPerRun(t *testing.T) {
	buf := new(bytes.Buffer)
	interp := NewInterpreter(WithOutput(buf))

	if err := interp.Interpret(parseOK(t, "print(x);")); err == nil {
		t.Fatal("should error")
	}
	if !interp.HadError() || len(interp.Errors()) != 1 {
		t.Fatalf("got %v", interp.Errors())
	}
	failed := interp.Errors()

	if err := interp.Interpret(parseOK(t, "let x = 1; print(x);")); err != nil {
		t.Fatal(err)
	}
	if interp.HadError() {
		t.Fatalf("got %v", interp.Errors())
	}
	if len(failed) != 1 {
		t.Fatalf("got %v", failed)
	}
	if buf.String() != "1\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestGlobalsPersistAcrossRuns(t *testing.T) {
	buf := new(bytes.Buffer)
	interp := NewInterpreter(WithOutput(buf))
	for _, src := range []string{
		"let total = 0;",
		"for (let i = 1; i <= 4; i += 1) { total += i; }",
		"print(total);",
	} {
		if err := interp.Interpret(parseOK(t, src)); err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != "10\n" {
		t.Fatalf("got %q", buf.String())
	}
	globals := interp.Globals()
	if len(globals) != 1 || globals["total"] != 10.0 {
		t.Fatalf("got %v", globals)
	}
}

func TestScopesRestoredAfterError(t *testing.T) {
	interp := NewInterpreter(WithOutput(new(bytes.Buffer)))
	err := interp.Interpret(parseOK(t, "{ let inner = 1; while (true) { let deeper = 2; print(missing); } }"))
	if err == nil {
		t.Fatal("should error")
	}
	env := interp.Environment()
	if env.Depth() != 1 {
		t.Fatalf("got %v", env.Depth())
	}
	if _, ok := env.Get("inner"); ok {
		t.Fatal("inner should be gone")
	}
}

func TestEvaluate(t *testing.T) {
	interp := NewInterpreter(WithOutput(new(bytes.Buffer)))
	if err := interp.Interpret(parseOK(t, "let a = 4;")); err != nil {
		t.Fatal(err)
	}
	expr, ok := SingleExpression(parseOK(t, "a * 2 + 1;"))
	if !ok {
		t.Fatal()
	}
	v, err := interp.Evaluate(expr)
	if err != nil {
		t.Fatal(err)
	}
	if v != 9.0 {
		t.Fatalf("got %v", v)
	}

	expr, _ = SingleExpression(parseOK(t, "b;"))
	if _, err := interp.Evaluate(expr); err == nil || !interp.HadError() {
		t.Fatalf("got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrintWriteError(t *testing.T) {
	interp := NewInterpreter(WithOutput(failingWriter{}))
	err := interp.Interpret(parseOK(t, "print(1);"))
	if err == nil || !strings.Contains(err.Error(), "write output: closed") {
		t.Fatalf("got %v", err)
	}
}

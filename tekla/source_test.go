package tekla

import (
	"errors"
	"testing"
)

func TestAnnotate(t *testing.T) {
	src := NewSource("main.tk", "let a = 1;\nlet x = #;")
	_, errs := Lex(src.Content)
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	expected := "illegal token: unknown token '#' in line 2 at main.tk:2:9\n" +
		"let x = #;\n" +
		"        ^\n"
	if got := src.Annotate(errs[0]); got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateTabsAndWideRunes(t *testing.T) {
	src := NewSource("t", "\t\"界\" + ;")
	tokens, _ := Lex(src.Content)
	parser := NewParser(tokens)
	parser.Parse()
	if len(parser.Errors()) != 1 {
		t.Fatalf("got %v", parser.Errors())
	}
	expected := "syntax error: expected an expression at line 1 on token Semicolon at t:1:8\n" +
		"\t\"界\" + ;\n" +
		"\t       ^\n"
	if got := src.Annotate(parser.Errors()[0]); got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateWithoutPosition(t *testing.T) {
	src := NewSource("t", "")
	if got := src.Annotate(errors.New("plain")); got != "plain" {
		t.Fatalf("got %q", got)
	}
	wrapped := errors.Join(errors.New("context"), &RuntimeError{
		Msg:   "boom",
		Token: Token{Pos: Pos{Line: 7, Column: 1}},
	})
	if got := src.Annotate(wrapped); got != "context\nruntime error: boom on line 7 at t:7:1\n" {
		t.Fatalf("got %q", got)
	}
}

package configs

import (
	"strings"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, testSchema)

	str := First[string](loader, "prompt")
	if str != ">> " {
		t.Fatalf("got %v", str)
	}

	if First[*bool](loader, "not_here") != nil {
		t.Fatal("should be nil")
	}

}

type testPrompt string

func (testPrompt) ConfigExpr() string {
	return "prompt"
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	if p := Lookup[testPrompt](loader); p != "tekla> " {
		t.Fatalf("got %q", p)
	}
}

func TestFirstPanicsOnBadFile(t *testing.T) {
	loader := NewLoader([]string{"bad.cue"}, testSchema)
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if err, ok := p.(error); !ok || !strings.HasPrefix(err.Error(), "config prompt: ") {
			t.Fatalf("got %v", p)
		}
	}()
	First[string](loader, "prompt")
}

package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "tk> ", ">>> "); got != "tk> " {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[string](); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[bool](nil) {
		t.Fatal("got true")
	}
	v := true
	if !DerefOrZero(&v) {
		t.Fatal("got false")
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		" on ":  true,
		"1":     true,
		"false": false,
		"no":    false,
		"0":     false,
		"maybe": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}

package ident

import "testing"

func TestNewIdempotent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"simple", "variable"},
		{"mixed case", "MyVariable"},
		{"operator", "+"},
		{"multi-char operator", "<="},
		{"empty string", ""},
		{"unicode", "δ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := New(tt.text)
			second := New(tt.text)
			if first != second {
				t.Errorf("New(%q) is not idempotent: %v != %v", tt.text, first, second)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	tests := []struct {
		name  string
		a     string
		b     string
		equal bool
	}{
		{"same text", "x", "x", true},
		{"different text", "x", "y", false},
		{"case matters", "Variable", "variable", false},
		{"prefix", "var", "variable", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.a) == New(tt.b); got != tt.equal {
				t.Errorf("New(%q) == New(%q) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, text := range []string{"foo", "Bar", "+", "<>"} {
		if got := New(text).String(); got != text {
			t.Errorf("New(%q).String() = %q", text, got)
		}
	}
}

func TestMapKey(t *testing.T) {
	m := map[Ident]int{}
	m[New("a")] = 1
	m[New("b")] = 2

	if m[New("a")] != 1 || m[New("b")] != 2 {
		t.Errorf("idents do not work as map keys: %v", m)
	}
}

func TestReset(t *testing.T) {
	id := New("transient")
	Reset()

	// The handle survives, the printable text does not.
	if id != New("transient") {
		t.Error("handle changed across Reset")
	}
	if got := id.String(); got != "transient" {
		t.Errorf("String() after re-interning = %q", got)
	}
}

func TestResetKeepsOperators(t *testing.T) {
	Reset()

	if Plus != New("+") {
		t.Error("Plus does not match New(\"+\") after Reset")
	}
	if got := Pow.String(); got != "**" {
		t.Errorf("Pow.String() = %q after Reset", got)
	}
}

func TestOperatorIdents(t *testing.T) {
	tests := []struct {
		id   Ident
		text string
	}{
		{Plus, "+"},
		{Minus, "-"},
		{Multiply, "*"},
		{Divide, "/"},
		{Mod, "%"},
		{Pow, "**"},
		{And, "&&"},
		{Or, "||"},
		{Combine, "<>"},
		{Less, "<"},
		{LessEq, "<="},
		{Greater, ">"},
		{GreaterEq, ">="},
		{Eq, "=="},
		{NotEq, "!="},
	}

	for _, tt := range tests {
		if tt.id != New(tt.text) {
			t.Errorf("operator ident for %q does not match New", tt.text)
		}
	}
}

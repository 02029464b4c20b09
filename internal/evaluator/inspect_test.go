package evaluator

import "testing"

func TestInspect(t *testing.T) {
	tests := []struct {
		name     string
		value    Object
		expected string
	}{
		{"integer", num(42), "42"},
		{"negative integer", num(-5), "-5"},
		{"float keeps six decimals", flt(2.0), "2.000000"},
		{"float", flt(3.5), "3.500000"},
		{"true", &Boolean{Value: true}, "#t"},
		{"false", &Boolean{Value: false}, "#f"},
		{"string is quoted", str("hi"), `"hi"`},
		{"string escapes", str("a\nb\t\"c\"\\"), `"a\nb\t\"c\"\\"`},
		{"symbol", sym("head"), "head"},
		{"error", &Error{Message: "boom"}, "Error: boom"},
		{"builtin", Builtins["head"], "<builtin>"},
		{"empty sexpr", sx(), "()"},
		{"sexpr", sx(sym("+"), num(1), num(2)), "(+ 1 2)"},
		{"qexpr", qx(num(1), qx(num(2)), str("s")), `{1 {2} "s"}`},
		{"lambda", NewLambda(qx(sym("x")), qx(sym("*"), sym("x"), num(2))), "(\\ {x} {* x 2})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Inspect(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name     string
		value    Object
		expected string
	}{
		{"string prints raw", str("a\nb"), "a\nb"},
		{"string inside sequence prints raw", qx(str("hi"), num(1)), "{hi 1}"},
		{"numbers unchanged", num(7), "7"},
		{"nested sequences", sx(str("x"), qx(str("y"))), "(x {y})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.value); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessageIsBounded(t *testing.T) {
	long := make([]byte, 2048)
	for i := range long {
		long[i] = 'x'
	}
	errObj := newError("%s", long)
	if len(errObj.Message) != 511 {
		t.Errorf("message length %d, want 511", len(errObj.Message))
	}
}

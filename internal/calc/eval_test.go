package calc

import (
	"errors"
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"10%3", 1},
		{"2^10", 1024},
		{"2^3^2", 512}, // Right associative
		{"-5+3", -2},
		{"-(2+3)", -5},
		{"3--2", 5},
		{"2*-3", -6},
		{"-2^2", -4}, // Negation of the square
		{"1.5*2", 3},
		{"  1 + 2 ", 3},
		{"((1))", 1},
	}
	for _, tc := range cases {
		got, err := Eval(tc.expr)
		if err != nil {
			t.Errorf("Eval(%q) returned error: %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvalDivideByZero(t *testing.T) {
	for _, expr := range []string{"1/0", "5%0", "1/(2-2)"} {
		_, err := Eval(expr)
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("Eval(%q) error = %v, want ErrDivideByZero", expr, err)
		}
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	for _, expr := range []string{"", "1+", "*2", "(1+2", "1+2)", "1..2", "a+b", "1 2"} {
		_, err := Eval(expr)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Eval(%q) error = %v, want ErrSyntax", expr, err)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{3, "3"},
		{-42, "-42"},
		{2.5, "2.5"},
		{1024, "1024"},
	}
	for _, tc := range cases {
		if got := Format(tc.v); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/zhubert/tally/internal/errors"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"5", 5},
		{"5+3", 8},
		{"10-3", 7},
		{"2*3+4*5", 26},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"(3+4)*2", 14},
		{"100/4", 25},
		{"10/4", 2.5},
		{"1/3*3", 1},
		{"-5", -5},
		{"-5+3", -2},
		{"--5", 5},
		{"5+-3", 2},
		{"5*-2", -10},
		{"-(2+3)", -5},
		{"2*(1+(3-1))", 6},
		{"0.1+0.2", 0.30000000000000004},
		{"1.5*2", 3},
		{".5+.5", 1},
		{" 5 + 3 ", 8},
		{"8-3-2", 3}, // left associative
		{"12/3/2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) returned error: %v", tt.expr, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	tests := []string{
		"",
		"5+",
		"+5", // unary plus is not part of the grammar
		"5++3",
		"5**3",
		"(5",
		"5)",
		"()",
		"(5+3",
		"5..5",
		"5 5",
		"*5",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(expr)
			if err == nil {
				t.Fatalf("Evaluate(%q) succeeded, want malformed error", expr)
			}
			if !errors.Is(err, errors.KindMalformed) {
				t.Errorf("Evaluate(%q) error kind = %v, want KindMalformed", expr, errors.GetKind(err))
			}
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	tests := []string{
		"5/0",
		"1/(2-2)",
		"10/0.0",
		"0/0",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(expr)
			if !errors.Is(err, errors.KindDivisionByZero) {
				t.Errorf("Evaluate(%q) error = %v, want KindDivisionByZero", expr, err)
			}
		})
	}
}

func TestEvaluate_NonFinite(t *testing.T) {
	// Two 300-digit operands overflow float64 when multiplied.
	big := strings.Repeat("9", 300)
	_, err := Evaluate(big + "*" + big)
	if !errors.Is(err, errors.KindNonFinite) {
		t.Errorf("overflowing product error = %v, want KindNonFinite", err)
	}
}

func TestEvaluate_NoIdentifiers(t *testing.T) {
	// The parser must reject anything beyond literals and operators, even
	// input the validator would have already refused.
	tests := []string{"x", "abs(5)", "5+x", "__import__"}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			if _, err := Evaluate(expr); err == nil {
				t.Errorf("Evaluate(%q) succeeded, want error", expr)
			}
		})
	}
}

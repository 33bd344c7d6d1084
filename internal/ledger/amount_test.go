package ledger

import (
	"math"
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		cents  int64
		ok     bool
	}{
		{"whole dollars", 300, 30_000, true},
		{"dollars and cents", 24.60, 2_460, true},
		{"one cent", 0.01, 1, true},
		{"half cent rounds up", 0.015, 2, true},
		{"repeating binary fraction", 0.1, 10, true},
		{"zero", 0, 0, false},
		{"negative", -5, 0, false},
		{"sub-cent rounds to nothing", 0.001, 0, false},
		{"nan", math.NaN(), 0, false},
		{"positive infinity", math.Inf(1), 0, false},
		{"negative infinity", math.Inf(-1), 0, false},
		{"beyond int64 cents", math.MaxFloat64, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cents, err := NormalizeAmount(tc.amount)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cents != tc.cents {
					t.Fatalf("expected %d cents, got %d", tc.cents, cents)
				}
				return
			}
			if err != ErrInvalidAmount {
				t.Fatalf("expected ErrInvalidAmount, got %v (cents=%d)", err, cents)
			}
		})
	}
}

func TestToDecimal(t *testing.T) {
	if got := toDecimal(130_000); got != 1300.00 {
		t.Fatalf("expected 1300.00, got %v", got)
	}
	if got := toDecimal(2_460); got != 24.60 {
		t.Fatalf("expected 24.60, got %v", got)
	}
}

package money_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"billomat-invoicing/pkg/money"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{in: "1.005", places: 2, want: "1.01"},
		{in: "2.345", places: 2, want: "2.35"},
		{in: "1.5", places: 1, want: "1.5"},
		{in: "1.25", places: 1, want: "1.3"},
		{in: "1.6666666666666667", places: 1, want: "1.7"},
		{in: "-1.005", places: 2, want: "-1.01"},
		{in: "3", places: 2, want: "3.00"},
		{in: "0", places: 1, want: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.Round(decimal.RequireFromString(tt.in), tt.places)
			if got != tt.want {
				t.Errorf("Round(%s, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
			}
		})
	}
}

func TestRoundFromFloat(t *testing.T) {
	// 1.005 is 1.00499999999999989... as a float64; the decimal conversion
	// keeps the shortest representation so rounding stays stable.
	got := money.Round(decimal.NewFromFloat(1.005), 2)
	if got != "1.01" {
		t.Errorf("expected 1.01, got %s", got)
	}
}

func TestFixed2(t *testing.T) {
	if got := money.Fixed2(decimal.RequireFromString("95")); got != "95.00" {
		t.Errorf("expected 95.00, got %s", got)
	}
}

func TestSum(t *testing.T) {
	got := money.Sum(decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2"))
	if !got.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("expected 0.3, got %s", got)
	}
	if !money.Sum().IsZero() {
		t.Errorf("expected zero for empty sum")
	}
}

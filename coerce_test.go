package pureguard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"42", 42},
		{"-42", -42},
		{"+7", 7},
		{"007", 7},
		{"1.25", 1.25},
		{".5", 0.5},
		{"5.", 5},
		{"-.5", -0.5},
		{"1e3", 1000},
		{"1E-2", 0.01},
		{"2.5e+2", 250},
		{" \t\n12\r ", 12},
		{"\u00a012\u2003", 12},
		{"\uFEFF3", 3},
		{"0x1F", 31},
		{"0XFF", 255},
		{"0o17", 15},
		{"0b101", 5},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CoerceNumber(tt.in)
			require.True(t, ok, "CoerceNumber(%q) not ok", tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceNumber_Infinity(t *testing.T) {
	for in, sign := range map[string]int{
		"Infinity":  1,
		"+Infinity": 1,
		"-Infinity": -1,
		"1e400":     1,
		"-1e400":    -1,
	} {
		got, ok := CoerceNumber(in)
		require.True(t, ok, in)
		assert.True(t, math.IsInf(got, sign), "CoerceNumber(%q) = %v", in, got)
	}
}

func TestCoerceNumber_Invalid(t *testing.T) {
	inputs := []string{
		"abc",
		"0.2abc",
		"0.2,3",
		"1.2.3",
		".",
		"-",
		"+",
		"e5",
		"1e",
		"1e+",
		"inf",
		"infinity",
		"NaN",
		"1_000",
		"0x",
		"0xG",
		"0b2",
		"0o8",
		"-0x10",
		"1 2",
		"\u00851",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, ok := CoerceNumber(in)
			assert.False(t, ok)
			assert.True(t, math.IsNaN(got))
		})
	}
}

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestOnlyNumbers_IntegersOnly(t *testing.T) {
	b := NumericBounds{MaxDecimals: -1}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"digits pass", "12345", "12345"},
		{"letters stripped", "a1b2c3", "123"},
		{"decimal point stripped", "12.34", "1234"},
		{"comma stripped", "12,34", "1234"},
		{"sign kept", "-42", "-42"},
		{"interior sign stripped", "4-2", "42"},
		{"multiple signs collapse", "--42", "-42"},
		{"lone sign mid-entry", "-", "-"},
		{"empty", "", ""},
		{"no digits", "abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, onlyNumbers(tt.in, b))
		})
	}
}

func TestOnlyNumbers_Decimals(t *testing.T) {
	b := NumericBounds{MaxDecimals: 2}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"truncates decimal tail", "12.3456", "12.34"},
		{"pending decimal point preserved", "12.", "12."},
		{"comma normalized to point", "12,5", "12.5"},
		{"second point ignored", "1.2.3", "1.23"},
		{"short tail untouched", "12.3", "12.3"},
		{"trailing zero kept mid-entry", "12.30", "12.30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, onlyNumbers(tt.in, b))
		})
	}
}

func TestOnlyNumbers_Clamping(t *testing.T) {
	b := NumericBounds{MaxDecimals: -1, Min: fptr(0), Max: fptr(100)}

	require.Equal(t, "100", onlyNumbers("150", b))
	require.Equal(t, "0", onlyNumbers("-5", b))
	require.Equal(t, "50", onlyNumbers("50", b))
}

func TestOnlyNumbers_InvertedBoundsClampToMax(t *testing.T) {
	// Configuration inversion guard: max < min clamps low values to max.
	b := NumericBounds{MaxDecimals: -1, Min: fptr(100), Max: fptr(10)}
	require.Equal(t, "10", onlyNumbers("5", b))
}

func TestOnlyNumbers_UnparseableFallsBackToMin(t *testing.T) {
	b := NumericBounds{MaxDecimals: 2, Min: fptr(0)}
	// A bare point strips to "." which does not parse.
	require.Equal(t, "0", onlyNumbers(".", b))
}

func TestOnlyNumbers_NegativeZeroMinRendersAsZero(t *testing.T) {
	neg := -0.0
	b := NumericBounds{MaxDecimals: 2, Min: &neg}
	require.Equal(t, "0", onlyNumbers(".", b))
}

func TestOnlyNumbers_UnparseableWithoutMinPassesThrough(t *testing.T) {
	b := NumericBounds{MaxDecimals: 2}
	require.Equal(t, ".", onlyNumbers(".", b))
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "0", formatNumber(0))
	require.Equal(t, "12.34", formatNumber(12.34))
	require.Equal(t, "-3", formatNumber(-3))
	require.Equal(t, "100", formatNumber(100))
}

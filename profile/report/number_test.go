package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		sigDigits int
		signed    bool
		want      string
	}{
		{"rounds up into full integer", 99.5, 2, true, "+100"},
		{"keeps one fractional digit", 99.1, 3, true, "+99.1"},
		{"sub-one value", 0.111, 3, false, "0.111"},
		{"integer shortcut drops fraction", 123.456, 3, false, "123"},
		{"negative signed", -50.0, 2, true, "-50"},
		{"negative with fraction", -2.5, 2, true, "-2.5"},
		{"zero padded fraction", 0.5, 3, false, "0.500"},
		{"exact zero", 0.0, 2, true, "+0.00"},
		{"rounding crosses digit boundary", 9.96, 2, false, "10"},
		{"more integer digits than significant", 1234.5, 3, false, "1235"},
		{"fraction digits are padded on the right", 1.05, 3, false, "1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.value, tt.sigDigits, tt.signed))
		})
	}
}

func TestFractionalStringPadsAndTruncates(t *testing.T) {
	// 0.4 -> scaled 40
	assert.Equal(t, "40", fractionalString(0.4, 2))
	// 0.04 -> scaled 4, then zero padded on the right to the column width
	assert.Equal(t, "40", fractionalString(12.04, 2))
	// 0.99 -> scaled 9.9 -> rounds to 10, truncated back to one digit
	assert.Equal(t, "1", fractionalString(0.99, 1))
}

func TestDigitsBeforePoint(t *testing.T) {
	assert.Equal(t, 0, digitsBeforePoint(0))
	assert.Equal(t, 0, digitsBeforePoint(0.9))
	assert.Equal(t, 1, digitsBeforePoint(1))
	assert.Equal(t, 2, digitsBeforePoint(99.9))
	assert.Equal(t, 3, digitsBeforePoint(100))
	assert.Equal(t, 2, digitsBeforePoint(-42.0))
}

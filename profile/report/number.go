package report

import (
	"math"
	"strconv"
	"strings"
)

// digitsBeforePoint returns how many digits the integer part of num
// occupies. Magnitudes below 1 count as zero digits.
func digitsBeforePoint(num float64) int {
	abs := math.Abs(num)
	if abs < 1 {
		return 0
	}
	d := int(math.Log10(abs)) + 1
	if d < 0 {
		return 0
	}
	return d
}

// fractionalString renders the fractional part of num scaled to exactly
// the requested number of digits: the remainder is multiplied by
// 10^digits, rounded to the nearest integer, and the result is padded or
// truncated on the right to the requested width.
func fractionalString(num float64, digits int) string {
	_, frac := math.Modf(num)
	scaled := frac * math.Pow(10, float64(digits))
	s := strconv.Itoa(int(math.Round(scaled)))
	if len(s) > digits {
		return s[:digits]
	}
	return s + strings.Repeat("0", digits-len(s))
}

// FormatNumber renders v rounded to sigDigits significant digits. When the
// rounded integer part alone already consumes every significant digit, no
// fractional part is emitted. A leading sign is prepended only when signed
// is set (used for percentage deltas); the magnitude is always rendered
// from the absolute value.
func FormatNumber(v float64, sigDigits int, signed bool) string {
	var b strings.Builder
	if signed {
		if v < 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
	}
	abs := math.Abs(v)

	wholeRounded := int(math.Round(abs))
	if digitsBeforePoint(float64(wholeRounded)) >= sigDigits {
		b.WriteString(strconv.Itoa(wholeRounded))
		return b.String()
	}

	predotDigits := digitsBeforePoint(abs)
	b.WriteString(strconv.Itoa(int(abs)))

	if left := sigDigits - predotDigits; left > 0 {
		b.WriteByte('.')
		b.WriteString(fractionalString(abs, left))
	}
	return b.String()
}

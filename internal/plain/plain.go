// Package plain renders float64 values as decimal strings that never use
// scientific notation.
//
// The digits are the ones produced by the shortest round-trip conversion of
// strconv. Only their placement changes: an exponent suffix is folded into
// the position of the decimal point by slicing the digit string, so no
// precision is lost for very large or very small magnitudes.
//
//	plain.Format(1.5e21)  // "1500000000000000000000"
//	plain.Format(1.5e-7)  // "0.00000015"
//	plain.Format(-2500)   // "-2500"
//
// NaN and infinities are passed through in their strconv form.
package plain

import (
	"strconv"
	"strings"
)

// Format returns the plain decimal form of f.
func Format(f float64) string {
	s := native(f)

	var sign string
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}

	mark := strings.IndexAny(s, "eE")
	if mark < 0 {
		return sign + s
	}
	exponent, err := strconv.Atoi(s[mark+1:])
	if err != nil {
		// strconv never emits a malformed exponent
		return sign + s
	}

	result := Expand(strings.TrimLeft(s[:mark], "0"), exponent)
	if result == "0" {
		return result
	}
	return sign + result
}

// native is the shortest round-trip form of f. Negative zero reads as "0".
func native(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Expand moves the decimal point of coefficient by exponent places and
// returns the result without an exponent. The coefficient is an unsigned
// digit string with at most one '.'. A result whose digits are all zero is
// reported as "0".
func Expand(coefficient string, exponent int) string {
	digits, point := splitPoint(coefficient)
	index := point + exponent
	pad := index - len(digits)

	var buf []byte
	switch {
	case exponent >= 0 && pad >= 0:
		buf = append(buf, trimLeadingZeros(digits)...)
		buf = appendZeros(buf, pad)
	case exponent < 0 && index <= 0:
		buf = append(buf, '0', '.')
		buf = appendZeros(buf, -index)
		buf = append(buf, digits...)
	default:
		// 0 <= index < len(digits). An empty integer part becomes "0", so
		// ".5e0" expands to "0.5".
		buf = make([]byte, 0, len(digits)+2)
		if whole := trimLeadingZeros(digits[:index]); whole != "" {
			buf = append(buf, whole...)
		} else {
			buf = append(buf, '0')
		}
		buf = append(buf, '.')
		buf = append(buf, digits[index:]...)
	}

	if isZero(buf) {
		return "0"
	}
	return string(buf)
}

// splitPoint removes the decimal point from coefficient and returns the
// bare digits together with the index the point was found at. Without a
// point, the index is the number of digits.
func splitPoint(coefficient string) (digits string, point int) {
	point = strings.IndexByte(coefficient, '.')
	if point < 0 {
		return coefficient, len(coefficient)
	}
	return coefficient[:point] + coefficient[point+1:], point
}

func trimLeadingZeros(digits string) string {
	return strings.TrimLeft(digits, "0")
}

func appendZeros(buf []byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, '0')
	}
	return buf
}

// isZero reports whether buf holds no digit other than '0'. An empty
// buffer is zero.
func isZero(buf []byte) bool {
	for _, b := range buf {
		if b != '0' && b != '.' {
			return false
		}
	}
	return true
}

package evaluator

import (
	"math"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// applyBinary returns false when op is not a binary operator.
func applyBinary(op string, left, right Value) (Value, bool) {
	switch op {
	case "+":
		return add(left, right), true
	case "-":
		return Number(ToNumber(left) - ToNumber(right)), true
	case "*":
		return Number(ToNumber(left) * ToNumber(right)), true
	case "/":
		return Number(ToNumber(left) / ToNumber(right)), true
	case "==":
		return Bool(StrictEquals(left, right)), true
	case "!=":
		return Bool(!StrictEquals(left, right)), true
	case "<":
		c, ok := compare(left, right)
		return Bool(ok && c < 0), true
	case ">":
		c, ok := compare(left, right)
		return Bool(ok && c > 0), true
	case "<=":
		c, ok := compare(left, right)
		return Bool(ok && c <= 0), true
	case ">=":
		c, ok := compare(left, right)
		return Bool(ok && c >= 0), true
	}

	return nil, false
}

// add concatenates when either side is a string and adds numerically otherwise.
func add(left, right Value) Value {
	_, leftIsString := left.(String)
	_, rightIsString := right.(String)
	if leftIsString || rightIsString {
		return String(left.String() + right.String())
	}

	return Number(ToNumber(left) + ToNumber(right))
}

// compare orders two strings lexically and anything else numerically.
// ok is false when a NaN is involved.
func compare(left, right Value) (int, bool) {
	if l, ok := left.(String); ok {
		if r, ok := right.(String); ok {
			return compareUTF16(string(l), string(r)), true
		}
	}

	l, r := ToNumber(left), ToNumber(right)
	if math.IsNaN(l) || math.IsNaN(r) {
		return 0, false
	}

	switch {
	case l < r:
		return -1, true
	case l > r:
		return 1, true
	}

	return 0, true
}

// compareUTF16 orders strings by UTF-16 code units. Byte order differs once
// a string leaves the BMP, since surrogate pairs sort before U+E000..U+FFFF.
func compareUTF16(a, b string) int {
	if isASCII(a) && isASCII(b) {
		return strings.Compare(a, b)
	}

	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

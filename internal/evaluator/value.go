package evaluator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a runtime value. The set is closed: Number, String, Bool and Null.
type Value interface {
	fmt.Stringer
	TypeName() string
	value()
}

type Number float64

type String string

type Bool bool

type NullValue struct{}

// Null is the only NullValue.
var Null Value = NullValue{}

func (Number) value()    {}
func (String) value()    {}
func (Bool) value()      {}
func (NullValue) value() {}

func (Number) TypeName() string    { return "number" }
func (String) TypeName() string    { return "string" }
func (Bool) TypeName() string      { return "boolean" }
func (NullValue) TypeName() string { return "object" }

func (n Number) String() string  { return formatNumber(float64(n)) }
func (s String) String() string  { return string(s) }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }
func (NullValue) String() string { return "null" }

// Inspect renders v the way print shows it. Unlike String, which feeds
// concatenation, negative zero keeps its sign.
func Inspect(v Value) string {
	if n, ok := v.(Number); ok && n == 0 && math.Signbit(float64(n)) {
		return "-0"
	}

	return v.String()
}

// formatNumber prints the shortest form that reads back as the same number,
// switching to exponent notation outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Truthy reports whether v selects the body of an if statement.
// false, null, 0, NaN and the empty string are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Number:
		f := float64(v)
		return f != 0 && !math.IsNaN(f)
	case String:
		return v != ""
	case NullValue, nil:
		return false
	}

	panic(fmt.Sprintf("Truthy: unknown value %T", v))
}

// ToNumber converts a value for arithmetic. Strings that do not spell a
// number convert to NaN; blank strings convert to 0.
func ToNumber(v Value) float64 {
	switch v := v.(type) {
	case Number:
		return float64(v)
	case Bool:
		if v {
			return 1
		}
		return 0
	case String:
		return parseNumber(string(v))
	case NullValue, nil:
		return 0
	}

	panic(fmt.Sprintf("ToNumber: unknown value %T", v))
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}

	if len(lower) > 2 && lower[0] == '0' && (lower[1] == 'x' || lower[1] == 'o' || lower[1] == 'b') {
		n, err := strconv.ParseUint(lower, 0, 64)
		if errors.Is(err, strconv.ErrRange) {
			return parseWideRadix(lower)
		}
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	// Signed or fractional hex (-0x10, 0x1p4) is not a number here.
	if strings.ContainsAny(lower, "xp") {
		return math.NaN()
	}

	// Out of range literals keep the ±Inf or 0 that ParseFloat returns.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}

// parseWideRadix handles 0x/0o/0b literals too wide for uint64.
func parseWideRadix(lower string) float64 {
	base := map[byte]uint64{'x': 16, 'o': 8, 'b': 2}[lower[1]]

	var f float64
	for _, c := range lower[2:] {
		d, err := strconv.ParseUint(string(c), int(base), 8)
		if err != nil {
			return math.NaN()
		}
		f = f*float64(base) + float64(d)
	}

	return f
}

// StrictEquals compares variant and value; NaN is never equal to itself.
func StrictEquals(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && float64(a) == float64(b)
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	}

	return false
}

// ToNative converts v into a plain Go value (float64, string, bool or nil).
func ToNative(v Value) any {
	switch v := v.(type) {
	case Number:
		return float64(v)
	case String:
		return string(v)
	case Bool:
		return bool(v)
	}

	return nil
}

// FromNative converts a plain Go scalar into a Value.
func FromNative(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	}

	return nil, fmt.Errorf("unsupported value of type %T", x)
}

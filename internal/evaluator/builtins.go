package evaluator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kievzenit/dde/internal/ast"
)

type builtinFunc func(ev *Evaluator, call *ast.CallExpr, args []Value) (Value, error)

// builtins is fixed at compile time; scripts cannot register functions.
var builtins = map[string]builtinFunc{
	"print":  builtinPrint,
	"typeof": builtinTypeof,
	"exit":   builtinExit,
	"random": builtinRandom,
	"isFart": builtinIsFart,
}

// Builtins returns the names of the built-in functions in sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func builtinPrint(ev *Evaluator, call *ast.CallExpr, args []Value) (Value, error) {
	if len(args) < 1 {
		return nil, &ArityError{
			Position: positionOf(call),
			Function: call.Name,
			Min:      1,
			Got:      len(args),
		}
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = Inspect(arg)
	}

	if _, err := fmt.Fprintln(ev.stdout(), strings.Join(parts, " ")); err != nil {
		return nil, err
	}

	return Null, nil
}

func builtinTypeof(ev *Evaluator, call *ast.CallExpr, args []Value) (Value, error) {
	if len(args) == 0 {
		return String("undefined"), nil
	}

	return String(args[0].TypeName()), nil
}

func builtinExit(ev *Evaluator, call *ast.CallExpr, args []Value) (Value, error) {
	return nil, &ExitSignal{Code: 0}
}

// builtinRandom implements random(), random(max), random(min, max) and
// random(min, max, isFloat). Integer results are inclusive of max.
func builtinRandom(ev *Evaluator, call *ast.CallExpr, args []Value) (Value, error) {
	r := ev.random()
	if len(args) == 0 {
		return Number(r), nil
	}

	var lo, hi float64
	if len(args) == 1 {
		hi = ToNumber(args[0])
	} else {
		lo, hi = ToNumber(args[0]), ToNumber(args[1])
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	if len(args) > 2 && Truthy(args[2]) {
		return Number(r*(hi-lo) + lo), nil
	}

	return Number(math.Floor(r*(hi-lo+1)) + lo), nil
}

func builtinIsFart(ev *Evaluator, call *ast.CallExpr, args []Value) (Value, error) {
	if len(args) == 0 {
		return Bool(false), nil
	}

	return Bool(StrictEquals(args[0], String("fart"))), nil
}

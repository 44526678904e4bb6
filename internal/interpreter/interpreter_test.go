package interpreter

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kievzenit/dde/internal/evaluator"
	"github.com/kievzenit/dde/internal/lexer"
	"github.com/kievzenit/dde/internal/parser"
)

func interpret(t *testing.T, src string) (*Result, string) {
	t.Helper()
	var out bytes.Buffer
	res, err := Interpret(src, &Options{Stdout: &out})
	if err != nil {
		t.Fatalf("Interpret(%q) error: %v", src, err)
	}
	return res, out.String()
}

func wantNumber(t *testing.T, v evaluator.Value, n float64) {
	t.Helper()
	if got, ok := v.(evaluator.Number); !ok || float64(got) != n {
		t.Fatalf("want number %v, got %#v", n, v)
	}
}

func TestInterpretProgram(t *testing.T) {
	res, _ := interpret(t, "x = 5; y = x + 3; y")
	wantNumber(t, res.Value, 8)

	snap := res.Environment.Snapshot()
	if len(snap) != 2 || snap["x"] != 5.0 || snap["y"] != 8.0 {
		t.Fatalf("environment = %#v", snap)
	}
}

func TestInterpretScenarios(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   evaluator.Value
		output string
	}{
		{"if body", "if (1 < 2) { z = 10 }; z", evaluator.Number(10), ""},
		{"print", `print("hi")`, evaluator.Null, "hi\n"},
		{"typeof", "typeof(5)", evaluator.String("number"), ""},
		{"isFart", `isFart("fart")`, evaluator.Bool(true), ""},
		{"comparator chain", "1 < 2 == true", evaluator.Bool(true), ""},
		{"random min equals max", "random(1, 1)", evaluator.Number(1), ""},
		{"random min equals max float", "random(1, 1, true)", evaluator.Number(1), ""},
		{"empty program", "", evaluator.Null, ""},
		{"overflowing literal", "1" + strings.Repeat("0", 400), evaluator.Number(math.Inf(1)), ""},
		{"overflowing string", `"1e400" * 1`, evaluator.Number(math.Inf(1)), ""},
		{"literal with several dots", "print(1.2.3, 1..); typeof(1.2.3)", evaluator.String("number"), "NaN NaN\n"},
		{"negative zero", "print(0 * (0 - 1))", evaluator.Null, "-0\n"},
		{"comment only", "# just a comment", evaluator.Null, ""},
		{
			"multi line script",
			"# greet\nname = 'world'\ngreeting = \"hello \" + name\nif (isFart(\"fart\")) {\n  print(greeting, 1 + 1);\n}\n",
			evaluator.Null,
			"hello world 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, out := interpret(t, tt.src)
			if !evaluator.StrictEquals(res.Value, tt.want) {
				t.Fatalf("value = %#v, want %#v", res.Value, tt.want)
			}
			if out != tt.output {
				t.Fatalf("output = %q, want %q", out, tt.output)
			}
		})
	}
}

func TestInterpretErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(error) bool
	}{
		{"unknown character", "x = 1 @ 2", func(err error) bool {
			var target *lexer.UnknownCharacterError
			return errors.As(err, &target)
		}},
		{"unterminated string", `"abc`, func(err error) bool {
			var target *lexer.UnterminatedStringError
			return errors.As(err, &target)
		}},
		{"unexpected token", "(1", func(err error) bool {
			var target *parser.UnexpectedTokenError
			return errors.As(err, &target)
		}},
		{"undefined variable", "q", func(err error) bool {
			var target *evaluator.UndefinedVariableError
			return errors.As(err, &target)
		}},
		{"unknown function", "launch()", func(err error) bool {
			var target *evaluator.UnknownFunctionError
			return errors.As(err, &target)
		}},
		{"arity", "print()", func(err error) bool {
			var target *evaluator.ArityError
			return errors.As(err, &target)
		}},
		{"unknown operator", "1 ! 2", func(err error) bool {
			var target *evaluator.UnknownOperatorError
			return errors.As(err, &target)
		}},
		{"exit", "exit(); 1", func(err error) bool {
			var target *evaluator.ExitSignal
			return errors.As(err, &target) && target.Code == 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Interpret(tt.src, &Options{Stdout: &bytes.Buffer{}})
			if res != nil {
				t.Fatalf("failed run must not return a result")
			}
			if !tt.check(err) {
				t.Fatalf("unexpected error %T: %v", err, err)
			}
		})
	}
}

func TestSessionKeepsEnvironment(t *testing.T) {
	var out bytes.Buffer
	in := New(&Options{Stdout: &out})

	if _, err := in.Run("count = 1"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := in.Run("count = count + 1"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := in.Run("missing + 1"); err == nil {
		t.Fatalf("expected error")
	}

	v, err := in.Run("print(count); count")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	wantNumber(t, v, 2)
	if out.String() != "2\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestSeededEnvironmentAndRandomSource(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("base", evaluator.Number(40))

	res, err := Interpret("base + random(2)", &Options{
		Stdout: &bytes.Buffer{},
		Env:    env,
		Rand:   func() float64 { return 0.9 },
	})
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	wantNumber(t, res.Value, 42)
	if res.Environment != env {
		t.Fatalf("seed environment must be used in place")
	}
}

func TestNilOptions(t *testing.T) {
	res, err := Interpret("a = 2 * 21", nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	wantNumber(t, res.Value, 42)
}

package interpreter

import (
	"io"
	"os"

	"github.com/kievzenit/dde/internal/ast"
	"github.com/kievzenit/dde/internal/evaluator"
	"github.com/kievzenit/dde/internal/lexer"
	"github.com/kievzenit/dde/internal/parser"
)

// Options controls how programs are run.
type Options struct {
	// Stdout receives print output (default os.Stdout).
	Stdout io.Writer
	// Rand returns numbers in [0, 1) for random (default math/rand/v2).
	Rand func() float64
	// Env seeds the variable table. It is used, not copied.
	Env *evaluator.Environment
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{Stdout: os.Stdout, Env: evaluator.NewEnvironment()}
	}

	out := *o
	if out.Stdout == nil {
		out.Stdout = os.Stdout
	}
	if out.Env == nil {
		out.Env = evaluator.NewEnvironment()
	}

	return out
}

// Result is the outcome of a successful run.
type Result struct {
	Value       evaluator.Value
	Environment *evaluator.Environment
}

// Interpreter keeps one Environment across several runs, which is what a
// REPL needs. It is not safe for concurrent use.
type Interpreter struct {
	evaluator *evaluator.Evaluator
	env       *evaluator.Environment
}

func New(opt *Options) *Interpreter {
	o := opt.normalize()

	return &Interpreter{
		evaluator: &evaluator.Evaluator{
			Stdout: o.Stdout,
			Rand:   o.Rand,
		},
		env: o.Env,
	}
}

// Interpret runs source in a fresh session. Any lexer, parser or evaluator
// error aborts the run and is returned unchanged; exit() surfaces as
// *evaluator.ExitSignal.
func Interpret(source string, opt *Options) (*Result, error) {
	in := New(opt)

	v, err := in.Run(source)
	if err != nil {
		return nil, err
	}

	return &Result{
		Value:       v,
		Environment: in.env,
	}, nil
}

// Run tokenizes, parses and evaluates source against the session environment.
func (in *Interpreter) Run(source string) (evaluator.Value, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	return in.Eval(program)
}

// Eval evaluates an already parsed program.
func (in *Interpreter) Eval(program ast.Program) (evaluator.Value, error) {
	return in.evaluator.EvaluateProgram(program, in.env)
}

func (in *Interpreter) Environment() *evaluator.Environment {
	return in.env
}

package evaluator

import (
	"io"
	"math/rand"
	"os"

	"github.com/kievzenit/dde/internal/ast"
)

// Evaluator walks a tree against an Environment. The zero value writes to
// os.Stdout and draws from the global random source. An Evaluator is not
// safe for concurrent use.
type Evaluator struct {
	Stdout io.Writer
	// Rand returns numbers in [0, 1).
	Rand func() float64
}

// Evaluate evaluates node with a default Evaluator.
func Evaluate(node ast.Node, env *Environment) (Value, error) {
	return (&Evaluator{}).Evaluate(node, env)
}

func (ev *Evaluator) Evaluate(node ast.Node, env *Environment) (Value, error) {
	switch n := node.(type) {
	case *ast.NumberExpr:
		return Number(n.Value), nil
	case *ast.StringExpr:
		return String(n.Value), nil
	case *ast.BoolExpr:
		return Bool(n.Value), nil
	case *ast.IdentExpr:
		return ev.evaluateIdentExpr(n, env)
	case *ast.BinaryExpr:
		return ev.evaluateBinaryExpr(n, env)
	case *ast.AssignExpr:
		return ev.evaluateAssignExpr(n, env)
	case *ast.CallExpr:
		return ev.evaluateCallExpr(n, env)
	case *ast.BlockStmt:
		return ev.evaluateBlockStmt(n, env)
	case *ast.IfStmt:
		return ev.evaluateIfStmt(n, env)
	}

	return nil, &UnknownNodeTypeError{
		Position: positionOf(node),
		Node:     node,
	}
}

// EvaluateProgram folds the statements left to right and returns the value
// of the last one, or Null for an empty program.
func (ev *Evaluator) EvaluateProgram(program ast.Program, env *Environment) (Value, error) {
	var result Value = Null
	for _, stmt := range program {
		v, err := ev.Evaluate(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}

	return result, nil
}

func (ev *Evaluator) evaluateIdentExpr(n *ast.IdentExpr, env *Environment) (Value, error) {
	v, ok := env.Get(n.Name)
	if !ok {
		return nil, &UndefinedVariableError{
			Position: positionOf(n),
			Name:     n.Name,
		}
	}

	return v, nil
}

func (ev *Evaluator) evaluateBinaryExpr(n *ast.BinaryExpr, env *Environment) (Value, error) {
	left, err := ev.Evaluate(n.Left, env)
	if err != nil {
		return nil, err
	}

	right, err := ev.Evaluate(n.Right, env)
	if err != nil {
		return nil, err
	}

	v, ok := applyBinary(n.Op, left, right)
	if !ok {
		return nil, &UnknownOperatorError{
			Position: positionOf(n),
			Op:       n.Op,
		}
	}

	return v, nil
}

func (ev *Evaluator) evaluateAssignExpr(n *ast.AssignExpr, env *Environment) (Value, error) {
	v, err := ev.Evaluate(n.Expr, env)
	if err != nil {
		return nil, err
	}

	env.Set(n.Name, v)
	return v, nil
}

func (ev *Evaluator) evaluateCallExpr(n *ast.CallExpr, env *Environment) (Value, error) {
	fn, ok := builtins[n.Name]
	if !ok {
		return nil, &UnknownFunctionError{
			Position: positionOf(n),
			Name:     n.Name,
		}
	}

	args := make([]Value, 0, len(n.Args))
	for _, arg := range n.Args {
		v, err := ev.Evaluate(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return fn(ev, n, args)
}

func (ev *Evaluator) evaluateBlockStmt(n *ast.BlockStmt, env *Environment) (Value, error) {
	var result Value = Null
	if n == nil {
		return result, nil
	}

	for _, stmt := range n.Stmts {
		v, err := ev.Evaluate(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}

	return result, nil
}

func (ev *Evaluator) evaluateIfStmt(n *ast.IfStmt, env *Environment) (Value, error) {
	cond, err := ev.Evaluate(n.Cond, env)
	if err != nil {
		return nil, err
	}

	if !Truthy(cond) {
		return Null, nil
	}

	return ev.evaluateBlockStmt(n.Body, env)
}

func (ev *Evaluator) stdout() io.Writer {
	if ev.Stdout == nil {
		return os.Stdout
	}

	return ev.Stdout
}

func (ev *Evaluator) random() float64 {
	if ev.Rand == nil {
		return rand.Float64()
	}

	return ev.Rand()
}

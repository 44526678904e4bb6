package evaluator

import (
	"fmt"

	"github.com/kievzenit/dde/internal/ast"
	"github.com/kievzenit/dde/internal/script_errors"
)

type UndefinedVariableError struct {
	script_errors.Position

	Name string
}

func (e *UndefinedVariableError) GetMessage() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

func (e *UndefinedVariableError) Error() string { return script_errors.Format(e) }

type UnknownFunctionError struct {
	script_errors.Position

	Name string
}

func (e *UnknownFunctionError) GetMessage() string {
	return fmt.Sprintf("unknown function: %s", e.Name)
}

func (e *UnknownFunctionError) Error() string { return script_errors.Format(e) }

type UnknownOperatorError struct {
	script_errors.Position

	Op string
}

func (e *UnknownOperatorError) GetMessage() string {
	return fmt.Sprintf("unknown operator: %s", e.Op)
}

func (e *UnknownOperatorError) Error() string { return script_errors.Format(e) }

type UnknownNodeTypeError struct {
	script_errors.Position

	Node ast.Node
}

func (e *UnknownNodeTypeError) GetMessage() string {
	return fmt.Sprintf("unknown node type: %T", e.Node)
}

func (e *UnknownNodeTypeError) Error() string { return script_errors.Format(e) }

type ArityError struct {
	script_errors.Position

	Function string
	Min      int
	Got      int
}

func (e *ArityError) GetMessage() string {
	return fmt.Sprintf("%s: expected at least %d argument(s), got %d", e.Function, e.Min, e.Got)
}

func (e *ArityError) Error() string { return script_errors.Format(e) }

// ExitSignal is returned by the exit built-in. It is not a failure: it
// unwinds evaluation so the host can stop with Code.
type ExitSignal struct {
	Code int
}

func (e *ExitSignal) Error() string {
	return fmt.Sprintf("exit(%d)", e.Code)
}

func positionOf(node ast.Node) script_errors.Position {
	if node == nil {
		return script_errors.Position{}
	}

	token := node.FirstToken()
	if token == nil {
		return script_errors.Position{}
	}

	return script_errors.Position{
		Line:   token.Metadata.Line,
		Column: token.Metadata.Column,
	}
}

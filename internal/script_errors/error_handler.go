package script_errors

import (
	"errors"
	"fmt"
	"io"
)

type ScriptError interface {
	error
	GetMessage() string
	GetLine() int
	GetColumn() int
}

// Position is embedded by stage errors that point into the source.
// A zero Line means the position is unknown.
type Position struct {
	Line   int
	Column int
}

func (p Position) GetLine() int   { return p.Line }
func (p Position) GetColumn() int { return p.Column }

// Format renders a ScriptError as "line:col: message", or just the message
// when no position is known.
func Format(err ScriptError) string {
	if err.GetLine() == 0 {
		return err.GetMessage()
	}

	return fmt.Sprintf("%d:%d: %s", err.GetLine(), err.GetColumn(), err.GetMessage())
}

type ErrorHandler interface {
	AddError(err error)
	HasErrors() bool
	Report()
}

type ScriptErrorHandler struct {
	errors []error
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &ScriptErrorHandler{
		errors: make([]error, 0),
		writer: outputWriter,
	}
}

func (eh *ScriptErrorHandler) AddError(err error) {
	if err == nil {
		return
	}

	eh.errors = append(eh.errors, err)
}

func (eh *ScriptErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Report prints every collected error and resets the handler, so a REPL
// session can keep using it.
func (eh *ScriptErrorHandler) Report() {
	if len(eh.errors) == 0 {
		return
	}

	fmt.Fprintln(eh.writer, "Run failed with errors:")

	for _, err := range eh.errors {
		var scriptErr ScriptError
		if errors.As(err, &scriptErr) {
			fmt.Fprintf(eh.writer, "ERROR: %s\n", Format(scriptErr))
			continue
		}

		fmt.Fprintf(eh.writer, "ERROR: %s\n", err)
	}

	eh.errors = eh.errors[:0]
}

package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/kievzenit/dde/internal/ast"
	"github.com/kievzenit/dde/internal/lexer"
	"github.com/kievzenit/dde/internal/script_errors"
)

// UnexpectedTokenError is returned when the token stream does not match
// the grammar. Got is nil when input ended early.
type UnexpectedTokenError struct {
	script_errors.Position

	Expected string
	Got      *lexer.Token
}

func (e *UnexpectedTokenError) GetMessage() string {
	got := "nothing"
	if e.Got != nil {
		got = e.Got.String()
	}

	if e.Expected == "" {
		return fmt.Sprintf("unexpected token: %s", got)
	}

	return fmt.Sprintf("expected %s, got %s", e.Expected, got)
}

func (e *UnexpectedTokenError) Error() string {
	return script_errors.Format(e)
}

type Parser struct {
	scanner lexer.TokenScanner

	curr *lexer.Token
	// last is kept so end-of-input errors can point past the final token.
	last *lexer.Token
}

func NewParser(scanner lexer.TokenScanner) *Parser {
	return &Parser{
		scanner: scanner,
		curr:    scanner.Peek(),
	}
}

// Parse builds the statement list for a token slice.
func Parse(tokens []lexer.Token) (ast.Program, error) {
	return NewParser(lexer.NewTokenScanner(tokens)).Parse()
}

func (p *Parser) Parse() (ast.Program, error) {
	program := make(ast.Program, 0)

	for p.curr != nil {
		if p.curr.Kind == lexer.SEMICOLON {
			p.read()
			continue
		}

		stmt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}

	return program, nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	if p.curr == nil {
		return nil, p.unexpected("")
	}

	if p.curr.Kind == lexer.IDENT {
		if next := p.scanner.PeekNext(); next != nil && next.Is(lexer.OPERATOR, "=") {
			return p.parseAssignExpr()
		}
	}

	if p.curr.Is(lexer.KEYWORD, "if") {
		return p.parseIfStmt()
	}

	return p.parseComparisonExpr()
}

func (p *Parser) parseAssignExpr() (ast.Node, error) {
	startToken, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.OPERATOR, "="); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignExpr{
		StartToken: startToken,

		Name: startToken.Value,
		Expr: value,
	}, nil
}

// parseComparisonExpr folds every comparator left to right on one tier.
func (p *Parser) parseComparisonExpr() (ast.Node, error) {
	left, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}

	for p.curr != nil && p.curr.Kind == lexer.COMPARATOR {
		op := p.read()

		right, err := p.parseAdditiveExpr()
		if err != nil {
			return nil, err
		}

		left = newBinaryExpr(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseAdditiveExpr() (ast.Node, error) {
	left, err := p.parseMultiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for p.isCurrOperator("+", "-") {
		op := p.read()

		right, err := p.parseMultiplicativeExpr()
		if err != nil {
			return nil, err
		}

		left = newBinaryExpr(left, op, right)
	}

	return left, nil
}

func (p *Parser) parseMultiplicativeExpr() (ast.Node, error) {
	left, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for p.isCurrOperator("*", "/") {
		op := p.read()

		right, err := p.parsePrimaryExpr()
		if err != nil {
			return nil, err
		}

		left = newBinaryExpr(left, op, right)
	}

	return left, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Node, error) {
	if p.curr == nil {
		return nil, p.unexpected("")
	}

	switch p.curr.Kind {
	case lexer.NUMBER:
		return p.parseNumberExpr()
	case lexer.STRING:
		token := p.read()
		return &ast.StringExpr{StartToken: token, Value: token.Value}, nil
	case lexer.BOOL:
		token := p.read()
		return &ast.BoolExpr{StartToken: token, Value: token.Bool()}, nil
	case lexer.IDENT:
		if next := p.scanner.PeekNext(); next != nil && next.Is(lexer.PAREN, "(") {
			return p.parseCallExpr()
		}

		token := p.read()
		return &ast.IdentExpr{StartToken: token, Name: token.Value}, nil
	case lexer.PAREN:
		if p.curr.Value == "(" {
			return p.parseParenExpr()
		}
	case lexer.BRACKET:
		if p.curr.Value == "{" {
			return p.parseBlockStmt()
		}
	}

	return nil, p.unexpected("")
}

func (p *Parser) parseNumberExpr() (ast.Node, error) {
	token := p.curr

	// Overflow keeps the ±Inf ParseFloat hands back. A literal with more
	// than one dot (1.2.3) reads as NaN.
	value, err := strconv.ParseFloat(token.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		value = math.NaN()
	}
	p.read()

	return &ast.NumberExpr{
		StartToken: token,

		Value: value,
	}, nil
}

func (p *Parser) parseParenExpr() (ast.Node, error) {
	if _, err := p.expect(lexer.PAREN, "("); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.PAREN, ")"); err != nil {
		return nil, err
	}

	return expr, nil
}

// parseCallExpr stops collecting arguments as soon as an argument is not
// followed by a comma, so `f(a b)` only fails at the closing paren check.
// A comma always requires another argument.
func (p *Parser) parseCallExpr() (ast.Node, error) {
	startToken, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.PAREN, "("); err != nil {
		return nil, err
	}

	args := make([]ast.Node, 0)
	if p.curr != nil && !p.curr.Is(lexer.PAREN, ")") {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.curr == nil || p.curr.Kind != lexer.COMMA {
				break
			}
			p.read()
		}
	}

	if _, err := p.expect(lexer.PAREN, ")"); err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		StartToken: startToken,

		Name: startToken.Value,
		Args: args,
	}, nil
}

func (p *Parser) parseBlockStmt() (*ast.BlockStmt, error) {
	startToken, err := p.expect(lexer.BRACKET, "{")
	if err != nil {
		return nil, err
	}

	stmts := make([]ast.Node, 0)
	for p.curr != nil && !p.curr.Is(lexer.BRACKET, "}") {
		stmt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		if p.curr != nil && p.curr.Kind == lexer.SEMICOLON {
			p.read()
		}
	}

	if _, err := p.expect(lexer.BRACKET, "}"); err != nil {
		return nil, err
	}

	return &ast.BlockStmt{
		StartToken: startToken,

		Stmts: stmts,
	}, nil
}

func (p *Parser) parseIfStmt() (ast.Node, error) {
	startToken, err := p.expect(lexer.KEYWORD, "if")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.PAREN, "("); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.PAREN, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}

	return &ast.IfStmt{
		StartToken: startToken,

		Cond: cond,
		Body: body,
	}, nil
}

func newBinaryExpr(left ast.Node, op *lexer.Token, right ast.Node) *ast.BinaryExpr {
	return &ast.BinaryExpr{
		StartToken: left.FirstToken(),

		Op:    op.Value,
		Left:  left,
		Right: right,
	}
}

func (p *Parser) read() *lexer.Token {
	token := p.scanner.Read()
	if token != nil {
		p.last = token
	}

	p.curr = p.scanner.Peek()
	return token
}

// expect consumes the current token if it has the given kind and, when
// value is not empty, the given spelling.
func (p *Parser) expect(kind lexer.TokenKind, value string) (*lexer.Token, error) {
	if p.curr == nil || p.curr.Kind != kind || (value != "" && p.curr.Value != value) {
		expected := value
		if expected == "" {
			expected = kind.String()
		}

		return nil, p.unexpected(expected)
	}

	return p.read(), nil
}

func (p *Parser) isCurrOperator(ops ...string) bool {
	if p.curr == nil || p.curr.Kind != lexer.OPERATOR {
		return false
	}

	for _, op := range ops {
		if p.curr.Value == op {
			return true
		}
	}

	return false
}

func (p *Parser) unexpected(expected string) *UnexpectedTokenError {
	err := &UnexpectedTokenError{
		Expected: expected,
		Got:      p.curr,
	}

	switch {
	case p.curr != nil:
		err.Position = script_errors.Position{
			Line:   p.curr.Metadata.Line,
			Column: p.curr.Metadata.Column,
		}
	case p.last != nil:
		err.Position = script_errors.Position{
			Line:   p.last.Metadata.Line,
			Column: p.last.Metadata.Column + p.last.Metadata.Length,
		}
	}

	return err
}

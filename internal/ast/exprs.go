package ast

import "github.com/kievzenit/dde/internal/lexer"

type NumberExpr struct {
	StartToken *lexer.Token

	Value float64
}

type StringExpr struct {
	StartToken *lexer.Token

	Value string
}

type BoolExpr struct {
	StartToken *lexer.Token

	Value bool
}

type IdentExpr struct {
	StartToken *lexer.Token

	Name string
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Op    string
	Left  Node
	Right Node
}

type AssignExpr struct {
	StartToken *lexer.Token

	Name string
	Expr Node
}

type CallExpr struct {
	StartToken *lexer.Token

	Name string
	Args []Node
}

func (n *NumberExpr) AstNode() {}
func (s *StringExpr) AstNode() {}
func (b *BoolExpr) AstNode()   {}
func (i *IdentExpr) AstNode()  {}
func (b *BinaryExpr) AstNode() {}
func (a *AssignExpr) AstNode() {}
func (c *CallExpr) AstNode()   {}

func (n *NumberExpr) ExprNode() {}
func (s *StringExpr) ExprNode() {}
func (b *BoolExpr) ExprNode()   {}
func (i *IdentExpr) ExprNode()  {}
func (b *BinaryExpr) ExprNode() {}
func (a *AssignExpr) ExprNode() {}
func (c *CallExpr) ExprNode()   {}

func (n *NumberExpr) FirstToken() *lexer.Token { return n.StartToken }
func (s *StringExpr) FirstToken() *lexer.Token { return s.StartToken }
func (b *BoolExpr) FirstToken() *lexer.Token   { return b.StartToken }
func (i *IdentExpr) FirstToken() *lexer.Token  { return i.StartToken }
func (b *BinaryExpr) FirstToken() *lexer.Token { return b.StartToken }
func (a *AssignExpr) FirstToken() *lexer.Token { return a.StartToken }
func (c *CallExpr) FirstToken() *lexer.Token   { return c.StartToken }

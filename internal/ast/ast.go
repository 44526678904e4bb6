package ast

import "github.com/kievzenit/dde/internal/lexer"

// Node is implemented by every tree node. The set of nodes is closed:
// consumers type-switch over the concrete types declared in this package.
type Node interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Program is the ordered list of top level statements of one source text.
type Program []Node

type Stmt interface {
	Node
	StmtNode()
}

type Expr interface {
	Node
	ExprNode()
}

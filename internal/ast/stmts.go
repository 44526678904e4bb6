package ast

import "github.com/kievzenit/dde/internal/lexer"

// BlockStmt evaluates to the value of its last statement.
type BlockStmt struct {
	StartToken *lexer.Token

	Stmts []Node
}

// IfStmt has no else branch.
type IfStmt struct {
	StartToken *lexer.Token

	Cond Node
	Body *BlockStmt
}

func (b *BlockStmt) AstNode() {}
func (i *IfStmt) AstNode()    {}

func (b *BlockStmt) StmtNode() {}
func (i *IfStmt) StmtNode()    {}

func (b *BlockStmt) FirstToken() *lexer.Token { return b.StartToken }
func (i *IfStmt) FirstToken() *lexer.Token    { return i.StartToken }

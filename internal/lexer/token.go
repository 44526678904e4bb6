package lexer

import (
	"fmt"
)

type TokenKind int

const (
	NUMBER TokenKind = iota
	STRING
	BOOL
	IDENT
	KEYWORD

	OPERATOR   // = + - * /
	COMPARATOR // == != < <= > >= !

	COMMA     // ,
	SEMICOLON // ;
	BRACKET   // { }
	PAREN     // ( )
)

func (tk TokenKind) String() string {
	switch tk {
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case BOOL:
		return "boolean"
	case IDENT:
		return "identifier"
	case KEYWORD:
		return "keyword"
	case OPERATOR:
		return "operator"
	case COMPARATOR:
		return "comparator"
	case COMMA:
		return "comma"
	case SEMICOLON:
		return "semicolon"
	case BRACKET:
		return "bracket"
	case PAREN:
		return "parenthesis"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

type Metadata struct {
	Line   int
	Column int
	Length int
}

type Token struct {
	Kind  TokenKind
	Value string

	Metadata Metadata
}

// Bool reports the value of a BOOL token.
func (t *Token) Bool() bool {
	return t.Kind == BOOL && t.Value == "true"
}

func (t *Token) Is(kind TokenKind, value string) bool {
	return t.Kind == kind && t.Value == value
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

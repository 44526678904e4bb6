package lexer

type TokenScanner interface {
	// Peek returns the current token, or nil at end of input.
	Peek() *Token
	// PeekNext returns the token after the current one, or nil.
	PeekNext() *Token
	Read() *Token
	HasTokens() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Peek() *Token {
	return s.at(s.pos)
}

func (s *SimpleTokenScanner) PeekNext() *Token {
	return s.at(s.pos + 1)
}

func (s *SimpleTokenScanner) Read() *Token {
	token := s.at(s.pos)
	if token != nil {
		s.pos++
	}

	return token
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}

func (s *SimpleTokenScanner) at(i int) *Token {
	if i >= len(s.tokens) {
		return nil
	}

	return &s.tokens[i]
}

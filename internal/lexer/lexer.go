package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/kievzenit/dde/internal/script_errors"
)

type UnknownCharacterError struct {
	script_errors.Position

	Char rune
}

func (e *UnknownCharacterError) GetMessage() string {
	return fmt.Sprintf("unknown character: %s", string(e.Char))
}

func (e *UnknownCharacterError) Error() string {
	return script_errors.Format(e)
}

type UnterminatedStringError struct {
	script_errors.Position

	Quote byte
}

func (e *UnterminatedStringError) GetMessage() string {
	return fmt.Sprintf("unterminated string literal, expected closing %c", e.Quote)
}

func (e *UnterminatedStringError) Error() string {
	return script_errors.Format(e)
}

type Lexer struct {
	buf []byte
	pos int

	line, lineStart int
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,

		line:      1,
		lineStart: 0,
	}
}

// Tokenize converts source text into tokens in one pass.
func Tokenize(source string) ([]Token, error) {
	return NewLexer([]byte(source)).Tokenize()
}

// Tokenize scans the whole buffer. The first failure aborts tokenization;
// no partial token list is returned.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for l.hasChars() {
		switch {
		case l.isCurrCommentStart():
			l.skipComment()

		case l.isCurrWhitespace():
			l.skipWhitespace()

		case l.isCurrDigit():
			tokens = append(tokens, l.processNumber())

		case l.read() == '"' || l.read() == '\'':
			token, err := l.processStringLiteral()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case l.isCurrLetter():
			tokens = append(tokens, l.processIdentifier())

		case l.isCurrPunctuation():
			tokens = append(tokens, l.processPunctuation())

		default:
			char, _ := utf8.DecodeRune(l.buf[l.pos:])
			return nil, &UnknownCharacterError{
				Position: l.position(),
				Char:     char,
			}
		}
	}

	return tokens, nil
}

func (l *Lexer) isCurrCommentStart() bool {
	if l.read() != '#' {
		return false
	}

	if l.pos == 0 {
		return true
	}

	prev, _ := utf8.DecodeLastRune(l.buf[:l.pos])
	return isSpace(prev)
}

func (l *Lexer) isCurrWhitespace() bool {
	r, _ := utf8.DecodeRune(l.buf[l.pos:])
	return isSpace(r)
}

func (l *Lexer) isCurrDigit() bool {
	return isDigit(l.read())
}

func (l *Lexer) isCurrLetter() bool {
	return isLetter(l.read())
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '=', '<', '>', '!', '+', '-', '*', '/', ',', ';', '{', '}', '(', ')':
		return true
	}

	return false
}

func (l *Lexer) skipComment() {
	for l.hasChars() && l.read() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	r, size := utf8.DecodeRune(l.buf[l.pos:])
	if r == '\n' {
		l.line++
		l.lineStart = l.pos + 1
	}

	l.pos += size
}

func (l *Lexer) processNumber() Token {
	start := l.position()
	numberBuf := make([]byte, 0)

	for l.hasChars() && (l.isCurrDigit() || l.read() == '.') {
		numberBuf = append(numberBuf, l.read())
		l.advance()
	}

	length := len(numberBuf)
	if numberBuf[len(numberBuf)-1] == '.' {
		numberBuf = append(numberBuf, '0')
	}

	return l.token(NUMBER, string(numberBuf), start, length)
}

func (l *Lexer) processStringLiteral() (Token, error) {
	start := l.position()
	startPos := l.pos
	quote := l.read()
	l.advance()

	stringBuf := make([]byte, 0)
	for l.hasChars() && l.read() != quote {
		if l.read() == '\n' {
			l.line++
			l.lineStart = l.pos + 1
		}

		stringBuf = append(stringBuf, l.read())
		l.advance()
	}

	if !l.hasChars() {
		return Token{}, &UnterminatedStringError{
			Position: start,
			Quote:    quote,
		}
	}
	l.advance()

	return l.token(STRING, string(stringBuf), start, l.pos-startPos), nil
}

func (l *Lexer) processIdentifier() Token {
	start := l.position()
	identifierBuf := make([]byte, 0)

	for l.hasChars() && l.isCurrLetter() {
		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	identifier := string(identifierBuf)

	switch identifier {
	case "true", "false":
		return l.token(BOOL, identifier, start, len(identifier))
	case "if":
		return l.token(KEYWORD, identifier, start, len(identifier))
	}

	return l.token(IDENT, identifier, start, len(identifier))
}

func (l *Lexer) processPunctuation() Token {
	start := l.position()
	char := l.read()
	l.advance()

	switch char {
	case '=':
		if l.hasChars() && l.read() == '=' {
			l.advance()
			return l.token(COMPARATOR, "==", start, 2)
		}

		return l.token(OPERATOR, "=", start, 1)
	case '<', '>', '!':
		if l.hasChars() && l.read() == '=' {
			l.advance()
			return l.token(COMPARATOR, string(char)+"=", start, 2)
		}

		return l.token(COMPARATOR, string(char), start, 1)
	case '+', '-', '*', '/':
		return l.token(OPERATOR, string(char), start, 1)
	case ',':
		return l.token(COMMA, ",", start, 1)
	case ';':
		return l.token(SEMICOLON, ";", start, 1)
	case '{', '}':
		return l.token(BRACKET, string(char), start, 1)
	case '(', ')':
		return l.token(PAREN, string(char), start, 1)
	}

	panic("unreachable")
}

func (l *Lexer) token(kind TokenKind, value string, at script_errors.Position, length int) Token {
	return Token{
		Kind:  kind,
		Value: value,

		Metadata: Metadata{
			Line:   at.Line,
			Column: at.Column,
			Length: length,
		},
	}
}

func (l *Lexer) position() script_errors.Position {
	return script_errors.Position{
		Line:   l.line,
		Column: l.pos - l.lineStart + 1,
	}
}

// isSpace is unicode.IsSpace without NEL (U+0085) and with the byte order
// mark (U+FEFF), the set scripts treat as blank.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}

	return unicode.IsSpace(r)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) read() byte { return l.buf[l.pos] }

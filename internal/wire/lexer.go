package wire

import (
	"unicode/utf8"
)

// tabWidth is the column width of a tab character. The .wire format is
// 4-space-equivalent indentation-significant.
const tabWidth = 4

// Lexer tokenizes .wire source files.
//
// Indentation is tracked through a stack of column widths: a column increase
// past the stack top emits one Indent and pushes, a decrease pops and emits
// one Dedent per level until the widths match. Blank and comment-only lines
// never touch the stack. The lexer is total: an unrecognized character emits
// an Error token and scanning continues.
type Lexer struct {
	source  string
	pos     int  // current position in source
	readPos int  // next position to read
	ch      rune // current character
	line    int  // current line (1-based)
	column  int  // current column (1-based)

	// Track the start position of the current token
	tokenLine   int
	tokenColumn int
	tokenStart  int // byte offset where current token starts

	indents     []int   // stack of indentation widths; base level is 0
	atLineStart bool    // next Next() call must measure indentation first
	pending     []Token // queued Indent/Dedent tokens

	errors *ErrorList
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(source string) *Lexer {
	l := &Lexer{
		source:      source,
		line:        1,
		column:      0,
		indents:     []int{0},
		atLineStart: true,
		errors:      NewErrorList(),
	}
	l.readChar()
	return l
}

// Tokenize scans the entire source and returns the token stream, always
// terminated by a trailing EOF token, together with any lex errors.
func Tokenize(source string) ([]Token, []*Error) {
	l := NewLexer(source)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens, l.Errors().Errors()
}

// Errors returns any errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = l.readPos
		if prevWasNewline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		return
	}

	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenLine = l.line
	l.tokenColumn = l.column
	l.tokenStart = l.pos
}

// makeToken creates a token spanning from the marked start to the current position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:    typ,
		Literal: literal,
		Start:   Position{Line: l.tokenLine, Column: l.tokenColumn, Offset: l.tokenStart},
		End:     Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

// position returns the current token start Position for error reporting.
func (l *Lexer) position() Position {
	return Position{Line: l.tokenLine, Column: l.tokenColumn, Offset: l.tokenStart}
}

// Next returns the next token from the source.
func (l *Lexer) Next() Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLineStart {
		if tok, ok := l.handleLineStart(); ok {
			return tok
		}
	}

	l.skipSpacesAndComments()
	l.startToken()

	switch l.ch {
	case 0:
		if tok, ok := l.flushDedents(); ok {
			return tok
		}
		return l.makeToken(TokenEOF, "")

	case '\n':
		l.readChar()
		l.atLineStart = true
		return l.makeToken(TokenNewline, "\n")

	case '"', '\'':
		return l.readString(l.ch)

	case ':':
		return l.readID()

	case '?':
		return l.readBinding()

	case '@':
		return l.readNavigation()

	case '$':
		return l.readIcon()

	case '%':
		return l.readDocAttr()

	case '|':
		return l.readTableRow()

	case '+':
		if l.peekChar() == ' ' || l.peekChar() == '\t' {
			l.readChar()
			return l.makeToken(TokenBranch, "+")
		}
		return l.errorToken()

	case '-':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		if l.peekChar() == ' ' || l.peekChar() == '\t' {
			l.readChar()
			return l.makeToken(TokenLeaf, "-")
		}
		return l.errorToken()

	case '/':
		if isLetter(l.peekChar()) {
			return l.readClose()
		}
		return l.errorToken()

	default:
		if isLetter(l.ch) {
			return l.readWord()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		return l.errorToken()
	}
}

// errorToken records an unexpected-character error and keeps scanning.
func (l *Lexer) errorToken() Token {
	ch := l.ch
	l.readChar()
	l.errors.AddErrorf(LexError, l.position(), "unexpected character %q", ch)
	return l.makeToken(TokenError, string(ch))
}

// handleLineStart measures the indentation of the current line and queues
// Indent/Dedent tokens. Returns the first queued token if any were produced.
// Blank and comment-only lines are passed through without touching the stack.
func (l *Lexer) handleLineStart() (Token, bool) {
	width := 0
	for l.ch == ' ' || l.ch == '\t' {
		if l.ch == '\t' {
			width += tabWidth
		} else {
			width++
		}
		l.readChar()
	}

	// Blank line: emit its newline, stay at line start.
	if l.ch == '\n' {
		l.startToken()
		l.readChar()
		return l.makeToken(TokenNewline, "\n"), true
	}

	// Comment-only line: skip it without affecting the indent stack.
	if l.ch == '/' && (l.peekChar() == '/' || l.peekChar() == '*') {
		l.skipSpacesAndComments()
		if l.ch == '\n' {
			l.startToken()
			l.readChar()
			return l.makeToken(TokenNewline, "\n"), true
		}
		if l.ch == 0 {
			l.atLineStart = false
			return Token{}, false
		}
		// A block comment ended mid-line; the rest of the line is code and
		// the measured width still applies.
	}

	if l.ch == 0 {
		l.atLineStart = false
		return Token{}, false
	}

	l.atLineStart = false
	l.startToken()

	top := l.indents[len(l.indents)-1]
	switch {
	case width > top:
		l.indents = append(l.indents, width)
		l.pending = append(l.pending, l.makeToken(TokenIndent, ""))
	case width < top:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, l.makeToken(TokenDedent, ""))
		}
		if l.indents[len(l.indents)-1] != width {
			l.errors.AddErrorf(LexError, l.position(),
				"inconsistent indentation: column %d does not match any open block", width+1)
		}
	}

	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, true
	}
	return Token{}, false
}

// flushDedents emits one Dedent per still-open indentation level at EOF,
// keeping Indent/Dedent counts balanced.
func (l *Lexer) flushDedents() (Token, bool) {
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, l.makeToken(TokenDedent, ""))
	}
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, true
	}
	return Token{}, false
}

package wire

import (
	"strings"
	"unicode"
)

// skipSpacesAndComments skips spaces, tabs, and comments (but not newlines).
func (l *Lexer) skipSpacesAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				l.skipLineComment()
			} else if l.peekChar() == '*' {
				l.skipBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

// skipLineComment consumes a // comment up to (not including) the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment consumes a /* */ comment, newlines included.
func (l *Lexer) skipBlockComment() {
	l.startToken()
	l.readChar() // consume /
	l.readChar() // consume *
	for {
		if l.ch == 0 {
			l.errors.AddError(LexError, l.position(), "unterminated block comment")
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return
		}
		l.readChar()
	}
}

// readString reads a quoted string with backslash escapes. Both single and
// double quotes delimit strings; the closing quote must match the opener.
func (l *Lexer) readString(quote rune) Token {
	l.readChar() // consume opening quote

	var result []rune
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\n' {
			l.errors.AddError(LexError, l.position(), "unterminated string literal")
			return l.makeToken(TokenError, string(result))
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			case '\'':
				result = append(result, '\'')
			default:
				// Keep the backslash and character as-is
				result = append(result, '\\', l.ch)
			}
		} else {
			result = append(result, l.ch)
		}
		l.readChar()
	}

	if l.ch == 0 {
		l.errors.AddError(LexError, l.position(), "unterminated string literal")
		return l.makeToken(TokenError, string(result))
	}

	l.readChar() // consume closing quote
	return l.makeToken(TokenString, string(result))
}

// readNumber reads an integer or float literal, optionally negative.
func (l *Lexer) readNumber() Token {
	start := l.pos
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.makeToken(TokenNumber, l.source[start:l.pos])
}

// readWord reads an identifier and classifies it. An identifier immediately
// followed by '=' lexes as a single name=value attribute token.
func (l *Lexer) readWord() Token {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	word := l.source[start:l.pos]

	if l.ch == '=' {
		return l.readAttributeValue(word)
	}

	return l.makeToken(keywordType(word), word)
}

// readAttributeValue reads the value half of a name=value attribute.
// Quoted values keep their string type through coercion; bare values run
// until the next whitespace.
func (l *Lexer) readAttributeValue(name string) Token {
	l.readChar() // consume =

	if l.ch == '"' || l.ch == '\'' {
		strTok := l.readString(l.ch)
		tok := l.makeToken(TokenAttribute, name+"="+strTok.Literal)
		tok.AttrName = name
		tok.AttrValue = strTok.Literal
		tok.Quoted = true
		return tok
	}

	start := l.pos
	for l.ch != ' ' && l.ch != '\t' && l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
	value := l.source[start:l.pos]
	if value == "" {
		l.errors.AddErrorf(LexError, l.position(), "attribute %q is missing a value", name)
	}
	tok := l.makeToken(TokenAttribute, name+"="+value)
	tok.AttrName = name
	tok.AttrValue = value
	return tok
}

// readID reads an :identifier token.
func (l *Lexer) readID() Token {
	l.readChar() // consume :
	if !isLetter(l.ch) && l.ch != '_' {
		l.errors.AddError(LexError, l.position(), "expected identifier after ':'")
		return l.makeToken(TokenError, ":")
	}
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '-' {
		l.readChar()
	}
	return l.makeToken(TokenID, l.source[start:l.pos])
}

// readBinding reads a ?data.path token.
func (l *Lexer) readBinding() Token {
	l.readChar() // consume ?
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '.' || l.ch == '_' || l.ch == '-' {
		l.readChar()
	}
	path := l.source[start:l.pos]
	if path == "" {
		l.errors.AddError(LexError, l.position(), "expected data path after '?'")
		return l.makeToken(TokenError, "?")
	}
	return l.makeToken(TokenBinding, path)
}

// readNavigation reads an @target or @path/target token.
func (l *Lexer) readNavigation() Token {
	l.readChar() // consume @
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '/' || l.ch == '_' || l.ch == '-' || l.ch == '.' {
		l.readChar()
	}
	target := l.source[start:l.pos]
	if target == "" {
		l.errors.AddError(LexError, l.position(), "expected navigation target after '@'")
		return l.makeToken(TokenError, "@")
	}
	return l.makeToken(TokenNavigation, target)
}

// readIcon reads $name or the $icon:name long form. The token literal is the
// icon name in both cases.
func (l *Lexer) readIcon() Token {
	l.readChar() // consume $
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '-' {
		l.readChar()
	}
	name := l.source[start:l.pos]
	if name == "" {
		l.errors.AddError(LexError, l.position(), "expected icon name after '$'")
		return l.makeToken(TokenError, "$")
	}
	if name == "icon" && l.ch == ':' {
		l.readChar() // consume :
		start = l.pos
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '-' {
			l.readChar()
		}
		name = l.source[start:l.pos]
		if name == "" {
			l.errors.AddError(LexError, l.position(), "expected icon name after '$icon:'")
			return l.makeToken(TokenError, "$icon:")
		}
	}
	return l.makeToken(TokenIcon, name)
}

// readDocAttr reads a %name: value document attribute. The value is the rest
// of the line, trimmed.
func (l *Lexer) readDocAttr() Token {
	l.readChar() // consume %
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '-' {
		l.readChar()
	}
	name := l.source[start:l.pos]
	if name == "" {
		l.errors.AddError(LexError, l.position(), "expected attribute name after '%'")
		return l.makeToken(TokenError, "%")
	}
	l.skipSpacesAndComments()
	if l.ch != ':' {
		l.errors.AddErrorf(LexError, l.position(), "expected ':' after document attribute %q", name)
		tok := l.makeToken(TokenDocAttr, name)
		tok.AttrName = name
		return tok
	}
	l.readChar() // consume :
	start = l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	value := strings.TrimSpace(l.source[start:l.pos])
	tok := l.makeToken(TokenDocAttr, name+": "+value)
	tok.AttrName = name
	tok.AttrValue = value
	return tok
}

// readTableRow reads a full |-delimited row. Separator rows (dashes only)
// lex as TokenTableSep; cell splitting is a parser concern.
func (l *Lexer) readTableRow() Token {
	start := l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	raw := strings.TrimRight(l.source[start:l.pos], " \t\r")

	if isTableSeparator(raw) {
		return l.makeToken(TokenTableSep, raw)
	}
	return l.makeToken(TokenTableRow, raw)
}

// isTableSeparator reports whether a row like |---|:---:| only contains
// separator characters.
func isTableSeparator(raw string) bool {
	hasDash := false
	for _, r := range raw {
		switch r {
		case '|', ':', ' ', '\t':
		case '-':
			hasDash = true
		default:
			return false
		}
	}
	return hasDash
}

// readClose reads an explicit /Keyword close token.
func (l *Lexer) readClose() Token {
	l.readChar() // consume /
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	keyword := l.source[start:l.pos]
	tok := l.makeToken(TokenClose, "/"+keyword)
	tok.CloseKeyword = keyword
	return tok
}

// isLetter reports whether r can start or continue an identifier.
func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
